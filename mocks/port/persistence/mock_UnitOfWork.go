package persistence

import (
	"context"
	persistence "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"

	mock "github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock type for the UnitOfWork type
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Begin provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Begin")
	}

	var r0 context.Context
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (context.Context, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) context.Context); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(context.Context)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockUnitOfWork_Begin_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Begin'
type MockUnitOfWork_Begin_Call struct {
	*mock.Call
}

// Begin is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) Begin(ctx interface{}) *MockUnitOfWork_Begin_Call {
	return &MockUnitOfWork_Begin_Call{Call: _e.mock.On("Begin", ctx)}
}

func (_c *MockUnitOfWork_Begin_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_Begin_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_Begin_Call) Return(_a0 context.Context, _a1 error) *MockUnitOfWork_Begin_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockUnitOfWork_Begin_Call) RunAndReturn(run func(context.Context) (context.Context, error)) *MockUnitOfWork_Begin_Call {
	_c.Call.Return(run)
	return _c
}

// Commit provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Commit(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Commit")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUnitOfWork_Commit_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Commit'
type MockUnitOfWork_Commit_Call struct {
	*mock.Call
}

// Commit is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) Commit(ctx interface{}) *MockUnitOfWork_Commit_Call {
	return &MockUnitOfWork_Commit_Call{Call: _e.mock.On("Commit", ctx)}
}

func (_c *MockUnitOfWork_Commit_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_Commit_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_Commit_Call) Return(_a0 error) *MockUnitOfWork_Commit_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_Commit_Call) RunAndReturn(run func(context.Context) error) *MockUnitOfWork_Commit_Call {
	_c.Call.Return(run)
	return _c
}

// Rollback provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Rollback(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Rollback")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockUnitOfWork_Rollback_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Rollback'
type MockUnitOfWork_Rollback_Call struct {
	*mock.Call
}

// Rollback is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) Rollback(ctx interface{}) *MockUnitOfWork_Rollback_Call {
	return &MockUnitOfWork_Rollback_Call{Call: _e.mock.On("Rollback", ctx)}
}

func (_c *MockUnitOfWork_Rollback_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_Rollback_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_Rollback_Call) Return(_a0 error) *MockUnitOfWork_Rollback_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_Rollback_Call) RunAndReturn(run func(context.Context) error) *MockUnitOfWork_Rollback_Call {
	_c.Call.Return(run)
	return _c
}

// GetLedgerRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetLedgerRepository")
	}

	var r0 persistence.LedgerRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.LedgerRepository); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(persistence.LedgerRepository)
		}
	}

	return r0
}

// MockUnitOfWork_GetLedgerRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetLedgerRepository'
type MockUnitOfWork_GetLedgerRepository_Call struct {
	*mock.Call
}

// GetLedgerRepository is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) GetLedgerRepository(ctx interface{}) *MockUnitOfWork_GetLedgerRepository_Call {
	return &MockUnitOfWork_GetLedgerRepository_Call{Call: _e.mock.On("GetLedgerRepository", ctx)}
}

func (_c *MockUnitOfWork_GetLedgerRepository_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_GetLedgerRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_GetLedgerRepository_Call) Return(_a0 persistence.LedgerRepository) *MockUnitOfWork_GetLedgerRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_GetLedgerRepository_Call) RunAndReturn(run func(context.Context) persistence.LedgerRepository) *MockUnitOfWork_GetLedgerRepository_Call {
	_c.Call.Return(run)
	return _c
}

// GetDailyCapRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetDailyCapRepository(ctx context.Context) persistence.DailyCapRepository {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetDailyCapRepository")
	}

	var r0 persistence.DailyCapRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.DailyCapRepository); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(persistence.DailyCapRepository)
		}
	}

	return r0
}

// MockUnitOfWork_GetDailyCapRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetDailyCapRepository'
type MockUnitOfWork_GetDailyCapRepository_Call struct {
	*mock.Call
}

// GetDailyCapRepository is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) GetDailyCapRepository(ctx interface{}) *MockUnitOfWork_GetDailyCapRepository_Call {
	return &MockUnitOfWork_GetDailyCapRepository_Call{Call: _e.mock.On("GetDailyCapRepository", ctx)}
}

func (_c *MockUnitOfWork_GetDailyCapRepository_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_GetDailyCapRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_GetDailyCapRepository_Call) Return(_a0 persistence.DailyCapRepository) *MockUnitOfWork_GetDailyCapRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_GetDailyCapRepository_Call) RunAndReturn(run func(context.Context) persistence.DailyCapRepository) *MockUnitOfWork_GetDailyCapRepository_Call {
	_c.Call.Return(run)
	return _c
}

// GetLedgerEntryRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetLedgerEntryRepository(ctx context.Context) persistence.LedgerEntryRepository {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetLedgerEntryRepository")
	}

	var r0 persistence.LedgerEntryRepository
	if rf, ok := ret.Get(0).(func(context.Context) persistence.LedgerEntryRepository); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(persistence.LedgerEntryRepository)
		}
	}

	return r0
}

// MockUnitOfWork_GetLedgerEntryRepository_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetLedgerEntryRepository'
type MockUnitOfWork_GetLedgerEntryRepository_Call struct {
	*mock.Call
}

// GetLedgerEntryRepository is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockUnitOfWork_Expecter) GetLedgerEntryRepository(ctx interface{}) *MockUnitOfWork_GetLedgerEntryRepository_Call {
	return &MockUnitOfWork_GetLedgerEntryRepository_Call{Call: _e.mock.On("GetLedgerEntryRepository", ctx)}
}

func (_c *MockUnitOfWork_GetLedgerEntryRepository_Call) Run(run func(ctx context.Context)) *MockUnitOfWork_GetLedgerEntryRepository_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockUnitOfWork_GetLedgerEntryRepository_Call) Return(_a0 persistence.LedgerEntryRepository) *MockUnitOfWork_GetLedgerEntryRepository_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_GetLedgerEntryRepository_Call) RunAndReturn(run func(context.Context) persistence.LedgerEntryRepository) *MockUnitOfWork_GetLedgerEntryRepository_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	mock := &MockUnitOfWork{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
