package persistence

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockDailyCapRepository is a mock type for the DailyCapRepository type
type MockDailyCapRepository struct {
	mock.Mock
}

type MockDailyCapRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDailyCapRepository) EXPECT() *MockDailyCapRepository_Expecter {
	return &MockDailyCapRepository_Expecter{mock: &_m.Mock}
}

// Award provides a mock function with given fields: ctx, userID, day, requested, dailyCap
func (_m *MockDailyCapRepository) Award(ctx context.Context, userID string, day string, requested int64, dailyCap int64) (int64, int64, error) {
	ret := _m.Called(ctx, userID, day, requested, dailyCap)

	if len(ret) == 0 {
		panic("no return value specified for Award")
	}

	var r0 int64
	var r1 int64
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64, int64) (int64, int64, error)); ok {
		return rf(ctx, userID, day, requested, dailyCap)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64, int64) int64); ok {
		r0 = rf(ctx, userID, day, requested, dailyCap)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, int64, int64) int64); ok {
		r1 = rf(ctx, userID, day, requested, dailyCap)
	} else {
		r1 = ret.Get(1).(int64)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string, int64, int64) error); ok {
		r2 = rf(ctx, userID, day, requested, dailyCap)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockDailyCapRepository_Award_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Award'
type MockDailyCapRepository_Award_Call struct {
	*mock.Call
}

// Award is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - day string
//   - requested int64
//   - dailyCap int64
func (_e *MockDailyCapRepository_Expecter) Award(ctx interface{}, userID interface{}, day interface{}, requested interface{}, dailyCap interface{}) *MockDailyCapRepository_Award_Call {
	return &MockDailyCapRepository_Award_Call{Call: _e.mock.On("Award", ctx, userID, day, requested, dailyCap)}
}

func (_c *MockDailyCapRepository_Award_Call) Run(run func(ctx context.Context, userID string, day string, requested int64, dailyCap int64)) *MockDailyCapRepository_Award_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(int64), args[4].(int64))
	})
	return _c
}

func (_c *MockDailyCapRepository_Award_Call) Return(_a0 int64, _a1 int64, _a2 error) *MockDailyCapRepository_Award_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockDailyCapRepository_Award_Call) RunAndReturn(run func(context.Context, string, string, int64, int64) (int64, int64, error)) *MockDailyCapRepository_Award_Call {
	_c.Call.Return(run)
	return _c
}

// GetAwarded provides a mock function with given fields: ctx, userID, day
func (_m *MockDailyCapRepository) GetAwarded(ctx context.Context, userID string, day string) (int64, error) {
	ret := _m.Called(ctx, userID, day)

	if len(ret) == 0 {
		panic("no return value specified for GetAwarded")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (int64, error)); ok {
		return rf(ctx, userID, day)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) int64); ok {
		r0 = rf(ctx, userID, day)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, userID, day)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDailyCapRepository_GetAwarded_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetAwarded'
type MockDailyCapRepository_GetAwarded_Call struct {
	*mock.Call
}

// GetAwarded is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - day string
func (_e *MockDailyCapRepository_Expecter) GetAwarded(ctx interface{}, userID interface{}, day interface{}) *MockDailyCapRepository_GetAwarded_Call {
	return &MockDailyCapRepository_GetAwarded_Call{Call: _e.mock.On("GetAwarded", ctx, userID, day)}
}

func (_c *MockDailyCapRepository_GetAwarded_Call) Run(run func(ctx context.Context, userID string, day string)) *MockDailyCapRepository_GetAwarded_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockDailyCapRepository_GetAwarded_Call) Return(_a0 int64, _a1 error) *MockDailyCapRepository_GetAwarded_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDailyCapRepository_GetAwarded_Call) RunAndReturn(run func(context.Context, string, string) (int64, error)) *MockDailyCapRepository_GetAwarded_Call {
	_c.Call.Return(run)
	return _c
}

// PurgeBefore provides a mock function with given fields: ctx, day
func (_m *MockDailyCapRepository) PurgeBefore(ctx context.Context, day string) (int64, error) {
	ret := _m.Called(ctx, day)

	if len(ret) == 0 {
		panic("no return value specified for PurgeBefore")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, day)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, day)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, day)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockDailyCapRepository_PurgeBefore_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PurgeBefore'
type MockDailyCapRepository_PurgeBefore_Call struct {
	*mock.Call
}

// PurgeBefore is a helper method to define mock.On call
//   - ctx context.Context
//   - day string
func (_e *MockDailyCapRepository_Expecter) PurgeBefore(ctx interface{}, day interface{}) *MockDailyCapRepository_PurgeBefore_Call {
	return &MockDailyCapRepository_PurgeBefore_Call{Call: _e.mock.On("PurgeBefore", ctx, day)}
}

func (_c *MockDailyCapRepository_PurgeBefore_Call) Run(run func(ctx context.Context, day string)) *MockDailyCapRepository_PurgeBefore_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockDailyCapRepository_PurgeBefore_Call) Return(_a0 int64, _a1 error) *MockDailyCapRepository_PurgeBefore_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockDailyCapRepository_PurgeBefore_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockDailyCapRepository_PurgeBefore_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockDailyCapRepository creates a new instance of MockDailyCapRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDailyCapRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDailyCapRepository {
	mock := &MockDailyCapRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
