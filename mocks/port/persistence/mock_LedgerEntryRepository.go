package persistence

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockLedgerEntryRepository is a mock type for the LedgerEntryRepository type
type MockLedgerEntryRepository struct {
	mock.Mock
}

type MockLedgerEntryRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLedgerEntryRepository) EXPECT() *MockLedgerEntryRepository_Expecter {
	return &MockLedgerEntryRepository_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, entry
func (_m *MockLedgerEntryRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	ret := _m.Called(ctx, entry)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.LedgerEntry) error); ok {
		r0 = rf(ctx, entry)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockLedgerEntryRepository_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockLedgerEntryRepository_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - entry *entity.LedgerEntry
func (_e *MockLedgerEntryRepository_Expecter) Append(ctx interface{}, entry interface{}) *MockLedgerEntryRepository_Append_Call {
	return &MockLedgerEntryRepository_Append_Call{Call: _e.mock.On("Append", ctx, entry)}
}

func (_c *MockLedgerEntryRepository_Append_Call) Run(run func(ctx context.Context, entry *entity.LedgerEntry)) *MockLedgerEntryRepository_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.LedgerEntry))
	})
	return _c
}

func (_c *MockLedgerEntryRepository_Append_Call) Return(_a0 error) *MockLedgerEntryRepository_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerEntryRepository_Append_Call) RunAndReturn(run func(context.Context, *entity.LedgerEntry) error) *MockLedgerEntryRepository_Append_Call {
	_c.Call.Return(run)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID, limit
func (_m *MockLedgerEntryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error) {
	ret := _m.Called(ctx, userID, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	var r0 []*entity.LedgerEntry
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*entity.LedgerEntry, error)); ok {
		return rf(ctx, userID, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*entity.LedgerEntry); ok {
		r0 = rf(ctx, userID, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.LedgerEntry)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerEntryRepository_ListByUser_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListByUser'
type MockLedgerEntryRepository_ListByUser_Call struct {
	*mock.Call
}

// ListByUser is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - limit int
func (_e *MockLedgerEntryRepository_Expecter) ListByUser(ctx interface{}, userID interface{}, limit interface{}) *MockLedgerEntryRepository_ListByUser_Call {
	return &MockLedgerEntryRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID, limit)}
}

func (_c *MockLedgerEntryRepository_ListByUser_Call) Run(run func(ctx context.Context, userID string, limit int)) *MockLedgerEntryRepository_ListByUser_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockLedgerEntryRepository_ListByUser_Call) Return(_a0 []*entity.LedgerEntry, _a1 error) *MockLedgerEntryRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerEntryRepository_ListByUser_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.LedgerEntry, error)) *MockLedgerEntryRepository_ListByUser_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLedgerEntryRepository creates a new instance of MockLedgerEntryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLedgerEntryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerEntryRepository {
	mock := &MockLedgerEntryRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
