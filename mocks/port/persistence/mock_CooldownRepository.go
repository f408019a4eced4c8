package persistence

import (
	"context"
	"time"

	mock "github.com/stretchr/testify/mock"
)

// MockCooldownRepository is a mock type for the CooldownRepository type
type MockCooldownRepository struct {
	mock.Mock
}

type MockCooldownRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCooldownRepository) EXPECT() *MockCooldownRepository_Expecter {
	return &MockCooldownRepository_Expecter{mock: &_m.Mock}
}

// TryConsume provides a mock function with given fields: ctx, userID, action, now, cooldown
func (_m *MockCooldownRepository) TryConsume(ctx context.Context, userID string, action string, now time.Time, cooldown time.Duration) (bool, time.Time, error) {
	ret := _m.Called(ctx, userID, action, now, cooldown)

	if len(ret) == 0 {
		panic("no return value specified for TryConsume")
	}

	var r0 bool
	var r1 time.Time
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Time, time.Duration) (bool, time.Time, error)); ok {
		return rf(ctx, userID, action, now, cooldown)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, time.Time, time.Duration) bool); ok {
		r0 = rf(ctx, userID, action, now, cooldown)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, time.Time, time.Duration) time.Time); ok {
		r1 = rf(ctx, userID, action, now, cooldown)
	} else {
		r1 = ret.Get(1).(time.Time)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string, time.Time, time.Duration) error); ok {
		r2 = rf(ctx, userID, action, now, cooldown)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockCooldownRepository_TryConsume_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'TryConsume'
type MockCooldownRepository_TryConsume_Call struct {
	*mock.Call
}

// TryConsume is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - action string
//   - now time.Time
//   - cooldown time.Duration
func (_e *MockCooldownRepository_Expecter) TryConsume(ctx interface{}, userID interface{}, action interface{}, now interface{}, cooldown interface{}) *MockCooldownRepository_TryConsume_Call {
	return &MockCooldownRepository_TryConsume_Call{Call: _e.mock.On("TryConsume", ctx, userID, action, now, cooldown)}
}

func (_c *MockCooldownRepository_TryConsume_Call) Run(run func(ctx context.Context, userID string, action string, now time.Time, cooldown time.Duration)) *MockCooldownRepository_TryConsume_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(time.Time), args[4].(time.Duration))
	})
	return _c
}

func (_c *MockCooldownRepository_TryConsume_Call) Return(_a0 bool, _a1 time.Time, _a2 error) *MockCooldownRepository_TryConsume_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockCooldownRepository_TryConsume_Call) RunAndReturn(run func(context.Context, string, string, time.Time, time.Duration) (bool, time.Time, error)) *MockCooldownRepository_TryConsume_Call {
	_c.Call.Return(run)
	return _c
}

// PurgeExpired provides a mock function with given fields: ctx, before
func (_m *MockCooldownRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	ret := _m.Called(ctx, before)

	if len(ret) == 0 {
		panic("no return value specified for PurgeExpired")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) (int64, error)); ok {
		return rf(ctx, before)
	}
	if rf, ok := ret.Get(0).(func(context.Context, time.Time) int64); ok {
		r0 = rf(ctx, before)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, time.Time) error); ok {
		r1 = rf(ctx, before)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockCooldownRepository_PurgeExpired_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'PurgeExpired'
type MockCooldownRepository_PurgeExpired_Call struct {
	*mock.Call
}

// PurgeExpired is a helper method to define mock.On call
//   - ctx context.Context
//   - before time.Time
func (_e *MockCooldownRepository_Expecter) PurgeExpired(ctx interface{}, before interface{}) *MockCooldownRepository_PurgeExpired_Call {
	return &MockCooldownRepository_PurgeExpired_Call{Call: _e.mock.On("PurgeExpired", ctx, before)}
}

func (_c *MockCooldownRepository_PurgeExpired_Call) Run(run func(ctx context.Context, before time.Time)) *MockCooldownRepository_PurgeExpired_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(time.Time))
	})
	return _c
}

func (_c *MockCooldownRepository_PurgeExpired_Call) Return(_a0 int64, _a1 error) *MockCooldownRepository_PurgeExpired_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockCooldownRepository_PurgeExpired_Call) RunAndReturn(run func(context.Context, time.Time) (int64, error)) *MockCooldownRepository_PurgeExpired_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockCooldownRepository creates a new instance of MockCooldownRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockCooldownRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCooldownRepository {
	mock := &MockCooldownRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
