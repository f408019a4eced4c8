package usecase

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	usecase "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock type for the AuthUseCase type
type MockAuthUseCase struct {
	mock.Mock
}

type MockAuthUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUseCase) EXPECT() *MockAuthUseCase_Expecter {
	return &MockAuthUseCase_Expecter{mock: &_m.Mock}
}

// IssueGuest provides a mock function with given fields: ctx
func (_m *MockAuthUseCase) IssueGuest(ctx context.Context) (*usecase.GuestSession, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for IssueGuest")
	}

	var r0 *usecase.GuestSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*usecase.GuestSession, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *usecase.GuestSession); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.GuestSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUseCase_IssueGuest_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'IssueGuest'
type MockAuthUseCase_IssueGuest_Call struct {
	*mock.Call
}

// IssueGuest is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockAuthUseCase_Expecter) IssueGuest(ctx interface{}) *MockAuthUseCase_IssueGuest_Call {
	return &MockAuthUseCase_IssueGuest_Call{Call: _e.mock.On("IssueGuest", ctx)}
}

func (_c *MockAuthUseCase_IssueGuest_Call) Run(run func(ctx context.Context)) *MockAuthUseCase_IssueGuest_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockAuthUseCase_IssueGuest_Call) Return(_a0 *usecase.GuestSession, _a1 error) *MockAuthUseCase_IssueGuest_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUseCase_IssueGuest_Call) RunAndReturn(run func(context.Context) (*usecase.GuestSession, error)) *MockAuthUseCase_IssueGuest_Call {
	_c.Call.Return(run)
	return _c
}

// Authenticate provides a mock function with given fields: ctx, token
func (_m *MockAuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	ret := _m.Called(ctx, token)

	if len(ret) == 0 {
		panic("no return value specified for Authenticate")
	}

	var r0 *entity.User
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.User, error)); ok {
		return rf(ctx, token)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.User); ok {
		r0 = rf(ctx, token)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.User)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAuthUseCase_Authenticate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Authenticate'
type MockAuthUseCase_Authenticate_Call struct {
	*mock.Call
}

// Authenticate is a helper method to define mock.On call
//   - ctx context.Context
//   - token string
func (_e *MockAuthUseCase_Expecter) Authenticate(ctx interface{}, token interface{}) *MockAuthUseCase_Authenticate_Call {
	return &MockAuthUseCase_Authenticate_Call{Call: _e.mock.On("Authenticate", ctx, token)}
}

func (_c *MockAuthUseCase_Authenticate_Call) Run(run func(ctx context.Context, token string)) *MockAuthUseCase_Authenticate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAuthUseCase_Authenticate_Call) Return(_a0 *entity.User, _a1 error) *MockAuthUseCase_Authenticate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAuthUseCase_Authenticate_Call) RunAndReturn(run func(context.Context, string) (*entity.User, error)) *MockAuthUseCase_Authenticate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAuthUseCase creates a new instance of MockAuthUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAuthUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUseCase {
	mock := &MockAuthUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
