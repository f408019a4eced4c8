package persistence

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockChatRepository is a mock type for the ChatRepository type
type MockChatRepository struct {
	mock.Mock
}

type MockChatRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockChatRepository) EXPECT() *MockChatRepository_Expecter {
	return &MockChatRepository_Expecter{mock: &_m.Mock}
}

// Append provides a mock function with given fields: ctx, msg
func (_m *MockChatRepository) Append(ctx context.Context, msg *entity.ChatMessage) error {
	ret := _m.Called(ctx, msg)

	if len(ret) == 0 {
		panic("no return value specified for Append")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.ChatMessage) error); ok {
		r0 = rf(ctx, msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockChatRepository_Append_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Append'
type MockChatRepository_Append_Call struct {
	*mock.Call
}

// Append is a helper method to define mock.On call
//   - ctx context.Context
//   - msg *entity.ChatMessage
func (_e *MockChatRepository_Expecter) Append(ctx interface{}, msg interface{}) *MockChatRepository_Append_Call {
	return &MockChatRepository_Append_Call{Call: _e.mock.On("Append", ctx, msg)}
}

func (_c *MockChatRepository_Append_Call) Run(run func(ctx context.Context, msg *entity.ChatMessage)) *MockChatRepository_Append_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.ChatMessage))
	})
	return _c
}

func (_c *MockChatRepository_Append_Call) Return(_a0 error) *MockChatRepository_Append_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockChatRepository_Append_Call) RunAndReturn(run func(context.Context, *entity.ChatMessage) error) *MockChatRepository_Append_Call {
	_c.Call.Return(run)
	return _c
}

// ListRecent provides a mock function with given fields: ctx, channel, limit
func (_m *MockChatRepository) ListRecent(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error) {
	ret := _m.Called(ctx, channel, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListRecent")
	}

	var r0 []*entity.ChatMessage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*entity.ChatMessage, error)); ok {
		return rf(ctx, channel, limit)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*entity.ChatMessage); ok {
		r0 = rf(ctx, channel, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*entity.ChatMessage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, channel, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatRepository_ListRecent_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListRecent'
type MockChatRepository_ListRecent_Call struct {
	*mock.Call
}

// ListRecent is a helper method to define mock.On call
//   - ctx context.Context
//   - channel string
//   - limit int
func (_e *MockChatRepository_Expecter) ListRecent(ctx interface{}, channel interface{}, limit interface{}) *MockChatRepository_ListRecent_Call {
	return &MockChatRepository_ListRecent_Call{Call: _e.mock.On("ListRecent", ctx, channel, limit)}
}

func (_c *MockChatRepository_ListRecent_Call) Run(run func(ctx context.Context, channel string, limit int)) *MockChatRepository_ListRecent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockChatRepository_ListRecent_Call) Return(_a0 []*entity.ChatMessage, _a1 error) *MockChatRepository_ListRecent_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatRepository_ListRecent_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.ChatMessage, error)) *MockChatRepository_ListRecent_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockChatRepository creates a new instance of MockChatRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockChatRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatRepository {
	mock := &MockChatRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
