package usecase

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockChatUseCase is a mock type for the ChatUseCase type
type MockChatUseCase struct {
	mock.Mock
}

type MockChatUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockChatUseCase) EXPECT() *MockChatUseCase_Expecter {
	return &MockChatUseCase_Expecter{mock: &_m.Mock}
}

// Send provides a mock function with given fields: ctx, userID, channel, text
func (_m *MockChatUseCase) Send(ctx context.Context, userID string, channel string, text string) (*entity.ChatMessage, error) {
	ret := _m.Called(ctx, userID, channel, text)

	if len(ret) == 0 {
		panic("no return value specified for Send")
	}

	var r0 *entity.ChatMessage
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (*entity.ChatMessage, error)); ok {
		return rf(ctx, userID, channel, text)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *entity.ChatMessage); ok {
		r0 = rf(ctx, userID, channel, text)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.ChatMessage)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, userID, channel, text)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockChatUseCase_Send_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Send'
type MockChatUseCase_Send_Call struct {
	*mock.Call
}

// Send is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - channel string
//   - text string
func (_e *MockChatUseCase_Expecter) Send(ctx interface{}, userID interface{}, channel interface{}, text interface{}) *MockChatUseCase_Send_Call {
	return &MockChatUseCase_Send_Call{Call: _e.mock.On("Send", ctx, userID, channel, text)}
}

func (_c *MockChatUseCase_Send_Call) Run(run func(ctx context.Context, userID string, channel string, text string)) *MockChatUseCase_Send_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockChatUseCase_Send_Call) Return(_a0 *entity.ChatMessage, _a1 error) *MockChatUseCase_Send_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatUseCase_Send_Call) RunAndReturn(run func(context.Context, string, string, string) (*entity.ChatMessage, error)) *MockChatUseCase_Send_Call {
	_c.Call.Return(run)
	return _c
}

// History provides a mock function with given fields: ctx, channel, limit
func (_m *MockChatUseCase) History(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error) {
	ret := _m.Called(ctx, channel, limit)

	if len(ret) == 0 {
		panic("no return value specified for History")
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

// MockChatUseCase_History_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'History'
type MockChatUseCase_History_Call struct {
	*mock.Call
}

// History is a helper method to define mock.On call
//   - ctx context.Context
//   - channel string
//   - limit int
func (_e *MockChatUseCase_Expecter) History(ctx interface{}, channel interface{}, limit interface{}) *MockChatUseCase_History_Call {
	return &MockChatUseCase_History_Call{Call: _e.mock.On("History", ctx, channel, limit)}
}

func (_c *MockChatUseCase_History_Call) Run(run func(ctx context.Context, channel string, limit int)) *MockChatUseCase_History_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int))
	})
	return _c
}

func (_c *MockChatUseCase_History_Call) Return(_a0 []*entity.ChatMessage, _a1 error) *MockChatUseCase_History_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockChatUseCase_History_Call) RunAndReturn(run func(context.Context, string, int) ([]*entity.ChatMessage, error)) *MockChatUseCase_History_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockChatUseCase creates a new instance of MockChatUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockChatUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatUseCase {
	mock := &MockChatUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
