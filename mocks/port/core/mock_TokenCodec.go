package core

import mock "github.com/stretchr/testify/mock"

// MockTokenCodec is a mock type for the TokenCodec type
type MockTokenCodec struct {
	mock.Mock
}

type MockTokenCodec_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenCodec) EXPECT() *MockTokenCodec_Expecter {
	return &MockTokenCodec_Expecter{mock: &_m.Mock}
}

// Encode provides a mock function with given fields: userID
func (_m *MockTokenCodec) Encode(userID string) (string, error) {
	ret := _m.Called(userID)

	if len(ret) == 0 {
		panic("no return value specified for Encode")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(userID)
	}
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(userID)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenCodec_Encode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Encode'
type MockTokenCodec_Encode_Call struct {
	*mock.Call
}

// Encode is a helper method to define mock.On call
//   - userID string
func (_e *MockTokenCodec_Expecter) Encode(userID interface{}) *MockTokenCodec_Encode_Call {
	return &MockTokenCodec_Encode_Call{Call: _e.mock.On("Encode", userID)}
}

func (_c *MockTokenCodec_Encode_Call) Run(run func(userID string)) *MockTokenCodec_Encode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenCodec_Encode_Call) Return(_a0 string, _a1 error) *MockTokenCodec_Encode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenCodec_Encode_Call) RunAndReturn(run func(string) (string, error)) *MockTokenCodec_Encode_Call {
	_c.Call.Return(run)
	return _c
}

// Decode provides a mock function with given fields: token
func (_m *MockTokenCodec) Decode(token string) (string, error) {
	ret := _m.Called(token)

	if len(ret) == 0 {
		panic("no return value specified for Decode")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (string, error)); ok {
		return rf(token)
	}
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(token)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(token)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenCodec_Decode_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Decode'
type MockTokenCodec_Decode_Call struct {
	*mock.Call
}

// Decode is a helper method to define mock.On call
//   - token string
func (_e *MockTokenCodec_Expecter) Decode(token interface{}) *MockTokenCodec_Decode_Call {
	return &MockTokenCodec_Decode_Call{Call: _e.mock.On("Decode", token)}
}

func (_c *MockTokenCodec_Decode_Call) Run(run func(token string)) *MockTokenCodec_Decode_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockTokenCodec_Decode_Call) Return(_a0 string, _a1 error) *MockTokenCodec_Decode_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTokenCodec_Decode_Call) RunAndReturn(run func(string) (string, error)) *MockTokenCodec_Decode_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTokenCodec creates a new instance of MockTokenCodec. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTokenCodec(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenCodec {
	mock := &MockTokenCodec{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
