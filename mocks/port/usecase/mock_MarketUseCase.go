package usecase

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockMarketUseCase is a mock type for the MarketUseCase type
type MockMarketUseCase struct {
	mock.Mock
}

type MockMarketUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMarketUseCase) EXPECT() *MockMarketUseCase_Expecter {
	return &MockMarketUseCase_Expecter{mock: &_m.Mock}
}

// Sell provides a mock function with given fields: ctx, userID, item, qty
func (_m *MockMarketUseCase) Sell(ctx context.Context, userID string, item string, qty float64) (*entity.SaleResult, error) {
	ret := _m.Called(ctx, userID, item, qty)

	if len(ret) == 0 {
		panic("no return value specified for Sell")
	}

	var r0 *entity.SaleResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, float64) (*entity.SaleResult, error)); ok {
		return rf(ctx, userID, item, qty)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, float64) *entity.SaleResult); ok {
		r0 = rf(ctx, userID, item, qty)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.SaleResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, float64) error); ok {
		r1 = rf(ctx, userID, item, qty)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMarketUseCase_Sell_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Sell'
type MockMarketUseCase_Sell_Call struct {
	*mock.Call
}

// Sell is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - item string
//   - qty float64
func (_e *MockMarketUseCase_Expecter) Sell(ctx interface{}, userID interface{}, item interface{}, qty interface{}) *MockMarketUseCase_Sell_Call {
	return &MockMarketUseCase_Sell_Call{Call: _e.mock.On("Sell", ctx, userID, item, qty)}
}

func (_c *MockMarketUseCase_Sell_Call) Run(run func(ctx context.Context, userID string, item string, qty float64)) *MockMarketUseCase_Sell_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(float64))
	})
	return _c
}

func (_c *MockMarketUseCase_Sell_Call) Return(_a0 *entity.SaleResult, _a1 error) *MockMarketUseCase_Sell_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMarketUseCase_Sell_Call) RunAndReturn(run func(context.Context, string, string, float64) (*entity.SaleResult, error)) *MockMarketUseCase_Sell_Call {
	_c.Call.Return(run)
	return _c
}

// Prices provides a mock function with given fields: 
func (_m *MockMarketUseCase) Prices() map[string]int64 {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Prices")
	}

	var r0 map[string]int64
	if rf, ok := ret.Get(0).(func() map[string]int64); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(map[string]int64)
		}
	}

	return r0
}

// MockMarketUseCase_Prices_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Prices'
type MockMarketUseCase_Prices_Call struct {
	*mock.Call
}

// Prices is a helper method to define mock.On call
func (_e *MockMarketUseCase_Expecter) Prices() *MockMarketUseCase_Prices_Call {
	return &MockMarketUseCase_Prices_Call{Call: _e.mock.On("Prices")}
}

func (_c *MockMarketUseCase_Prices_Call) Run(run func()) *MockMarketUseCase_Prices_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockMarketUseCase_Prices_Call) Return(_a0 map[string]int64) *MockMarketUseCase_Prices_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMarketUseCase_Prices_Call) RunAndReturn(run func() map[string]int64) *MockMarketUseCase_Prices_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMarketUseCase creates a new instance of MockMarketUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMarketUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMarketUseCase {
	mock := &MockMarketUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
