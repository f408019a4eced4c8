package usecase

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockAccountUseCase is a mock type for the AccountUseCase type
type MockAccountUseCase struct {
	mock.Mock
}

type MockAccountUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAccountUseCase) EXPECT() *MockAccountUseCase_Expecter {
	return &MockAccountUseCase_Expecter{mock: &_m.Mock}
}

// Wallet provides a mock function with given fields: ctx, userID
func (_m *MockAccountUseCase) Wallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Wallet")
	}

	var r0 *entity.Wallet
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Wallet, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Wallet); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.Wallet)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUseCase_Wallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Wallet'
type MockAccountUseCase_Wallet_Call struct {
	*mock.Call
}

// Wallet is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockAccountUseCase_Expecter) Wallet(ctx interface{}, userID interface{}) *MockAccountUseCase_Wallet_Call {
	return &MockAccountUseCase_Wallet_Call{Call: _e.mock.On("Wallet", ctx, userID)}
}

func (_c *MockAccountUseCase_Wallet_Call) Run(run func(ctx context.Context, userID string)) *MockAccountUseCase_Wallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAccountUseCase_Wallet_Call) Return(_a0 *entity.Wallet, _a1 error) *MockAccountUseCase_Wallet_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUseCase_Wallet_Call) RunAndReturn(run func(context.Context, string) (*entity.Wallet, error)) *MockAccountUseCase_Wallet_Call {
	_c.Call.Return(run)
	return _c
}

// Inventory provides a mock function with given fields: ctx, userID
func (_m *MockAccountUseCase) Inventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Inventory")
	}

	var r0 []entity.InventoryItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) ([]entity.InventoryItem, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) []entity.InventoryItem); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]entity.InventoryItem)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockAccountUseCase_Inventory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Inventory'
type MockAccountUseCase_Inventory_Call struct {
	*mock.Call
}

// Inventory is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockAccountUseCase_Expecter) Inventory(ctx interface{}, userID interface{}) *MockAccountUseCase_Inventory_Call {
	return &MockAccountUseCase_Inventory_Call{Call: _e.mock.On("Inventory", ctx, userID)}
}

func (_c *MockAccountUseCase_Inventory_Call) Run(run func(ctx context.Context, userID string)) *MockAccountUseCase_Inventory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockAccountUseCase_Inventory_Call) Return(_a0 []entity.InventoryItem, _a1 error) *MockAccountUseCase_Inventory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockAccountUseCase_Inventory_Call) RunAndReturn(run func(context.Context, string) ([]entity.InventoryItem, error)) *MockAccountUseCase_Inventory_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockAccountUseCase creates a new instance of MockAccountUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAccountUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAccountUseCase {
	mock := &MockAccountUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
