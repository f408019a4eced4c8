package persistence

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock type for the LedgerRepository type
type MockLedgerRepository struct {
	mock.Mock
}

type MockLedgerRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLedgerRepository) EXPECT() *MockLedgerRepository_Expecter {
	return &MockLedgerRepository_Expecter{mock: &_m.Mock}
}

// CreditWallet provides a mock function with given fields: ctx, userID, delta
func (_m *MockLedgerRepository) CreditWallet(ctx context.Context, userID string, delta int64) (int64, error) {
	ret := _m.Called(ctx, userID, delta)

	if len(ret) == 0 {
		panic("no return value specified for CreditWallet")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) (int64, error)); ok {
		return rf(ctx, userID, delta)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) int64); ok {
		r0 = rf(ctx, userID, delta)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, userID, delta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerRepository_CreditWallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'CreditWallet'
type MockLedgerRepository_CreditWallet_Call struct {
	*mock.Call
}

// CreditWallet is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - delta int64
func (_e *MockLedgerRepository_Expecter) CreditWallet(ctx interface{}, userID interface{}, delta interface{}) *MockLedgerRepository_CreditWallet_Call {
	return &MockLedgerRepository_CreditWallet_Call{Call: _e.mock.On("CreditWallet", ctx, userID, delta)}
}

func (_c *MockLedgerRepository_CreditWallet_Call) Run(run func(ctx context.Context, userID string, delta int64)) *MockLedgerRepository_CreditWallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(int64))
	})
	return _c
}

func (_c *MockLedgerRepository_CreditWallet_Call) Return(_a0 int64, _a1 error) *MockLedgerRepository_CreditWallet_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_CreditWallet_Call) RunAndReturn(run func(context.Context, string, int64) (int64, error)) *MockLedgerRepository_CreditWallet_Call {
	_c.Call.Return(run)
	return _c
}

// GetWallet provides a mock function with given fields: ctx, userID
func (_m *MockLedgerRepository) GetWallet(ctx context.Context, userID string) (int64, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for GetWallet")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (int64, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) int64); ok {
		r0 = rf(ctx, userID)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerRepository_GetWallet_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetWallet'
type MockLedgerRepository_GetWallet_Call struct {
	*mock.Call
}

// GetWallet is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockLedgerRepository_Expecter) GetWallet(ctx interface{}, userID interface{}) *MockLedgerRepository_GetWallet_Call {
	return &MockLedgerRepository_GetWallet_Call{Call: _e.mock.On("GetWallet", ctx, userID)}
}

func (_c *MockLedgerRepository_GetWallet_Call) Run(run func(ctx context.Context, userID string)) *MockLedgerRepository_GetWallet_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLedgerRepository_GetWallet_Call) Return(_a0 int64, _a1 error) *MockLedgerRepository_GetWallet_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_GetWallet_Call) RunAndReturn(run func(context.Context, string) (int64, error)) *MockLedgerRepository_GetWallet_Call {
	_c.Call.Return(run)
	return _c
}

// AddItem provides a mock function with given fields: ctx, userID, item, qty
func (_m *MockLedgerRepository) AddItem(ctx context.Context, userID string, item string, qty int64) (int64, error) {
	ret := _m.Called(ctx, userID, item, qty)

	if len(ret) == 0 {
		panic("no return value specified for AddItem")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) (int64, error)); ok {
		return rf(ctx, userID, item, qty)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) int64); ok {
		r0 = rf(ctx, userID, item, qty)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, int64) error); ok {
		r1 = rf(ctx, userID, item, qty)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerRepository_AddItem_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddItem'
type MockLedgerRepository_AddItem_Call struct {
	*mock.Call
}

// AddItem is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - item string
//   - qty int64
func (_e *MockLedgerRepository_Expecter) AddItem(ctx interface{}, userID interface{}, item interface{}, qty interface{}) *MockLedgerRepository_AddItem_Call {
	return &MockLedgerRepository_AddItem_Call{Call: _e.mock.On("AddItem", ctx, userID, item, qty)}
}

func (_c *MockLedgerRepository_AddItem_Call) Run(run func(ctx context.Context, userID string, item string, qty int64)) *MockLedgerRepository_AddItem_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(int64))
	})
	return _c
}

func (_c *MockLedgerRepository_AddItem_Call) Return(_a0 int64, _a1 error) *MockLedgerRepository_AddItem_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_AddItem_Call) RunAndReturn(run func(context.Context, string, string, int64) (int64, error)) *MockLedgerRepository_AddItem_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveItem provides a mock function with given fields: ctx, userID, item, qty
func (_m *MockLedgerRepository) RemoveItem(ctx context.Context, userID string, item string, qty int64) (int64, error) {
	ret := _m.Called(ctx, userID, item, qty)

	if len(ret) == 0 {
		panic("no return value specified for RemoveItem")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) (int64, error)); ok {
		return rf(ctx, userID, item, qty)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) int64); ok {
		r0 = rf(ctx, userID, item, qty)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, int64) error); ok {
		r1 = rf(ctx, userID, item, qty)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerRepository_RemoveItem_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveItem'
type MockLedgerRepository_RemoveItem_Call struct {
	*mock.Call
}

// RemoveItem is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - item string
//   - qty int64
func (_e *MockLedgerRepository_Expecter) RemoveItem(ctx interface{}, userID interface{}, item interface{}, qty interface{}) *MockLedgerRepository_RemoveItem_Call {
	return &MockLedgerRepository_RemoveItem_Call{Call: _e.mock.On("RemoveItem", ctx, userID, item, qty)}
}

func (_c *MockLedgerRepository_RemoveItem_Call) Run(run func(ctx context.Context, userID string, item string, qty int64)) *MockLedgerRepository_RemoveItem_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(int64))
	})
	return _c
}

func (_c *MockLedgerRepository_RemoveItem_Call) Return(_a0 int64, _a1 error) *MockLedgerRepository_RemoveItem_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_RemoveItem_Call) RunAndReturn(run func(context.Context, string, string, int64) (int64, error)) *MockLedgerRepository_RemoveItem_Call {
	_c.Call.Return(run)
	return _c
}

// GetItemQty provides a mock function with given fields: ctx, userID, item
func (_m *MockLedgerRepository) GetItemQty(ctx context.Context, userID string, item string) (int64, error) {
	ret := _m.Called(ctx, userID, item)

	if len(ret) == 0 {
		panic("no return value specified for GetItemQty")
	}

	var r0 int64
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (int64, error)); ok {
		return rf(ctx, userID, item)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string) int64); ok {
		r0 = rf(ctx, userID, item)
	} else {
		r0 = ret.Get(0).(int64)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, userID, item)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerRepository_GetItemQty_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetItemQty'
type MockLedgerRepository_GetItemQty_Call struct {
	*mock.Call
}

// GetItemQty is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - item string
func (_e *MockLedgerRepository_Expecter) GetItemQty(ctx interface{}, userID interface{}, item interface{}) *MockLedgerRepository_GetItemQty_Call {
	return &MockLedgerRepository_GetItemQty_Call{Call: _e.mock.On("GetItemQty", ctx, userID, item)}
}

func (_c *MockLedgerRepository_GetItemQty_Call) Run(run func(ctx context.Context, userID string, item string)) *MockLedgerRepository_GetItemQty_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string))
	})
	return _c
}

func (_c *MockLedgerRepository_GetItemQty_Call) Return(_a0 int64, _a1 error) *MockLedgerRepository_GetItemQty_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_GetItemQty_Call) RunAndReturn(run func(context.Context, string, string) (int64, error)) *MockLedgerRepository_GetItemQty_Call {
	_c.Call.Return(run)
	return _c
}

// ListInventory provides a mock function with given fields: ctx, userID
func (_m *MockLedgerRepository) ListInventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListInventory")
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

// MockLedgerRepository_ListInventory_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListInventory'
type MockLedgerRepository_ListInventory_Call struct {
	*mock.Call
}

// ListInventory is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockLedgerRepository_Expecter) ListInventory(ctx interface{}, userID interface{}) *MockLedgerRepository_ListInventory_Call {
	return &MockLedgerRepository_ListInventory_Call{Call: _e.mock.On("ListInventory", ctx, userID)}
}

func (_c *MockLedgerRepository_ListInventory_Call) Run(run func(ctx context.Context, userID string)) *MockLedgerRepository_ListInventory_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockLedgerRepository_ListInventory_Call) Return(_a0 []entity.InventoryItem, _a1 error) *MockLedgerRepository_ListInventory_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerRepository_ListInventory_Call) RunAndReturn(run func(context.Context, string) ([]entity.InventoryItem, error)) *MockLedgerRepository_ListInventory_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLedgerRepository creates a new instance of MockLedgerRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLedgerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerRepository {
	mock := &MockLedgerRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
