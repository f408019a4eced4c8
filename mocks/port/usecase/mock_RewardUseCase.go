package usecase

import (
	"context"
	entity "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockRewardUseCase is a mock type for the RewardUseCase type
type MockRewardUseCase struct {
	mock.Mock
}

type MockRewardUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRewardUseCase) EXPECT() *MockRewardUseCase_Expecter {
	return &MockRewardUseCase_Expecter{mock: &_m.Mock}
}

// ClaimFishingReward provides a mock function with given fields: ctx, userID, success
func (_m *MockRewardUseCase) ClaimFishingReward(ctx context.Context, userID string, success bool) (*entity.FishingClaimResult, error) {
	ret := _m.Called(ctx, userID, success)

	if len(ret) == 0 {
		panic("no return value specified for ClaimFishingReward")
	}

	var r0 *entity.FishingClaimResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) (*entity.FishingClaimResult, error)); ok {
		return rf(ctx, userID, success)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, bool) *entity.FishingClaimResult); ok {
		r0 = rf(ctx, userID, success)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.FishingClaimResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, bool) error); ok {
		r1 = rf(ctx, userID, success)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRewardUseCase_ClaimFishingReward_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ClaimFishingReward'
type MockRewardUseCase_ClaimFishingReward_Call struct {
	*mock.Call
}

// ClaimFishingReward is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
//   - success bool
func (_e *MockRewardUseCase_Expecter) ClaimFishingReward(ctx interface{}, userID interface{}, success interface{}) *MockRewardUseCase_ClaimFishingReward_Call {
	return &MockRewardUseCase_ClaimFishingReward_Call{Call: _e.mock.On("ClaimFishingReward", ctx, userID, success)}
}

func (_c *MockRewardUseCase_ClaimFishingReward_Call) Run(run func(ctx context.Context, userID string, success bool)) *MockRewardUseCase_ClaimFishingReward_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(bool))
	})
	return _c
}

func (_c *MockRewardUseCase_ClaimFishingReward_Call) Return(_a0 *entity.FishingClaimResult, _a1 error) *MockRewardUseCase_ClaimFishingReward_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRewardUseCase_ClaimFishingReward_Call) RunAndReturn(run func(context.Context, string, bool) (*entity.FishingClaimResult, error)) *MockRewardUseCase_ClaimFishingReward_Call {
	_c.Call.Return(run)
	return _c
}

// Limits provides a mock function with given fields: ctx, userID
func (_m *MockRewardUseCase) Limits(ctx context.Context, userID string) (*entity.DailyLimits, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for Limits")
	}

	var r0 *entity.DailyLimits
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.DailyLimits, error)); ok {
		return rf(ctx, userID)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.DailyLimits); ok {
		r0 = rf(ctx, userID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*entity.DailyLimits)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRewardUseCase_Limits_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Limits'
type MockRewardUseCase_Limits_Call struct {
	*mock.Call
}

// Limits is a helper method to define mock.On call
//   - ctx context.Context
//   - userID string
func (_e *MockRewardUseCase_Expecter) Limits(ctx interface{}, userID interface{}) *MockRewardUseCase_Limits_Call {
	return &MockRewardUseCase_Limits_Call{Call: _e.mock.On("Limits", ctx, userID)}
}

func (_c *MockRewardUseCase_Limits_Call) Run(run func(ctx context.Context, userID string)) *MockRewardUseCase_Limits_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})
	return _c
}

func (_c *MockRewardUseCase_Limits_Call) Return(_a0 *entity.DailyLimits, _a1 error) *MockRewardUseCase_Limits_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockRewardUseCase_Limits_Call) RunAndReturn(run func(context.Context, string) (*entity.DailyLimits, error)) *MockRewardUseCase_Limits_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRewardUseCase creates a new instance of MockRewardUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRewardUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRewardUseCase {
	mock := &MockRewardUseCase{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
