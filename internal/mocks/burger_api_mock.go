// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

type MockBurgerAPI struct {
	mock.Mock
}

func (m *MockBurgerAPI) GetIngredients(ctx context.Context) ([]model.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Ingredient), args.Error(1)
}

func (m *MockBurgerAPI) CreateOrder(ctx context.Context, ingredientIDs []string) (model.Order, error) {
	args := m.Called(ctx, ingredientIDs)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *MockBurgerAPI) GetOrderByNumber(ctx context.Context, number int) ([]model.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockBurgerAPI) GetOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockBurgerAPI) GetFeed(ctx context.Context) (model.Feed, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Feed), args.Error(1)
}

func (m *MockBurgerAPI) Register(ctx context.Context, data model.RegisterData) (model.AuthResult, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(model.AuthResult), args.Error(1)
}

func (m *MockBurgerAPI) Login(ctx context.Context, data model.LoginData) (model.AuthResult, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(model.AuthResult), args.Error(1)
}

func (m *MockBurgerAPI) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBurgerAPI) GetUser(ctx context.Context) (model.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.UserProfile), args.Error(1)
}

func (m *MockBurgerAPI) UpdateUser(ctx context.Context, update model.ProfileUpdate) (model.UserProfile, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(model.UserProfile), args.Error(1)
}

func (m *MockBurgerAPI) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockBurgerAPI) ResetPassword(ctx context.Context, password, token string) error {
	args := m.Called(ctx, password, token)
	return args.Error(0)
}
