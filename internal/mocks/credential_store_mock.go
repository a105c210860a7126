// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/FindTheRhythm/stellar-burgers/internal/domain/model"
)

type MockCredentialStore struct {
	mock.Mock
}

func (m *MockCredentialStore) Load(ctx context.Context) (model.Credentials, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Credentials), args.Error(1)
}

func (m *MockCredentialStore) Save(ctx context.Context, creds model.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

func (m *MockCredentialStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
