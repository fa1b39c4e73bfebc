package session_test

import (
	"context"

	"parceltrack/internal/core/domain/model/identity"

	"github.com/stretchr/testify/mock"
)

type MockAuthGateway struct{ mock.Mock }

func (m *MockAuthGateway) Login(ctx context.Context, c identity.Credentials) (string, error) {
	args := m.Called(ctx, c)
	return args.String(0), args.Error(1)
}

func (m *MockAuthGateway) Me(ctx context.Context, token string) (identity.Identity, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(identity.Identity), args.Error(1)
}

type MockTokenStorage struct{ mock.Mock }

func (m *MockTokenStorage) Load(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStorage) Save(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenStorage) Clear(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockPrompter struct{ mock.Mock }

func (m *MockPrompter) PromptReauthentication(ctx context.Context, cause error) {
	m.Called(ctx, cause)
}
