package mocks

import (
	"context"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockSessionService implements domain.SessionService for testing
type MockSessionService struct {
	LoginFunc   func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RefreshFunc func(ctx context.Context, refreshToken string) (*domain.AuthResult, error)
	LogoutFunc  func(ctx context.Context, accountID string) error
}

// NewMockSessionService creates a new MockSessionService with default behaviors
func NewMockSessionService() *MockSessionService {
	return &MockSessionService{}
}

// Login authenticates with email and password
func (m *MockSessionService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidCredentials
}

// Refresh exchanges a refresh token for a new token pair
func (m *MockSessionService) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}
	// Default behavior: rejected
	return nil, domain.ErrInvalidRefreshToken
}

// Logout clears the stored refresh token
func (m *MockSessionService) Logout(ctx context.Context, accountID string) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, accountID)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.SessionService = (*MockSessionService)(nil)
