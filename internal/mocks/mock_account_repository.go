package mocks

import (
	"context"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockAccountRepository implements domain.AccountRepository for testing
type MockAccountRepository struct {
	CreateFunc             func(ctx context.Context, account *domain.Account) error
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.Account, error)
	FindByIDFunc           func(ctx context.Context, id string) (*domain.Account, error)
	FindByRefreshTokenFunc func(ctx context.Context, token string) (*domain.Account, error)
	UpdateRefreshTokenFunc func(ctx context.Context, id string, token *string) error
	UpdateOTPFunc          func(ctx context.Context, id string, code int, expiry time.Time) error
	ActivateFunc           func(ctx context.Context, id string) error
	UpdatePasswordFunc     func(ctx context.Context, id string, hash string) error
}

// NewMockAccountRepository creates a new MockAccountRepository with default behaviors
func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{}
}

// Create creates a new account
func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	// Default behavior: success
	return nil
}

// FindByEmail finds an account by email
func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByID finds an account by ID
func (m *MockAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// FindByRefreshToken finds an account by its stored refresh token
func (m *MockAccountRepository) FindByRefreshToken(ctx context.Context, token string) (*domain.Account, error) {
	if m.FindByRefreshTokenFunc != nil {
		return m.FindByRefreshTokenFunc(ctx, token)
	}
	// Default behavior: not found
	return nil, domain.ErrAccountNotFound
}

// UpdateRefreshToken overwrites the stored refresh token
func (m *MockAccountRepository) UpdateRefreshToken(ctx context.Context, id string, token *string) error {
	if m.UpdateRefreshTokenFunc != nil {
		return m.UpdateRefreshTokenFunc(ctx, id, token)
	}
	// Default behavior: success
	return nil
}

// UpdateOTP overwrites the outstanding code
func (m *MockAccountRepository) UpdateOTP(ctx context.Context, id string, code int, expiry time.Time) error {
	if m.UpdateOTPFunc != nil {
		return m.UpdateOTPFunc(ctx, id, code, expiry)
	}
	// Default behavior: success
	return nil
}

// Activate flips PENDING to ACTIVE
func (m *MockAccountRepository) Activate(ctx context.Context, id string) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, id)
	}
	// Default behavior: success
	return nil
}

// UpdatePassword stores a new password hash
func (m *MockAccountRepository) UpdatePassword(ctx context.Context, id string, hash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hash)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.AccountRepository = (*MockAccountRepository)(nil)
