package mocks

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	IssueAccessTokenFunc     func(identity domain.Identity) (string, error)
	IssueRefreshTokenFunc    func(identity domain.Identity) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.Identity, error)
	ValidateRefreshTokenFunc func(token string) (*domain.Identity, error)
	RefreshTTLFunc           func() time.Duration

	seq atomic.Int64
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// IssueAccessToken issues an access token
func (m *MockTokenService) IssueAccessToken(identity domain.Identity) (string, error) {
	if m.IssueAccessTokenFunc != nil {
		return m.IssueAccessTokenFunc(identity)
	}
	// Default behavior: unique fake token
	return fmt.Sprintf("access_%s_%d", identity.ID, m.seq.Add(1)), nil
}

// IssueRefreshToken issues a refresh token
func (m *MockTokenService) IssueRefreshToken(identity domain.Identity) (string, error) {
	if m.IssueRefreshTokenFunc != nil {
		return m.IssueRefreshTokenFunc(identity)
	}
	// Default behavior: unique fake token so rotation is observable
	return fmt.Sprintf("refresh_%s_%d", identity.ID, m.seq.Add(1)), nil
}

// ValidateAccessToken validates an access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.Identity, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// ValidateRefreshToken validates a refresh token
func (m *MockTokenService) ValidateRefreshToken(token string) (*domain.Identity, error) {
	if m.ValidateRefreshTokenFunc != nil {
		return m.ValidateRefreshTokenFunc(token)
	}
	// Default behavior: invalid
	return nil, domain.ErrTokenInvalid
}

// RefreshTTL returns the refresh token lifetime
func (m *MockTokenService) RefreshTTL() time.Duration {
	if m.RefreshTTLFunc != nil {
		return m.RefreshTTLFunc()
	}
	// Default behavior: one week
	return 7 * 24 * time.Hour
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
