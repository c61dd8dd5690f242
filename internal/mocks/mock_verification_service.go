package mocks

import (
	"context"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockVerificationService implements domain.VerificationService for testing
type MockVerificationService struct {
	RegisterFunc      func(ctx context.Context, name, email, password string) (*domain.RegisterResult, error)
	ActivateFunc      func(ctx context.Context, email string, otp int) error
	ResendCodeFunc    func(ctx context.Context, email string, kind domain.MailKind) error
	ResetPasswordFunc func(ctx context.Context, email string, otp int, newPassword string) error
}

// NewMockVerificationService creates a new MockVerificationService with default behaviors
func NewMockVerificationService() *MockVerificationService {
	return &MockVerificationService{}
}

// Register creates a new PENDING account
func (m *MockVerificationService) Register(ctx context.Context, name, email, password string) (*domain.RegisterResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, name, email, password)
	}
	// Default behavior: success
	return &domain.RegisterResult{ID: "acc-new", CreatedAt: time.Now()}, nil
}

// Activate flips a PENDING account ACTIVE
func (m *MockVerificationService) Activate(ctx context.Context, email string, otp int) error {
	if m.ActivateFunc != nil {
		return m.ActivateFunc(ctx, email, otp)
	}
	// Default behavior: success
	return nil
}

// ResendCode regenerates and re-sends a verification code
func (m *MockVerificationService) ResendCode(ctx context.Context, email string, kind domain.MailKind) error {
	if m.ResendCodeFunc != nil {
		return m.ResendCodeFunc(ctx, email, kind)
	}
	// Default behavior: success
	return nil
}

// ResetPassword replaces the password after OTP verification
func (m *MockVerificationService) ResetPassword(ctx context.Context, email string, otp int, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, email, otp, newPassword)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.VerificationService = (*MockVerificationService)(nil)
