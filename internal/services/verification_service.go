package services

import (
	"context"
	"fmt"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

const (
	defaultRole   = "USER"
	defaultAvatar = "avatar-default.png"
)

// VerificationServiceImpl implements domain.VerificationService
type VerificationServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	codeGen     domain.CodeGenerator
	mail        domain.MailDispatcher
	throttle    *ResendThrottle
	now         func() time.Time
}

// NewVerificationService creates a new verification service. now is
// injectable for expiry tests; nil means time.Now.
func NewVerificationService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	codeGen domain.CodeGenerator,
	mail domain.MailDispatcher,
	throttle *ResendThrottle,
	now func() time.Time,
) domain.VerificationService {
	if now == nil {
		now = time.Now
	}
	return &VerificationServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		codeGen:     codeGen,
		mail:        mail,
		throttle:    throttle,
		now:         now,
	}
}

// Register implements domain.VerificationService. The activation mail
// is enqueued fire-and-forget; a mail outage never fails registration.
func (s *VerificationServiceImpl) Register(ctx context.Context, name, email, password string) (*domain.RegisterResult, error) {
	if existing, err := s.accountRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	code, expiry, err := s.codeGen.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         defaultRole,
		Avatar:       defaultAvatar,
		Status:       domain.StatusPending,
		OTP:          &code,
		OTPExpiry:    &expiry,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.mail.Enqueue(domain.MailMessage{To: email, Name: name, Code: code, Kind: domain.MailActivate})

	return &domain.RegisterResult{ID: account.ID, CreatedAt: account.CreatedAt}, nil
}

// Activate implements domain.VerificationService. Checks run in a fixed
// order: existence, status, code match, then expiry. The final write is
// conditional on the account still being PENDING, so of two racing
// activations exactly one succeeds.
func (s *VerificationServiceImpl) Activate(ctx context.Context, email string, otp int) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account.Status == domain.StatusActive {
		return domain.ErrAlreadyActivated
	}
	if err := s.checkCode(account, otp); err != nil {
		return err
	}

	if err := s.accountRepo.Activate(ctx, account.ID); err != nil {
		if err == domain.ErrNothingUpdated {
			// Lost a concurrent activation race.
			return domain.ErrAlreadyActivated
		}
		return fmt.Errorf("failed to activate account: %w", err)
	}
	return nil
}

// ResendCode implements domain.VerificationService. A fresh code
// overwrites any outstanding one, making the prior code unusable even
// before it expires.
func (s *VerificationServiceImpl) ResendCode(ctx context.Context, email string, kind domain.MailKind) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	switch kind {
	case domain.MailActivate:
		if account.Status == domain.StatusActive {
			return domain.ErrAlreadyActivated
		}
	case domain.MailReset:
		if account.Status != domain.StatusActive {
			return domain.ErrNotActivated
		}
	default:
		return fmt.Errorf("unknown mail kind %q", kind)
	}

	if s.throttle != nil {
		ok, wait, err := s.throttle.Allow(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check resend throttle: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: retry in %ds", domain.ErrResendThrottled, wait)
		}
	}

	code, expiry, err := s.codeGen.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate otp: %w", err)
	}
	if err := s.accountRepo.UpdateOTP(ctx, account.ID, code, expiry); err != nil {
		return fmt.Errorf("failed to store otp: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Mark(ctx, email); err != nil {
			return fmt.Errorf("failed to open resend window: %w", err)
		}
	}

	s.mail.Enqueue(domain.MailMessage{To: account.Email, Name: account.Name, Code: code, Kind: kind})
	return nil
}

// ResetPassword implements domain.VerificationService. Only ACTIVE
// accounts may reset; the code checks mirror activation. The stored
// refresh token is left untouched: existing sessions survive a reset.
func (s *VerificationServiceImpl) ResetPassword(ctx context.Context, email string, otp int, newPassword string) error {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account.Status != domain.StatusActive {
		return domain.ErrNotActivated
	}
	if err := s.checkCode(account, otp); err != nil {
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.accountRepo.UpdatePassword(ctx, account.ID, hash); err != nil {
		if err == domain.ErrNothingUpdated {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// checkCode validates an outstanding code in order: match first, then
// expiry. A code checked at exactly its expiry instant is still valid.
func (s *VerificationServiceImpl) checkCode(account *domain.Account, otp int) error {
	if account.OTP == nil || *account.OTP != otp {
		return domain.ErrOTPInvalid
	}
	if account.OTPExpiry == nil || s.now().After(*account.OTPExpiry) {
		return domain.ErrOTPExpired
	}
	return nil
}
