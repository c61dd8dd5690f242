package services

import (
	"context"
	"testing"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
	"github.com/khanh-nd1204/music-be/internal/mocks"
)

// createSessionServiceForTest creates a SessionService with mock dependencies
func createSessionServiceForTest(t *testing.T,
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService) domain.SessionService {
	t.Helper()

	if accountRepo == nil {
		accountRepo = mocks.NewMockAccountRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	return NewSessionService(accountRepo, passwordSvc, tokenSvc)
}

// createVerificationServiceForTest creates a VerificationService with mock
// dependencies and a fixed clock.
func createVerificationServiceForTest(t *testing.T,
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	codeGen domain.CodeGenerator,
	mail domain.MailDispatcher,
	now func() time.Time) domain.VerificationService {
	t.Helper()

	if accountRepo == nil {
		accountRepo = mocks.NewMockAccountRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if codeGen == nil {
		codeGen = mocks.NewMockCodeGenerator()
	}
	if mail == nil {
		mail = mocks.NewMockMailDispatcher()
	}

	return NewVerificationService(accountRepo, passwordSvc, codeGen, mail, nil, now)
}

// createValidAccount creates an ACTIVE account entity for testing
func createValidAccount(t *testing.T) *domain.Account {
	t.Helper()

	return &domain.Account{
		ID:           "acc-1",
		Name:         "Alice",
		Email:        "a@x.com",
		PasswordHash: "hashed_secret1",
		Role:         "USER",
		Avatar:       "avatar-default.png",
		Status:       domain.StatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// createPendingAccount creates a PENDING account holding an outstanding code
func createPendingAccount(t *testing.T, code int, expiry time.Time) *domain.Account {
	t.Helper()

	acc := createValidAccount(t)
	acc.Status = domain.StatusPending
	acc.OTP = &code
	acc.OTPExpiry = &expiry
	return acc
}

// trackingAccountRepo wraps a single in-memory account so tests can
// observe stored refresh token rotation without a database.
func trackingAccountRepo(t *testing.T, account *domain.Account) *mocks.MockAccountRepository {
	t.Helper()

	repo := mocks.NewMockAccountRepository()
	repo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.Account, error) {
		if account != nil && email == account.Email {
			return account, nil
		}
		return nil, domain.ErrAccountNotFound
	}
	repo.FindByRefreshTokenFunc = func(ctx context.Context, token string) (*domain.Account, error) {
		if account != nil && account.RefreshToken != nil && *account.RefreshToken == token {
			return account, nil
		}
		return nil, domain.ErrAccountNotFound
	}
	repo.UpdateRefreshTokenFunc = func(ctx context.Context, id string, token *string) error {
		if account != nil && account.ID == id {
			account.RefreshToken = token
		}
		return nil
	}
	return repo
}
