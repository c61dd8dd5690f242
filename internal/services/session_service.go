package services

import (
	"context"
	"fmt"

	"github.com/khanh-nd1204/music-be/domain"
)

// SessionServiceImpl implements domain.SessionService
type SessionServiceImpl struct {
	accountRepo domain.AccountRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
}

// NewSessionService creates a new session service
func NewSessionService(
	accountRepo domain.AccountRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
) domain.SessionService {
	return &SessionServiceImpl{
		accountRepo: accountRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Login implements domain.SessionService. Activation status is not a
// login precondition: a PENDING account with correct credentials may
// authenticate, only password-reset flows require an ACTIVE account.
func (s *SessionServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueSession(ctx, account)
}

// Refresh implements domain.SessionService. The presented token must
// both verify cryptographically and match the stored value; a token
// that was already rotated or cleared by logout fails even though its
// signature is still valid. Every sub-failure collapses to
// ErrInvalidRefreshToken so callers learn nothing about why.
func (s *SessionServiceImpl) Refresh(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidRefreshToken
	}

	if _, err := s.tokenSvc.ValidateRefreshToken(refreshToken); err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	account, err := s.accountRepo.FindByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}

	// Full login cycle: both tokens rotate on every use, so a replayed
	// stale token no longer matches the stored value.
	result, err := s.issueSession(ctx, account)
	if err != nil {
		return nil, domain.ErrInvalidRefreshToken
	}
	return result, nil
}

// Logout implements domain.SessionService. Clearing an already-cleared
// token succeeds silently.
func (s *SessionServiceImpl) Logout(ctx context.Context, accountID string) error {
	return s.accountRepo.UpdateRefreshToken(ctx, accountID, nil)
}

// issueSession mints a fresh token pair and persists the new refresh
// token, overwriting any prior one.
func (s *SessionServiceImpl) issueSession(ctx context.Context, account *domain.Account) (*domain.AuthResult, error) {
	identity := account.PublicIdentity()

	accessToken, err := s.tokenSvc.IssueAccessToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.tokenSvc.IssueRefreshToken(identity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.accountRepo.UpdateRefreshToken(ctx, account.ID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &domain.AuthResult{
		User:         identity,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.tokenSvc.RefreshTTL().Seconds()),
	}, nil
}
