package domain

import (
	"context"
	"time"
)

// AccountRepository defines the credential store: atomic point lookups
// and single-row conditional updates over accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByRefreshToken(ctx context.Context, token string) (*Account, error)
	// UpdateRefreshToken overwrites the stored refresh token; nil clears it.
	UpdateRefreshToken(ctx context.Context, id string, token *string) error
	// UpdateOTP overwrites any outstanding code and its expiry.
	UpdateOTP(ctx context.Context, id string, code int, expiry time.Time) error
	// Activate flips PENDING to ACTIVE and clears the consumed code.
	// Returns ErrNothingUpdated if the account was no longer PENDING.
	Activate(ctx context.Context, id string) error
	// UpdatePassword stores a new password hash and clears the consumed
	// code. Returns ErrNothingUpdated if no row matched.
	UpdatePassword(ctx context.Context, id string, hash string) error
}

// SessionService defines the login/refresh/logout lifecycle.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, accountID string) error
}

// VerificationService defines registration, activation and password reset.
type VerificationService interface {
	Register(ctx context.Context, name, email, password string) (*RegisterResult, error)
	Activate(ctx context.Context, email string, otp int) error
	ResendCode(ctx context.Context, email string, kind MailKind) error
	ResetPassword(ctx context.Context, email string, otp int, newPassword string) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines signed token operations. Access and refresh
// tokens use independent secret/lifetime pairs.
type TokenService interface {
	IssueAccessToken(identity Identity) (string, error)
	IssueRefreshToken(identity Identity) (string, error)
	ValidateAccessToken(token string) (*Identity, error)
	ValidateRefreshToken(token string) (*Identity, error)
	RefreshTTL() time.Duration
}

// CodeGenerator produces one-time verification codes with their expiry.
type CodeGenerator interface {
	Generate() (code int, expiry time.Time, err error)
}

// MailDispatcher accepts outbound verification mail. Dispatch is
// best-effort and asynchronous; callers never observe the outcome.
type MailDispatcher interface {
	Enqueue(msg MailMessage)
}

// Mailer performs the actual mail delivery.
type Mailer interface {
	Send(msg MailMessage) error
}
