package domain

import "time"

// AccountStatus is the verification state of an account.
type AccountStatus string

const (
	StatusPending AccountStatus = "PENDING"
	StatusActive  AccountStatus = "ACTIVE"
)

// MailKind selects the outbound mail template.
type MailKind string

const (
	MailActivate MailKind = "activate"
	MailReset    MailKind = "reset"
)

// Account represents a registered user and its credential state.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string `gorm:"column:password"`
	Role         string
	Avatar       string
	Status       AccountStatus
	RefreshToken *string
	OTP          *int
	OTPExpiry    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the public projection of an account embedded in token
// payloads and login responses. It never carries credential material.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

// PublicIdentity returns the account's identity projection.
func (a *Account) PublicIdentity() Identity {
	return Identity{
		ID:     a.ID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   a.Role,
		Avatar: a.Avatar,
	}
}

// AuthResult represents a successful login or refresh outcome.
// RefreshToken is delivered only via an HTTP-only cookie, never in
// a response body.
type AuthResult struct {
	User         Identity
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// RegisterResult is the minimal identity of a newly created account.
type RegisterResult struct {
	ID        string
	CreatedAt time.Time
}

// MailMessage is a queued outbound verification mail.
type MailMessage struct {
	To   string
	Name string
	Code int
	Kind MailKind
}
