package domain

import "errors"

// Authentication errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// Verification errors
var (
	ErrAlreadyActivated = errors.New("account has already been activated")
	ErrNotActivated     = errors.New("account has not been activated")
	ErrOTPInvalid       = errors.New("invalid otp code")
	ErrOTPExpired       = errors.New("otp has expired")
	ErrResendThrottled  = errors.New("otp resend limit exceeded")
)

// Token errors
var (
	ErrTokenInvalid        = errors.New("invalid token")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// Store errors
var (
	// ErrNothingUpdated reports a conditional write that matched no row,
	// meaning the precondition the caller checked no longer holds.
	ErrNothingUpdated = errors.New("no record was updated")
)
