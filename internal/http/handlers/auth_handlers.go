package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/domain"
)

const refreshCookie = "refresh_token"

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	sessionSvc      domain.SessionService
	verificationSvc domain.VerificationService
	accountRepo     domain.AccountRepository
	refreshMaxAge   int
}

// NewAuthHandlers creates new auth handlers. refreshMaxAge is the
// refresh cookie lifetime in seconds.
func NewAuthHandlers(sessionSvc domain.SessionService, verificationSvc domain.VerificationService, accountRepo domain.AccountRepository, refreshMaxAge int) *AuthHandlers {
	return &AuthHandlers{
		sessionSvc:      sessionSvc,
		verificationSvc: verificationSvc,
		accountRepo:     accountRepo,
		refreshMaxAge:   refreshMaxAge,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ActivateRequest represents account activation request
type ActivateRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   int    `json:"otp" binding:"required"`
}

// ResendRequest represents a code resend request
type ResendRequest struct {
	Email string `json:"email" binding:"required,email"`
	Type  string `json:"type" binding:"required,oneof=activate reset"`
}

// ResetRequest represents a password reset request
type ResetRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         int    `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.verificationSvc.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":         result.ID,
			"created_at": result.CreatedAt,
		},
		"message": "User registered successfully",
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.sessionSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"user":         result.User,
		},
		"message": "Login successfully",
	})
}

// Refresh exchanges the refresh cookie for a fresh token pair
func (h *AuthHandlers) Refresh(c *gin.Context) {
	token, err := c.Cookie(refreshCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	result, err := h.sessionSvc.Refresh(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"access_token": result.AccessToken,
			"user":         result.User,
		},
		"message": "Refresh token successfully",
	})
}

// Logout clears the stored refresh token and the cookie (requires authentication)
func (h *AuthHandlers) Logout(c *gin.Context) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.sessionSvc.Logout(c.Request.Context(), identity.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"data":    nil,
		"message": "Logout successfully",
	})
}

// Activate handles account activation with an OTP code
func (h *AuthHandlers) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationSvc.Activate(c.Request.Context(), req.Email, req.OTP); err != nil {
		h.verificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    nil,
		"message": "User activated successfully",
	})
}

// ResendMail handles resending an activation or reset code
func (h *AuthHandlers) ResendMail(c *gin.Context) {
	var req ResendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationSvc.ResendCode(c.Request.Context(), req.Email, domain.MailKind(req.Type)); err != nil {
		h.verificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    nil,
		"message": "Resend mail successfully",
	})
}

// ResetPassword handles a password reset with an OTP code
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.verificationSvc.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		h.verificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    nil,
		"message": "Password reset successfully",
	})
}

// Me returns the authenticated account's public identity
func (h *AuthHandlers) Me(c *gin.Context) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountRepo.FindByID(c.Request.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    account.PublicIdentity(),
		"message": "Fetch user successfully",
	})
}

// verificationError maps verification failures to HTTP responses.
func (h *AuthHandlers) verificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrAlreadyActivated):
		c.JSON(http.StatusConflict, gin.H{"error": "Account has already been activated"})
	case errors.Is(err, domain.ErrNotActivated):
		c.JSON(http.StatusConflict, gin.H{"error": "Account has not been activated"})
	case errors.Is(err, domain.ErrOTPInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP"})
	case errors.Is(err, domain.ErrOTPExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP has expired"})
	case errors.Is(err, domain.ErrResendThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Request failed"})
	}
}

func (h *AuthHandlers) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, token, h.refreshMaxAge, "/", "", false, true)
}

func (h *AuthHandlers) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
}
