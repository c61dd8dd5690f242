package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/domain"
	"github.com/khanh-nd1204/music-be/internal/http/handlers"
)

// AuthMW validates Bearer access tokens and exposes the token identity
// to downstream handlers.
type AuthMW struct {
	tokenSvc domain.TokenService
}

// NewAuthMW creates a new auth middleware
func NewAuthMW(tokenSvc domain.TokenService) *AuthMW {
	return &AuthMW{tokenSvc: tokenSvc}
}

// WithJWT returns a handler that rejects requests without a valid
// access token.
func (m *AuthMW) WithJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		identity, err := m.tokenSvc.ValidateAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}

		c.Set(handlers.IdentityKey, identity)
		c.Next()
	}
}
