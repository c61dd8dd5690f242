package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/domain"
	"github.com/khanh-nd1204/music-be/internal/http/handlers"
	"github.com/khanh-nd1204/music-be/internal/infrastructure/auth"
)

func TestAuthMW_WithJWT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tokenSvc := auth.NewJWTService("access-secret", "refresh-secret", "server", time.Minute, time.Hour)
	mw := NewAuthMW(tokenSvc)

	r := gin.New()
	r.GET("/protected", mw.WithJWT(), func(c *gin.Context) {
		identity, ok := handlers.IdentityFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no identity"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": identity.ID})
	})

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		if w := request(""); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("not a bearer token", func(t *testing.T) {
		if w := request("Basic abc"); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if w := request("Bearer garbage"); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		token, err := tokenSvc.IssueRefreshToken(domain.Identity{ID: "acc-1", Email: "a@x.com"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if w := request("Bearer " + token); w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid access token", func(t *testing.T) {
		token, err := tokenSvc.IssueAccessToken(domain.Identity{ID: "acc-1", Email: "a@x.com"})
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		w := request("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
