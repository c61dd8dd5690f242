package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/khanh-nd1204/music-be/domain"
	"github.com/khanh-nd1204/music-be/internal/mocks"
)

func newTestRouter(t *testing.T, sessionSvc domain.SessionService, verificationSvc domain.VerificationService, identity *domain.Identity) (*gin.Engine, *AuthHandlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if sessionSvc == nil {
		sessionSvc = mocks.NewMockSessionService()
	}
	if verificationSvc == nil {
		verificationSvc = mocks.NewMockVerificationService()
	}

	h := NewAuthHandlers(sessionSvc, verificationSvc, mocks.NewMockAccountRepository(), 3600)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/refresh", h.Refresh)
	r.POST("/auth/activate", h.Activate)
	r.POST("/auth/resend-mail", h.ResendMail)
	r.POST("/auth/reset-password", h.ResetPassword)

	// Protected routes get the identity injected directly, standing in
	// for the JWT middleware.
	withIdentity := func(c *gin.Context) {
		if identity != nil {
			c.Set(IdentityKey, identity)
		}
		c.Next()
	}
	r.POST("/auth/logout", withIdentity, h.Logout)
	r.GET("/auth/account", withIdentity, h.Me)

	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookie string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: cookie})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authResultFixture() *domain.AuthResult {
	return &domain.AuthResult{
		User: domain.Identity{
			ID:     "acc-1",
			Name:   "Alice",
			Email:  "a@x.com",
			Role:   "USER",
			Avatar: "avatar-default.png",
		},
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		ExpiresIn:    3600,
	}
}

func TestAuthHandlers_Login(t *testing.T) {
	t.Run("success sets refresh cookie and omits it from body", func(t *testing.T) {
		sessionSvc := mocks.NewMockSessionService()
		sessionSvc.LoginFunc = func(ctx context.Context, email, password string) (*domain.AuthResult, error) {
			return authResultFixture(), nil
		}
		r, _ := newTestRouter(t, sessionSvc, nil, nil)

		w := doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "secret1"}, "")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var cookie *http.Cookie
		for _, c := range w.Result().Cookies() {
			if c.Name == "refresh_token" {
				cookie = c
			}
		}
		if cookie == nil {
			t.Fatal("expected a refresh_token cookie")
		}
		if cookie.Value != "refresh-1" {
			t.Errorf("expected cookie value refresh-1, got %s", cookie.Value)
		}
		if !cookie.HttpOnly {
			t.Error("refresh cookie must be HTTP-only")
		}
		if cookie.MaxAge != 3600 {
			t.Errorf("expected cookie max-age 3600, got %d", cookie.MaxAge)
		}

		if strings.Contains(w.Body.String(), "refresh-1") {
			t.Error("refresh token must not appear in the response body")
		}

		var resp struct {
			Data struct {
				AccessToken string          `json:"access_token"`
				User        domain.Identity `json:"user"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Data.AccessToken != "access-1" {
			t.Errorf("expected access token in body, got %q", resp.Data.AccessToken)
		}
		if resp.Data.User.ID != "acc-1" || resp.Data.User.Email != "a@x.com" {
			t.Errorf("unexpected user %+v", resp.Data.User)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/login", LoginRequest{Email: "a@x.com", Password: "wrong"}, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{"email": "not-an-email"}, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandlers_Refresh(t *testing.T) {
	t.Run("missing cookie", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodGet, "/auth/refresh", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodGet, "/auth/refresh", nil, "stale")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success rotates the cookie", func(t *testing.T) {
		sessionSvc := mocks.NewMockSessionService()
		sessionSvc.RefreshFunc = func(ctx context.Context, refreshToken string) (*domain.AuthResult, error) {
			if refreshToken != "refresh-1" {
				return nil, domain.ErrInvalidRefreshToken
			}
			result := authResultFixture()
			result.AccessToken = "access-2"
			result.RefreshToken = "refresh-2"
			return result, nil
		}
		r, _ := newTestRouter(t, sessionSvc, nil, nil)

		w := doJSON(t, r, http.MethodGet, "/auth/refresh", nil, "refresh-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var rotated string
		for _, c := range w.Result().Cookies() {
			if c.Name == "refresh_token" {
				rotated = c.Value
			}
		}
		if rotated != "refresh-2" {
			t.Errorf("expected rotated cookie refresh-2, got %q", rotated)
		}
	})
}

func TestAuthHandlers_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"}, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if resp.Data.ID == "" {
			t.Error("expected created id in body")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		verificationSvc := mocks.NewMockVerificationService()
		verificationSvc.RegisterFunc = func(ctx context.Context, name, email, password string) (*domain.RegisterResult, error) {
			return nil, domain.ErrEmailTaken
		}
		r, _ := newTestRouter(t, nil, verificationSvc, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/register", RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"}, "")
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})
}

func TestAuthHandlers_VerificationErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"already activated", domain.ErrAlreadyActivated, http.StatusConflict},
		{"invalid code", domain.ErrOTPInvalid, http.StatusBadRequest},
		{"expired code", domain.ErrOTPExpired, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verificationSvc := mocks.NewMockVerificationService()
			verificationSvc.ActivateFunc = func(ctx context.Context, email string, otp int) error {
				return tt.err
			}
			r, _ := newTestRouter(t, nil, verificationSvc, nil)
			w := doJSON(t, r, http.MethodPost, "/auth/activate", ActivateRequest{Email: "a@x.com", OTP: 123456}, "")
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAuthHandlers_ResendMail(t *testing.T) {
	t.Run("reset before activation conflicts", func(t *testing.T) {
		verificationSvc := mocks.NewMockVerificationService()
		verificationSvc.ResendCodeFunc = func(ctx context.Context, email string, kind domain.MailKind) error {
			return domain.ErrNotActivated
		}
		r, _ := newTestRouter(t, nil, verificationSvc, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/resend-mail", ResendRequest{Email: "a@x.com", Type: "reset"}, "")
		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown type rejected by binding", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/resend-mail", map[string]string{"email": "a@x.com", "type": "bogus"}, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandlers_Logout(t *testing.T) {
	t.Run("clears the cookie", func(t *testing.T) {
		var loggedOut string
		sessionSvc := mocks.NewMockSessionService()
		sessionSvc.LogoutFunc = func(ctx context.Context, accountID string) error {
			loggedOut = accountID
			return nil
		}
		identity := &domain.Identity{ID: "acc-1", Email: "a@x.com"}
		r, _ := newTestRouter(t, sessionSvc, nil, identity)

		w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, "refresh-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if loggedOut != "acc-1" {
			t.Errorf("expected logout for acc-1, got %q", loggedOut)
		}

		for _, c := range w.Result().Cookies() {
			if c.Name == "refresh_token" && c.MaxAge >= 0 {
				t.Error("expected refresh cookie to be expired")
			}
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		r, _ := newTestRouter(t, nil, nil, nil)
		w := doJSON(t, r, http.MethodPost, "/auth/logout", nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
