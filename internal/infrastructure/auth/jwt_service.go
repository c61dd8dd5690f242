package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/khanh-nd1204/music-be/domain"
)

// JWTServiceImpl implements domain.TokenService using HS256 with two
// independent secret/lifetime pairs, one for access and one for refresh.
type JWTServiceImpl struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService creates a new JWT service.
func NewJWTService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken implements domain.TokenService
func (j *JWTServiceImpl) IssueAccessToken(identity domain.Identity) (string, error) {
	return j.issue(identity, j.accessSecret, j.accessTTL)
}

// IssueRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) IssueRefreshToken(identity domain.Identity) (string, error) {
	return j.issue(identity, j.refreshSecret, j.refreshTTL)
}

// ValidateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateAccessToken(token string) (*domain.Identity, error) {
	return j.validate(token, j.accessSecret)
}

// ValidateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) ValidateRefreshToken(token string) (*domain.Identity, error) {
	return j.validate(token, j.refreshSecret)
}

// RefreshTTL implements domain.TokenService
func (j *JWTServiceImpl) RefreshTTL() time.Duration {
	return j.refreshTTL
}

func (j *JWTServiceImpl) issue(identity domain.Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    "token",
		"iss":    j.issuer,
		"id":     identity.ID,
		"name":   identity.Name,
		"email":  identity.Email,
		"role":   identity.Role,
		"avatar": identity.Avatar,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// validate parses and checks a token. Every failure mode (wrong secret,
// expired, malformed, unexpected algorithm) surfaces the same error so
// callers cannot distinguish which check rejected the token.
func (j *JWTServiceImpl) validate(tokenString string, secret []byte) (*domain.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenInvalid
	}

	identity := &domain.Identity{}
	if identity.ID, ok = claims["id"].(string); !ok {
		return nil, domain.ErrTokenInvalid
	}
	if identity.Email, ok = claims["email"].(string); !ok {
		return nil, domain.ErrTokenInvalid
	}
	identity.Name, _ = claims["name"].(string)
	identity.Role, _ = claims["role"].(string)
	identity.Avatar, _ = claims["avatar"].(string)

	return identity, nil
}
