package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// CodeGeneratorImpl implements domain.CodeGenerator with a uniform
// cryptographically secure draw over the 6-digit space.
type CodeGeneratorImpl struct {
	ttl time.Duration
	now func() time.Time
}

// NewCodeGenerator creates a generator whose codes expire ttl after
// generation. now is injectable for expiry tests; nil means time.Now.
func NewCodeGenerator(ttl time.Duration, now func() time.Time) domain.CodeGenerator {
	if now == nil {
		now = time.Now
	}
	return &CodeGeneratorImpl{ttl: ttl, now: now}
}

// Generate implements domain.CodeGenerator. Codes are drawn uniformly
// from [100000, 999999] inclusive.
func (g *CodeGeneratorImpl) Generate() (int, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to generate otp code: %w", err)
	}
	code := otpMin + int(n.Int64())
	return code, g.now().Add(g.ttl), nil
}
