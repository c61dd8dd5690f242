package mocks

import (
	"time"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockCodeGenerator implements domain.CodeGenerator for testing
type MockCodeGenerator struct {
	GenerateFunc func() (int, time.Time, error)
}

// NewMockCodeGenerator creates a new MockCodeGenerator with default behaviors
func NewMockCodeGenerator() *MockCodeGenerator {
	return &MockCodeGenerator{}
}

// Generate produces a one-time code and its expiry
func (m *MockCodeGenerator) Generate() (int, time.Time, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	// Default behavior: fixed code, five minutes out
	return 123456, time.Now().Add(5 * time.Minute), nil
}

// Compile-time interface compliance verification
var _ domain.CodeGenerator = (*MockCodeGenerator)(nil)
