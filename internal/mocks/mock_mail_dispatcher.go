package mocks

import (
	"sync"

	"github.com/khanh-nd1204/music-be/domain"
)

// MockMailDispatcher implements domain.MailDispatcher for testing,
// recording every enqueued message.
type MockMailDispatcher struct {
	EnqueueFunc func(msg domain.MailMessage)

	mu   sync.Mutex
	sent []domain.MailMessage
}

// NewMockMailDispatcher creates a new MockMailDispatcher
func NewMockMailDispatcher() *MockMailDispatcher {
	return &MockMailDispatcher{}
}

// Enqueue records an outbound message
func (m *MockMailDispatcher) Enqueue(msg domain.MailMessage) {
	if m.EnqueueFunc != nil {
		m.EnqueueFunc(msg)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
}

// Sent returns a copy of all recorded messages
func (m *MockMailDispatcher) Sent() []domain.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MailMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

// Compile-time interface compliance verification
var _ domain.MailDispatcher = (*MockMailDispatcher)(nil)
