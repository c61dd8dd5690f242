package notifications

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanh-nd1204/music-be/domain"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []domain.MailMessage
	err  error
}

func (m *recordingMailer) Send(msg domain.MailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *recordingMailer) Sent() []domain.MailMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.MailMessage, len(m.sent))
	copy(out, m.sent)
	return out
}

func TestOutbox_DeliversAsync(t *testing.T) {
	mailer := &recordingMailer{}
	outbox := NewOutbox(mailer, 8)

	outbox.Enqueue(domain.MailMessage{To: "a@x.com", Name: "Alice", Code: 123456, Kind: domain.MailActivate})
	outbox.Enqueue(domain.MailMessage{To: "b@x.com", Name: "Bob", Code: 654321, Kind: domain.MailReset})
	outbox.Close()

	sent := mailer.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "a@x.com", sent[0].To)
	assert.Equal(t, domain.MailActivate, sent[0].Kind)
	assert.Equal(t, domain.MailReset, sent[1].Kind)
}

// Delivery failures are logged and dropped; the producer never sees them.
func TestOutbox_SwallowsSendFailures(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	outbox := NewOutbox(mailer, 8)

	outbox.Enqueue(domain.MailMessage{To: "a@x.com", Kind: domain.MailActivate})
	outbox.Close()

	assert.Len(t, mailer.Sent(), 1)
}

type blockingMailer struct {
	release chan struct{}
}

func (m *blockingMailer) Send(domain.MailMessage) error {
	<-m.release
	return nil
}

// A full queue drops instead of blocking the producer.
func TestOutbox_FullQueueDoesNotBlock(t *testing.T) {
	mailer := &blockingMailer{release: make(chan struct{})}
	outbox := NewOutbox(mailer, 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			outbox.Enqueue(domain.MailMessage{To: "a@x.com"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("enqueue blocked on a full queue")
	}

	close(mailer.release)
	outbox.Close()
}

func TestSMTPMailer_RenderTemplates(t *testing.T) {
	subject, body := renderMail(domain.MailMessage{Name: "Alice", Code: 123456, Kind: domain.MailActivate})
	assert.Equal(t, "Activate your account", subject)
	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "123456")

	subject, body = renderMail(domain.MailMessage{Name: "Bob", Code: 7, Kind: domain.MailReset})
	assert.Equal(t, "Reset your password", subject)
	assert.Contains(t, body, "Bob")
	// Codes render zero-padded to six digits.
	assert.Contains(t, body, "000007")
}
