package notifications

import (
	"log"
	"sync"

	"github.com/khanh-nd1204/music-be/domain"
)

// Outbox implements domain.MailDispatcher as a buffered channel drained
// by a single worker goroutine. Enqueue never blocks the caller and the
// caller never observes a delivery outcome: failures are logged and
// dropped, a full buffer drops the message.
type Outbox struct {
	mailer domain.Mailer
	queue  chan domain.MailMessage
	done   chan struct{}
	once   sync.Once
}

// NewOutbox creates and starts an outbox with the given buffer size.
func NewOutbox(mailer domain.Mailer, size int) *Outbox {
	if size <= 0 {
		size = 64
	}
	o := &Outbox{
		mailer: mailer,
		queue:  make(chan domain.MailMessage, size),
		done:   make(chan struct{}),
	}
	go o.run()
	return o
}

// Enqueue implements domain.MailDispatcher
func (o *Outbox) Enqueue(msg domain.MailMessage) {
	select {
	case o.queue <- msg:
	default:
		log.Printf("MAIL_DROPPED: to=%s kind=%s queue full", msg.To, msg.Kind)
	}
}

// Close stops the worker after draining queued messages.
func (o *Outbox) Close() {
	o.once.Do(func() {
		close(o.queue)
		<-o.done
	})
}

func (o *Outbox) run() {
	defer close(o.done)
	for msg := range o.queue {
		if err := o.mailer.Send(msg); err != nil {
			log.Printf("MAIL_FAILED: to=%s kind=%s error=%v", msg.To, msg.Kind, err)
		}
	}
}

var _ domain.MailDispatcher = (*Outbox)(nil)
