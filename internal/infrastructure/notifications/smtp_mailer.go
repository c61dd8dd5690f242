package notifications

import (
	"fmt"
	"net/smtp"

	"github.com/khanh-nd1204/music-be/domain"
)

// SMTPMailerImpl implements domain.Mailer over a plain SMTP relay.
type SMTPMailerImpl struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPMailer creates a new SMTP mailer. Auth is skipped when no
// username is configured (local relays, test containers).
func NewSMTPMailer(host string, port int, username, password, from string) domain.Mailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailerImpl{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

// Send implements domain.Mailer. If no sender address is configured the
// message is printed instead of sent, so local setups work without a
// mail relay.
func (m *SMTPMailerImpl) Send(msg domain.MailMessage) error {
	subject, body := renderMail(msg)

	if m.from == "" {
		fmt.Printf("[MOCK MAIL] To: %s, Subject: %s, Body: %s\n", msg.To, subject, body)
		return nil
	}

	payload := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s\r\n",
		m.from, msg.To, subject, body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{msg.To}, []byte(payload)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}

func renderMail(msg domain.MailMessage) (subject, body string) {
	switch msg.Kind {
	case domain.MailReset:
		subject = "Reset your password"
		body = fmt.Sprintf("Hi %s,\n\nYour password reset code is: %06d\n\nIf you did not request this, you can ignore this email.", msg.Name, msg.Code)
	default:
		subject = "Activate your account"
		body = fmt.Sprintf("Hi %s,\n\nYour activation code is: %06d\n\nEnter this code to activate your account.", msg.Name, msg.Code)
	}
	return subject, body
}
