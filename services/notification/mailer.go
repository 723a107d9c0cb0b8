package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text notification emails over SMTP.
type Mailer interface {
	Send(recipient, subject, body string) error
}

// SMTPMailer is the production Mailer.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer builds a mailer for the given SMTP account. The account
// address is used as the From header on every message.
func NewSMTPMailer(host string, port int, user, password string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
	}
}

// Send delivers one message. The dialer opens a fresh connection per send;
// booking volume is far below the point where pooling would matter.
func (m *SMTPMailer) Send(recipient, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
