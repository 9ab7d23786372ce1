package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender sends a single email message.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Mailer sends transactional email over SMTP.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

// Ensure Mailer implements Sender
var _ Sender = (*Mailer)(nil)

// New creates a Mailer for the given SMTP endpoint.
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		from:   from,
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers one HTML email.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	if to == "" {
		return fmt.Errorf("no recipient specified")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
