package smtp

import (
	"context"
	"errors"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers mail over SMTP with STARTTLS.
type Sender struct {
	host     string
	port     int
	from     string
	password string
}

func New(host string, port int, from, password string) *Sender {
	return &Sender{host: host, port: port, from: from, password: password}
}

// Send delivers one HTML message. The context is accepted for interface
// symmetry; gomail does not support cancellation mid-dial.
func (s *Sender) Send(_ context.Context, to, subject, htmlBody string) error {
	if s.from == "" || s.password == "" {
		return errors.New("email credentials not configured")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.from, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
