package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

// Mailer delivers outbound HTML mail to a single recipient.
type Mailer interface {
	Send(to, subject, html string) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Email    string
	Password string
}

type smtpMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) Send(to, subject, html string) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("Fitness Center <%s>", m.cfg.Email)
	e.To = []string{to}
	e.Subject = subject
	e.HTML = []byte(html)

	hostAndPort := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	plainAuth := smtp.PlainAuth(
		"", // identity
		m.cfg.Email,
		m.cfg.Password,
		m.cfg.Host,
	)

	return e.Send(hostAndPort, plainAuth)
}
