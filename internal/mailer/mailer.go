package mailer

import (
	"fmt"
	"net/smtp"

	"payroll/internal/config"
)

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	fromName string
}

// NewSMTPMailer builds a mailer from config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPass,
		fromName: cfg.MailFrom,
	}
}

// Send delivers one message. Callers treat failures as best-effort.
func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	headers := "MIME-Version: 1.0\nContent-Type: text/html; charset=\"UTF-8\"\n"
	msg := []byte(fmt.Sprintf("From: %s <%s>\nTo: %s\nSubject: %s\n%s\n%s",
		m.fromName, m.username, to, subject, headers, htmlBody))

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, m.username, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
