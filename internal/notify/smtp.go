package notify

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender delivers mail over a plain SMTP relay. It implements
// common.EmailSender.
type SMTPSender struct {
	Addr     string // host:port
	Username string
	Password string
	From     string
}

// Send delivers a single HTML email.
func (s SMTPSender) Send(to, subject, html string) error {
	if s.Addr == "" || s.From == "" {
		return errors.New("notify: smtp sender not configured")
	}
	to = strings.TrimSpace(to)
	if to == "" {
		return errors.New("notify: recipient is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)

	var auth smtp.Auth
	if s.Username != "" {
		host := s.Addr
		if idx := strings.LastIndex(host, ":"); idx >= 0 {
			host = host[:idx]
		}
		auth = smtp.PlainAuth("", s.Username, s.Password, host)
	}
	return smtp.SendMail(s.Addr, auth, s.From, []string{to}, []byte(b.String()))
}
