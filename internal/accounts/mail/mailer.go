// Package mail abstracts the outbound mail transport used for
// account-creation notifications.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Message is a plain-text mail message.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Mailer delivers messages. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// SMTPMailer delivers through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
}

func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if len(m.To) == 0 {
		return fmt.Errorf("mail: message has no recipients")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", m.Subject)
	b.WriteString("\r\n")
	b.WriteString(m.Body)

	if err := smtp.SendMail(s.Addr, nil, s.From, m.To, []byte(b.String())); err != nil {
		return fmt.Errorf("mail: send failed: %w", err)
	}
	return nil
}

// LogMailer logs messages instead of sending them. Used in dev and as the
// fallback when no SMTP relay is configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (l *LogMailer) Send(ctx context.Context, m Message) error {
	l.Logger.Info("mail (not sent, log transport)",
		"to", strings.Join(m.To, ","),
		"subject", m.Subject,
	)
	return nil
}
