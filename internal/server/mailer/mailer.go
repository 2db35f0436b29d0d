// Package mailer delivers account emails such as password reset codes.
package mailer

import (
	"context"

	"github.com/dmitrijs2005/chatsync/internal/logging"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes outgoing mail to the server log instead of delivering it.
// It is what the server runs with until an SMTP relay is configured.
type LogMailer struct {
	log logging.Logger
}

func NewLogMailer(log logging.Logger) *LogMailer {
	return &LogMailer{log: log.With("module", "mailer")}
}

func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	m.log.Info(ctx, "mail", "to", msg.To, "subject", msg.Subject, "body", msg.Body)
	return nil
}

// PasswordCode renders the reset-code email.
func PasswordCode(to, code string) Message {
	return Message{
		To:      to,
		Subject: "Your password reset code",
		Body:    "Use code " + code + " to set a new password. If you did not ask for it, ignore this email.",
	}
}
