// Package logsender provides a mailer.Sender for local development that
// writes every email to a structured log instead of delivering it.
package logsender

import (
	"context"
	"log/slog"

	"github.com/ashimpoudel/portfolio/pkg/mailer"
)

// Sender logs emails at info level. The full text body is included so
// the message can be read from the terminal.
type Sender struct {
	logger *slog.Logger
}

// New returns a Sender writing to logger.
func New(logger *slog.Logger) *Sender {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sender{logger: logger.With(slog.String("component", "mailer.log"))}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "email captured",
		slog.Any("to", email.To),
		slog.String("from", email.From),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.String("text", email.Text),
		slog.Int("html_bytes", len(email.HTML)),
	)
	return nil
}
