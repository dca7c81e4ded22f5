// Package smtp delivers mailer.Email values over authenticated SMTP.
package smtp

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/ashimpoudel/portfolio/pkg/mailer"
)

type dialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// Sender implements mailer.Sender over SMTP with PLAIN auth and mandatory
// STARTTLS.
type Sender struct {
	client   dialer
	envelope string
}

// New builds an SMTP sender. Missing credentials are reported as
// mailer.ErrMisconfigured so the process can refuse to start.
func New(cfg Config) (*Sender, error) {
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: EMAIL_USER and EMAIL_PASS are required", mailer.ErrMisconfigured)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP_HOST is empty", mailer.ErrMisconfigured)
	}

	opts := []mail.Option{
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.Port > 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", mailer.ErrMisconfigured, err)
	}

	return &Sender{client: client, envelope: cfg.Username}, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.message(email)
	if err != nil {
		return err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: %w: %w", mailer.ErrSendFailed, err)
	}
	return nil
}

// message converts an Email to a go-mail message. The author header keeps
// the submitter's address while the envelope sender is the authenticated
// account.
func (s *Sender) message(email *mailer.Email) (*mail.Msg, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()

	from := email.From
	if from == "" {
		from = s.envelope
	}
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("smtp: from address: %w", err)
	}
	if err := msg.EnvelopeFrom(s.envelope); err != nil {
		return nil, fmt.Errorf("smtp: envelope address: %w", err)
	}
	if err := msg.To(email.To...); err != nil {
		return nil, fmt.Errorf("smtp: recipient address: %w", err)
	}

	replyTo := email.ReplyTo
	if replyTo == "" {
		replyTo = email.From
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return nil, fmt.Errorf("smtp: reply-to address: %w", err)
		}
	}

	msg.Subject(email.Subject)

	for k, v := range email.Headers {
		msg.SetGenHeader(mail.Header(k), v)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	case email.Text != "":
		msg.SetBodyString(mail.TypeTextPlain, email.Text)
	default:
		msg.SetBodyString(mail.TypeTextHTML, email.HTML)
	}

	return msg, nil
}
