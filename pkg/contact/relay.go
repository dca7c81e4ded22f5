package contact

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ashimpoudel/portfolio/pkg/logger"
	"github.com/ashimpoudel/portfolio/pkg/mailer"
	"github.com/ashimpoudel/portfolio/pkg/sanitizer"
)

//go:embed templates
var templatesFS embed.FS

const (
	notificationTemplate = "notification.md"
	notificationLayout   = "base.html"

	// DefaultSendTimeout bounds a single provider call.
	DefaultSendTimeout = 10 * time.Second

	// SubmissionHeader carries the submission id on the outgoing email.
	SubmissionHeader = "X-Submission-ID"
)

// NotificationRenderer returns a renderer over the embedded notification
// templates.
func NotificationRenderer() *mailer.Renderer {
	return mailer.NewRenderer(templatesFS, mailer.RendererConfig{
		TemplateDir: "templates",
		LayoutDir:   "templates/layouts",
	})
}

// Relay revalidates submissions and delivers each one as a single email.
// It holds no per-request state and is safe for concurrent use.
type Relay struct {
	sender   mailer.Sender
	renderer *mailer.Renderer
	log      *slog.Logger
	newID    func() string
	to       string
	timeout  time.Duration
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithSendTimeout bounds each provider call. Non-positive values keep the
// default.
func WithSendTimeout(d time.Duration) RelayOption {
	return func(r *Relay) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithRenderer replaces the renderer used for the HTML alternative.
// A nil renderer disables the HTML part.
func WithRenderer(renderer *mailer.Renderer) RelayOption {
	return func(r *Relay) {
		r.renderer = renderer
	}
}

// WithLogger sets the relay logger.
func WithLogger(l *slog.Logger) RelayOption {
	return func(r *Relay) {
		if l != nil {
			r.log = l
		}
	}
}

// WithIDGenerator overrides how submission ids are generated.
func WithIDGenerator(fn func() string) RelayOption {
	return func(r *Relay) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRelay creates a relay delivering to the operator address to.
func NewRelay(sender mailer.Sender, to string, opts ...RelayOption) *Relay {
	r := &Relay{
		sender:   sender,
		to:       to,
		timeout:  DefaultSendTimeout,
		renderer: NotificationRenderer(),
		log:      logger.Discard(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Deliver revalidates s and sends exactly one notification email. It
// returns the submission id on success.
//
// Errors: ErrMissingFields or ErrInvalidEmail for rejected input (wrapping
// validator.ValidationErrors), ErrSendTimeout when the provider call runs
// out of time, ErrSendFailed for any other provider failure.
func (r *Relay) Deliver(ctx context.Context, s Submission) (string, error) {
	s = s.Normalize()
	if err := Check(s); err != nil {
		return "", err
	}

	id := r.newID()
	ctx = WithSubmissionID(ctx, id)

	email := Compose(s, r.to)
	email.HTML = r.renderHTML(ctx, s)
	email.Headers = map[string]string{SubmissionHeader: id}
	email.Tags = mailer.Tags{"source": "contact_form", "submission_id": id}

	sendCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	if err := r.sender.Send(sendCtx, email); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(sendCtx.Err(), context.DeadlineExceeded) {
			r.log.ErrorContext(ctx, "mail provider timed out",
				slog.Duration("timeout", r.timeout),
				slog.String("error", err.Error()),
			)
			return id, fmt.Errorf("%w: %w", ErrSendTimeout, err)
		}
		r.log.ErrorContext(ctx, "mail provider failed",
			slog.String("error", err.Error()),
		)
		return id, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	r.log.InfoContext(ctx, "message relayed",
		slog.Duration("duration", time.Since(start)),
	)
	return id, nil
}

// renderHTML builds the sanitized HTML alternative. Rendering problems are
// logged and the email goes out text-only.
func (r *Relay) renderHTML(ctx context.Context, s Submission) string {
	if r.renderer == nil {
		return ""
	}

	out, err := r.renderer.Render(notificationLayout, notificationTemplate, map[string]string{
		"Name":    sanitizer.SingleLine(s.Name),
		"Email":   s.Email,
		"Subject": sanitizer.SingleLine(s.Subject),
		"Message": s.Message,
	})
	if err != nil {
		r.log.WarnContext(ctx, "notification html not rendered", slog.String("error", err.Error()))
		return ""
	}
	return sanitizer.HTML(out.HTML)
}
