package contact

import (
	"context"
	"log/slog"

	"github.com/ashimpoudel/portfolio/pkg/logger"
)

type submissionIDKey struct{}

// WithSubmissionID stores the submission id in ctx.
func WithSubmissionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, submissionIDKey{}, id)
}

// SubmissionID returns the submission id stored in ctx, if any.
func SubmissionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(submissionIDKey{}).(string)
	return id, ok && id != ""
}

// SubmissionIDExtractor adds "submission_id" to log records emitted while a
// submission is being relayed.
func SubmissionIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := SubmissionID(ctx); ok {
			return slog.String("submission_id", id), true
		}
		return slog.Attr{}, false
	}
}
