// Package logger builds the structured slog loggers used by the relay.
//
// Every logger writes JSON to stdout and is wrapped in a [Decorator] that
// injects request-scoped attributes pulled from the context by
// [ContextExtractor] functions, so handlers never have to pass request or
// submission ids around explicitly:
//
//	log := logger.New(logger.Config{Level: "info"},
//	    middlewares.RequestIDExtractor(),
//	    contact.SubmissionIDExtractor(),
//	)
//	log.InfoContext(ctx, "message relayed")
//	// {"level":"INFO","msg":"message relayed","request_id":"...","submission_id":"..."}
//
// When Config.Sentry.DSN is set, warnings and errors are additionally fanned
// out to Sentry through sentry-go's slog handler. A failed Sentry
// initialisation degrades to stdout-only logging instead of aborting startup.
//
// [Discard] returns a logger that drops everything and is the default for
// components constructed without one.
package logger
