package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/ashimpoudel/portfolio/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout attaches a deadline to the request context. When the handler
// fails because that deadline passed and nothing was written yet, the
// error is replaced by *TimeoutError. HTTPErrors are passed through
// unchanged so handlers keep control of their own timeout answers.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()
			c.SetContext(ctx)

			err := next(c)
			if err == nil || internal.IsHTTPError(err) {
				return err
			}

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && errors.Is(err, context.DeadlineExceeded) {
				c.LogWarn("request timeout", "timeout", timeout.String())
				return &TimeoutError{Duration: timeout, Err: err}
			}
			return err
		}
	}
}
