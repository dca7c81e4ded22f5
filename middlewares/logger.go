package middlewares

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/ashimpoudel/portfolio/internal"
)

// RequestLoggerConfig configures the request logging middleware.
type RequestLoggerConfig struct {
	SkipPaths []string // Paths logged at debug level only (probes)
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithSkipPaths demotes the given paths to debug level.
func WithSkipPaths(paths ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, paths...)
	}
}

// RequestLogger logs one line per request after it completes: method,
// path, status, response size and duration. 5xx answers log at error level,
// 4xx at warn.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				status = internal.StatusCode(err)
			}

			r := c.Request()
			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case slices.Contains(cfg.SkipPaths, r.URL.Path):
				c.LogDebug("request", attrs...)
			case status >= http.StatusInternalServerError:
				c.LogError("request", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}
			return err
		}
	}
}
