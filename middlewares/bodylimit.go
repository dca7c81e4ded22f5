package middlewares

import (
	"net/http"

	"github.com/ashimpoudel/portfolio/internal"
)

// DefaultBodyLimit is the default maximum request body size.
const DefaultBodyLimit int64 = 64 << 10

// BodyLimit caps the request body at limit bytes. Reads past the limit
// fail, which Context.BindJSON reports as internal.ErrBodyTooLarge.
// A declared Content-Length above the limit is rejected with 413 before
// the handler runs.
func BodyLimit(limit int64) internal.Middleware {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			r := c.Request()
			if r.ContentLength > limit {
				return internal.ErrRequestTooLarge("Request body is too large.", internal.WithError(internal.ErrBodyTooLarge))
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(c.Response(), r.Body, limit)
			}
			return next(c)
		}
	}
}
