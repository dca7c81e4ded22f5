// Package middlewares provides the HTTP middleware stack of the relay.
//
// A typical stack, outermost first:
//
//	app := portfolio.New(
//	    portfolio.WithLogger(log),
//	    portfolio.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	        middlewares.CORS(middlewares.WithAllowOrigins("https://example.com")),
//	        middlewares.Timeout(30*time.Second),
//	    ),
//	)
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID (or X-Correlation-ID) or
// generates a UUID, stores it in the request context and echoes it in the
// response. Pair it with RequestIDExtractor so every log line carries
// request_id:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//
// # Recover and Timeout
//
// Recover turns panics into a *PanicError and Timeout turns an expired
// request deadline into a *TimeoutError. Both expose StatusCode() so the
// app's error handler answers 500 and 504 respectively without leaking the
// panic value or stack.
//
// Timeout attaches the deadline to the request context; handlers must pass
// the Context to blocking calls for it to take effect.
//
// # CORS
//
// CORS answers preflight OPTIONS requests itself (204) and decorates
// allowed cross-origin responses. Requests without an Origin header pass
// through untouched.
//
// # Body limit
//
// BodyLimit caps request bodies; Context.BindJSON reports the overflow as
// internal.ErrBodyTooLarge.
package middlewares
