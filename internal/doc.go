// Package internal provides the core types and implementation behind the
// portfolio HTTP server.
//
// This package is internal and should not be used directly. Import
// "github.com/ashimpoudel/portfolio" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, middleware stack and graceful shutdown
//   - Context: request/response access, JSON binding and logging helpers
//   - Router: interface handlers use to declare routes
//   - Handler: implemented by types that declare routes on a router
//   - HandlerFunc: route handler returning an error
//   - Middleware: wraps handlers to add cross-cutting concerns
//   - ErrorHandler: turns returned errors into responses
//
// # Errors
//
// Handlers return errors instead of writing failure responses. An
// [HTTPError] carries the status and the client-safe message; its wrapped
// Err is logged but never sent. [DefaultErrorHandler] renders every error as
//
//	{"message": "..."}
//
// and falls back to the generic status text for errors that are not
// HTTPErrors, so provider or decoding details never reach the client.
//
// # Context as context.Context
//
// Context embeds context.Context, so it can be passed straight to blocking
// calls such as a mail provider send:
//
//	func (h *Contact) submit(c portfolio.Context) error {
//	    id, err := h.relay.Deliver(c, submission)
//	    ...
//	}
//
// # Lifecycle
//
// App.Run listens, serves, and on SIGINT/SIGTERM (or cancellation of the
// context passed with WithContext) stops accepting connections, waits for
// in-flight requests up to the shutdown timeout, then runs shutdown hooks.
package internal
