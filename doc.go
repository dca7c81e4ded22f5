// Package portfolio is the HTTP surface of the portfolio site: a small
// framework around chi used by the contact relay.
//
// Handlers return errors instead of writing failure responses themselves.
// An [HTTPError] carries the status and the message shown to the client;
// anything else is answered with a generic status text so internal details
// never leave the process.
//
// # Quick Start
//
//	app := portfolio.New(
//	    portfolio.WithLogger(log),
//	    portfolio.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	        middlewares.Recover(),
//	    ),
//	    portfolio.WithHandlers(handlers.NewContact(relay)),
//	    portfolio.WithStaticFiles("/*", web.Assets, "public"),
//	)
//
//	if err := app.Run(":8080", portfolio.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] to declare routes:
//
//	func (h *Contact) Routes(r portfolio.Router) {
//	    r.Any("/api/submit", h.submit)
//	}
//
// # Lifecycle
//
// Run blocks until SIGINT/SIGTERM (or the context passed with
// [WithContext] is cancelled), then drains in-flight requests within the
// shutdown timeout and runs shutdown hooks in order.
package portfolio
