package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/ashimpoudel/portfolio/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// newApp mounts h at "/" behind the given global middleware and captures logs.
func newApp(h internal.HandlerFunc, mw ...internal.Middleware) (*internal.App, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := internal.New(
		internal.WithLogger(log),
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.Any("/", h)
		})),
	)
	return app, &buf
}

// newRouteApp attaches mw at route level so handler errors reach it.
func newRouteApp(h internal.HandlerFunc, mw ...internal.Middleware) *internal.App {
	return internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.Any("/", h, mw...)
	})))
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
