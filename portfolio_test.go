package portfolio_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio"
	"github.com/ashimpoudel/portfolio/pkg/health"
)

type items struct{}

func (items) Routes(r portfolio.Router) {
	r.Route("/api", func(r portfolio.Router) {
		r.GET("/items/{id}", func(c portfolio.Context) error {
			return c.JSON(http.StatusOK, map[string]string{"id": c.Param("id")})
		})
		r.POST("/fail", func(c portfolio.Context) error {
			return portfolio.ErrBadRequest("nope",
				portfolio.WithError(errors.New("db exploded")),
				portfolio.WithErrorCode("bad_input"),
			)
		})
	})
}

func newApp() *portfolio.App {
	return portfolio.New(
		portfolio.WithHandlers(items{}),
		portfolio.WithHealthChecks(
			portfolio.WithReadinessPath("/ready"),
			portfolio.WithReadinessCheck("mailer", health.Static(errors.New("no provider"))),
		),
	)
}

func TestApp_Routes(t *testing.T) {
	t.Parallel()

	app := newApp()

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/items/42", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"42"}`, rec.Body.String())
}

func TestApp_HTTPErrorHidesCause(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newApp().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/fail", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "nope", body["message"])
	assert.Equal(t, "bad_input", body["code"])
	assert.NotContains(t, rec.Body.String(), "db exploded")
}

func TestApp_Readiness(t *testing.T) {
	t.Parallel()

	app := newApp()

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	err := portfolio.ErrGatewayTimeout("slow")
	wrapped := errors.Join(errors.New("ctx"), err)

	assert.True(t, portfolio.IsHTTPError(wrapped))
	assert.Same(t, err, portfolio.AsHTTPError(wrapped))
	assert.Equal(t, http.StatusGatewayTimeout, portfolio.StatusCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, portfolio.StatusCode(errors.New("plain")))
	assert.Equal(t, http.StatusTeapot, portfolio.NewHTTPError(http.StatusTeapot, "tea").StatusCode())
}
