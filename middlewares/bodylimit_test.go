package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ashimpoudel/portfolio/internal"
	"github.com/ashimpoudel/portfolio/middlewares"
)

func bindHandler(c internal.Context) error {
	var v map[string]string
	if err := c.BindJSON(&v); err != nil {
		if errors.Is(err, internal.ErrBodyTooLarge) {
			return internal.ErrRequestTooLarge("too large", internal.WithError(err))
		}
		return internal.ErrBadRequest("bad", internal.WithError(err))
	}
	return c.JSON(http.StatusOK, v)
}

func TestBodyLimit(t *testing.T) {
	t.Parallel()

	app, _ := newApp(bindHandler, middlewares.BodyLimit(32))

	t.Run("within limit", func(t *testing.T) {
		t.Parallel()
		rec := do(app, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"b"}`)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("declared length rejected early", func(t *testing.T) {
		t.Parallel()
		body := `{"a":"` + strings.Repeat("x", 64) + `"}`
		rec := do(app, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("streamed body capped while decoding", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":"`+strings.Repeat("x", 64)+`"}`))
		req.ContentLength = -1
		rec := do(app, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}
