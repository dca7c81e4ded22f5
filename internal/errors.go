package internal

import (
	"errors"
	"log/slog"
	"net/http"
)

var (
	// ErrMalformedBody indicates a request body that could not be decoded.
	ErrMalformedBody = errors.New("malformed request body")
	// ErrBodyTooLarge indicates a request body over the configured limit.
	ErrBodyTooLarge = errors.New("request body too large")
)

// HTTPError represents an HTTP error with all data needed for rendering.
// Message is safe to show to clients; Err is only logged.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// ErrorCode is an application-specific error code for client handling.
	ErrorCode string

	// Code is the HTTP status code (e.g., 404, 500).
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	e := &HTTPError{
		Code:    code,
		Message: message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithErrorCode(code string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.ErrorCode = code
	}
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

// Convenience constructors for the statuses the relay answers with.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrRequestTooLarge(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusRequestEntityTooLarge, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message, opts...)
}

func ErrGatewayTimeout(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusGatewayTimeout, message, opts...)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return AsHTTPError(err) != nil
}

// AsHTTPError extracts the HTTPError from an error chain.
// Returns nil if the error is not an HTTPError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}

// StatusCode returns the HTTP status an error should be answered with.
// Errors exposing StatusCode() int (HTTPError, middleware errors) decide
// for themselves; everything else is a 500.
func StatusCode(err error) int {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		if code := sc.StatusCode(); code >= 400 && code <= 599 {
			return code
		}
	}
	return http.StatusInternalServerError
}

// errorBody is the JSON shape of every error answer.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DefaultErrorHandler writes {"message": ...} JSON. HTTPError messages are
// passed through; any other error gets the generic status text so
// internals never reach the client. Server errors are logged at error
// level, client errors at warn.
func DefaultErrorHandler(c Context, err error) error {
	status := StatusCode(err)
	body := errorBody{Message: http.StatusText(status)}
	if httpErr := AsHTTPError(err); httpErr != nil {
		body.Message = httpErr.Message
		body.Code = httpErr.ErrorCode
	}

	attrs := []any{
		slog.Int("status", status),
		slog.String("error", errorText(err)),
	}
	if status >= http.StatusInternalServerError {
		c.LogError("request failed", attrs...)
	} else {
		c.LogWarn("request rejected", attrs...)
	}

	return c.JSON(status, body)
}

// errorText prefers the wrapped cause so logs show what actually failed.
func errorText(err error) string {
	if httpErr := AsHTTPError(err); httpErr != nil && httpErr.Err != nil {
		return httpErr.Err.Error()
	}
	return err.Error()
}
