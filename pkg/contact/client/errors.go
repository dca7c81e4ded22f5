package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnreachable indicates the relay could not be contacted at all.
	ErrUnreachable = errors.New("cannot reach server")
	// ErrInvalidResponse indicates a 2xx answer that could not be decoded.
	ErrInvalidResponse = errors.New("invalid server response")
	// ErrSubmitInProgress is returned when Submit is called while a
	// previous submission has not finished.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrUnknownField is returned by Form.Set for names outside the form.
	ErrUnknownField = errors.New("unknown form field")
)

// Kind classifies a non-2xx relay answer.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindSendFailed
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSendFailed:
		return "send_failed"
	case KindTimeout:
		return "timeout"
	default:
		return "unexpected"
	}
}

func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusInternalServerError:
		return KindSendFailed
	case http.StatusGatewayTimeout:
		return KindTimeout
	default:
		return KindUnexpected
	}
}

// ServerError is a non-2xx answer from the relay.
type ServerError struct {
	Message string // Decoded {"message"} when present; for logs only
	Status  int
	Kind    Kind
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay answered %d (%s)", e.Status, e.Kind)
	}
	return fmt.Sprintf("relay answered %d (%s): %s", e.Status, e.Kind, e.Message)
}

// User-facing texts returned by UserMessage.
const (
	MsgUnreachable = "Failed to send message. Cannot connect to server. Please check your connection and try again."
	MsgValidation  = "Failed to send message. All form fields are required and the email address must be valid."
	MsgSendFailed  = "Failed to send message. The server could not deliver it. Please try again or contact me directly via email."
	MsgTimeout     = "Failed to send message. The mail service did not respond in time. Please try again later."
	MsgInProgress  = "Your message is already being sent."
	MsgFieldErrors = "Please correct the highlighted fields."
	MsgUnspecified = "Failed to send message. Something went wrong. Please try again or contact me directly via email."
)

// UserMessage maps an error from Client.Submit or Form.Submit to a
// human-readable message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var se *ServerError
	switch {
	case errors.Is(err, ErrUnreachable):
		return MsgUnreachable
	case errors.Is(err, ErrSubmitInProgress):
		return MsgInProgress
	case errors.As(err, &se):
		switch se.Kind {
		case KindValidation:
			return MsgValidation
		case KindSendFailed:
			return MsgSendFailed
		case KindTimeout:
			return MsgTimeout
		}
	case isValidation(err):
		return MsgFieldErrors
	}
	return MsgUnspecified
}
