package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ashimpoudel/portfolio"
	"github.com/ashimpoudel/portfolio/pkg/contact"
)

// SubmitPath is the single route of the contact relay.
const SubmitPath = "/api/submit"

// Client-facing messages. They never include provider details.
const (
	MsgSent          = "Message sent successfully!"
	MsgMissingFields = "All form fields are required."
	MsgInvalidEmail  = "Please provide a valid email address."
	MsgSendFailed    = "Failed to send message due to a server error."
	MsgSendTimeout   = "The mail service did not respond in time. Please try again later."
	MsgMalformedBody = "Request body must be a JSON object with name, email, subject and message."
	MsgBodyTooLarge  = "Request body is too large."
)

// Deliverer hands a submission to the mail provider.
type Deliverer interface {
	Deliver(ctx context.Context, s contact.Submission) (string, error)
}

// SubmitResponse is the success body.
type SubmitResponse struct {
	Message string `json:"message"`
}

// Contact handles contact form submissions.
type Contact struct {
	relay Deliverer
}

// NewContact creates the contact handler.
func NewContact(relay Deliverer) *Contact {
	return &Contact{relay: relay}
}

// Routes registers the submit endpoint for every method so mismatches get
// the relay's own 405 answer.
func (h *Contact) Routes(r portfolio.Router) {
	r.Any(SubmitPath, h.submit)
}

func (h *Contact) submit(c portfolio.Context) error {
	if c.Request().Method != http.MethodPost {
		c.SetHeader("Allow", http.MethodPost)
		return c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
	}

	var s contact.Submission
	if err := c.BindJSON(&s); err != nil {
		if errors.Is(err, portfolio.ErrBodyTooLarge) {
			return portfolio.ErrRequestTooLarge(MsgBodyTooLarge, portfolio.WithError(err))
		}
		return portfolio.ErrBadRequest(MsgMalformedBody, portfolio.WithError(err))
	}

	id, err := h.relay.Deliver(c, s)
	switch {
	case err == nil:
		c.LogInfo("contact submission delivered", slog.String("submission_id", id))
		return c.JSON(http.StatusOK, SubmitResponse{Message: MsgSent})
	case errors.Is(err, contact.ErrMissingFields):
		return portfolio.ErrBadRequest(MsgMissingFields, portfolio.WithError(err))
	case errors.Is(err, contact.ErrInvalidEmail):
		return portfolio.ErrBadRequest(MsgInvalidEmail, portfolio.WithError(err))
	case errors.Is(err, contact.ErrSendTimeout):
		return portfolio.ErrGatewayTimeout(MsgSendTimeout, portfolio.WithError(err))
	default:
		return portfolio.ErrInternal(MsgSendFailed, portfolio.WithError(err))
	}
}
