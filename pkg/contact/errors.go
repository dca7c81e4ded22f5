package contact

import "errors"

var (
	// ErrMissingFields indicates at least one field was blank.
	ErrMissingFields = errors.New("all form fields are required")
	// ErrInvalidEmail indicates the sender address has the wrong shape.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrSendFailed indicates the mail provider reported a failure.
	ErrSendFailed = errors.New("failed to send message")
	// ErrSendTimeout indicates the mail provider did not answer in time.
	ErrSendTimeout = errors.New("mail provider timed out")
)
