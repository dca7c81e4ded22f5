package contact

import (
	"fmt"
	"strings"

	"github.com/ashimpoudel/portfolio/pkg/mailer"
	"github.com/ashimpoudel/portfolio/pkg/sanitizer"
	"github.com/ashimpoudel/portfolio/pkg/validator"
)

// Field names as they appear in JSON and validation errors.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Fields lists the form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Submission is one filled-in contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize returns a copy with surrounding whitespace trimmed from every
// field.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    strings.TrimSpace(s.Name),
		Email:   strings.TrimSpace(s.Email),
		Subject: strings.TrimSpace(s.Subject),
		Message: strings.TrimSpace(s.Message),
	}
}

// Value returns the value of the named field.
func (s Submission) Value(field string) string {
	switch field {
	case FieldName:
		return s.Name
	case FieldEmail:
		return s.Email
	case FieldSubject:
		return s.Subject
	case FieldMessage:
		return s.Message
	}
	return ""
}

// Validate checks every field and returns validator.ValidationErrors
// naming exactly the offending ones, or nil. A blank email reports only
// that it is required; the format check applies to non-blank values.
func Validate(s Submission) error {
	return validator.Apply(
		validator.RequiredString(FieldName, s.Name),
		validator.RequiredString(FieldEmail, s.Email),
		validator.Email(FieldEmail, s.Email),
		validator.RequiredString(FieldSubject, s.Subject),
		validator.RequiredString(FieldMessage, s.Message),
	)
}

// Check is the server-side revalidation. It collapses field errors into
// ErrMissingFields or ErrInvalidEmail, with missing fields taking
// precedence.
func Check(s Submission) error {
	err := Validate(s)
	if err == nil {
		return nil
	}

	errs := validator.ExtractValidationErrors(err)
	for _, e := range errs {
		if e.TranslationKey == validator.KeyRequired {
			return fmt.Errorf("%w: %w", ErrMissingFields, err)
		}
	}
	if errs.Has(FieldEmail) {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return fmt.Errorf("%w: %w", ErrMissingFields, err)
}

// Subject builds the notification subject line.
func Subject(s Submission) string {
	return fmt.Sprintf("New message from %s: %s",
		sanitizer.SingleLine(s.Name), sanitizer.SingleLine(s.Subject))
}

// Body builds the plain-text notification body.
func Body(s Submission) string {
	return fmt.Sprintf("From: %s <%s>\n\n%s", sanitizer.SingleLine(s.Name), s.Email, s.Message)
}

// Compose builds the notification email for a valid submission. The
// submitter is both author and reply-to so the operator can answer
// directly.
func Compose(s Submission, to string) *mailer.Email {
	return &mailer.Email{
		To:      []string{to},
		From:    s.Email,
		ReplyTo: s.Email,
		Subject: Subject(s),
		Text:    Body(s),
	}
}
