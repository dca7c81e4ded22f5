package client

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ashimpoudel/portfolio/pkg/contact"
	"github.com/ashimpoudel/portfolio/pkg/validator"
)

// DefaultAcknowledgment is shown when the relay succeeds without a message.
const DefaultAcknowledgment = "Message sent successfully!"

// Submitter sends a submission. *Client implements it.
type Submitter interface {
	Submit(ctx context.Context, s contact.Submission) (*Response, error)
}

// Presenter renders form feedback.
type Presenter interface {
	// ShowFieldErrors marks the offending fields. An empty set clears all marks.
	ShowFieldErrors(errs validator.ValidationErrors)
	// ShowSuccess displays the acknowledgment after a successful send.
	ShowSuccess(message string)
	// ShowError displays a human-readable failure message.
	ShowError(message string)
}

// Form holds the state of one contact form.
type Form struct {
	submitter Submitter
	presenter Presenter

	values contact.Submission
	errs   validator.ValidationErrors

	mu      sync.Mutex
	pending atomic.Bool
}

// NewForm creates an empty form.
func NewForm(s Submitter, p Presenter) *Form {
	return &Form{submitter: s, presenter: p}
}

// Set updates one field by name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case contact.FieldName:
		f.values.Name = value
	case contact.FieldEmail:
		f.values.Email = value
	case contact.FieldSubject:
		f.values.Subject = value
	case contact.FieldMessage:
		f.values.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Values returns the current field values.
func (f *Form) Values() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns the field errors from the last validation.
func (f *Form) Errors() validator.ValidationErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

// Pending reports whether a submission is in flight.
func (f *Form) Pending() bool { return f.pending.Load() }

// Validate replaces the current error set with the result of checking the
// current values and reports whether the form is valid.
func (f *Form) Validate() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errs = validator.ExtractValidationErrors(contact.Validate(f.values))
	return f.errs.IsEmpty()
}

// Submit validates and, when valid, sends exactly one request. On success
// the presenter acknowledges once and the form is reset; on failure the
// values are kept so the user can retry.
func (f *Form) Submit(ctx context.Context) error {
	if !f.pending.CompareAndSwap(false, true) {
		return ErrSubmitInProgress
	}
	defer f.pending.Store(false)

	valid := f.Validate()
	errs := f.Errors()
	f.presenter.ShowFieldErrors(errs)
	if !valid {
		return errs
	}

	resp, err := f.submitter.Submit(ctx, f.Values())
	if err != nil {
		f.presenter.ShowError(UserMessage(err))
		return err
	}

	msg := DefaultAcknowledgment
	if resp != nil && resp.Message != "" {
		msg = resp.Message
	}
	f.presenter.ShowSuccess(msg)
	f.Reset()
	return nil
}

// Reset clears values and errors.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = contact.Submission{}
	f.errs = nil
}

func isValidation(err error) bool {
	return validator.IsValidationError(err)
}
