package mailer

import "fmt"

// Tags are provider-specific categories attached to an email.
// Presence-only tags use struct{}{} as the value.
type Tags map[string]any

// Address formats a name and email into RFC 5322 form.
// Returns "Name <email>" if name is provided, otherwise just email.
func Address(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email is a fully-prepared message ready for a Sender.
type Email struct {
	Headers map[string]string // Custom headers
	Tags    Tags              // Provider-specific tags
	From    string            // Author address; providers may move it to Reply-To
	ReplyTo string
	Subject string
	Text    string // Plain text body
	HTML    string // Optional HTML alternative
	To      []string
}

// Validate checks the invariants every provider relies on.
func (e *Email) Validate() error {
	if len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.Text == "" && e.HTML == "" {
		return ErrNoContent
	}
	return nil
}
