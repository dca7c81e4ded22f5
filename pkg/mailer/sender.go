package mailer

import "context"

// Sender is the minimal interface email providers implement.
type Sender interface {
	// Send delivers one message. Implementations must honour ctx cancellation.
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
