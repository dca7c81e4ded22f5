// Package contact holds the contact-form domain shared by the relay server
// and the form client: the [Submission] type, the field rules both sides
// apply, the composition of the notification email, and the [Relay] service
// that revalidates a submission and hands one email to a mailer.Sender.
//
// A submission is transient. It is validated, turned into exactly one
// email, and forgotten; nothing is stored, queued or retried, and two
// identical submissions produce two sends.
//
//	relay := contact.NewRelay(sender, "me@example.com",
//	    contact.WithSendTimeout(10*time.Second),
//	    contact.WithLogger(log),
//	)
//	id, err := relay.Deliver(ctx, contact.Submission{
//	    Name: "Alice", Email: "alice@example.com",
//	    Subject: "Hi", Message: "Hello there",
//	})
//
// Deliver reports failures with the sentinel errors in errors.go so callers
// can map them to user-facing messages with errors.Is.
package contact
