// Package mailer defines the provider-neutral email model and the Sender
// interface every mail provider implements.
//
// The relay composes an [Email] and hands it to a [Sender]; which provider
// actually delivers it (Resend, SMTP, or the development log sender) is a
// startup decision and never leaks into validation or HTTP handling:
//
//	var sender mailer.Sender = resend.New(resend.Config{...})
//	err := sender.Send(ctx, &mailer.Email{
//	    To:      []string{"me@example.com"},
//	    From:    "alice@example.com",
//	    Subject: "New message from Alice: Hi",
//	    Text:    "From: Alice <alice@example.com>\n\nHello there",
//	})
//
// # Rendering
//
// [Renderer] turns markdown templates with optional YAML frontmatter into
// HTML wrapped in a layout. The relay uses it for the HTML alternative of
// notification emails; the plain-text part is always composed directly.
//
//	---
//	Title: New contact message
//	---
//
//	**{{.Name}}** wrote:
//
//	{{.Message}}
//
// Templates and layouts are parsed once and cached.
package mailer
