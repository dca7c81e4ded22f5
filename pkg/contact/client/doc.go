// Package client is the Form Client side of the contact pipeline.
//
// [Client] posts a submission to the relay once and classifies the outcome
// into a small error taxonomy: [ErrUnreachable] when the relay cannot be
// reached, [*ServerError] with a [Kind] for non-2xx answers, and a
// catch-all for anything else. [UserMessage] turns any of these into text
// suitable for a person; it never repeats the server's raw response.
//
// [Form] is the controller behind a contact form. It validates with the
// same rules the relay uses, sends exactly one request per submit, and
// reports the result to a [Presenter]:
//
//	form := client.NewForm(client.New("https://example.com"), presenter)
//	form.Set("name", "Alice")
//	...
//	if err := form.Submit(ctx); err != nil { ... }
//
// While a submit is in flight a second call returns [ErrSubmitInProgress].
package client
