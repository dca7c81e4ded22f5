package contact_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio/pkg/contact"
	"github.com/ashimpoudel/portfolio/pkg/logger"
	"github.com/ashimpoudel/portfolio/pkg/mailer"
)

func fixedID() string { return "sub-1" }

func TestRelay_Deliver(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	var got *mailer.Email
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*mailer.Email) }).
		Return(nil).Once()

	relay := contact.NewRelay(sender, "me@example.com", contact.WithIDGenerator(fixedID))

	id, err := relay.Deliver(context.Background(), valid())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", id)
	sender.AssertExpectations(t)

	require.NotNil(t, got)
	assert.Equal(t, "New message from Alice: Hi", got.Subject)
	assert.Equal(t, "From: Alice <alice@example.com>\n\nHello there", got.Text)
	assert.Equal(t, []string{"me@example.com"}, got.To)
	assert.Equal(t, "alice@example.com", got.ReplyTo)
	assert.Equal(t, "sub-1", got.Headers[contact.SubmissionHeader])
	assert.Equal(t, "sub-1", got.Tags["submission_id"])

	assert.Contains(t, got.HTML, "<strong>From:</strong> Alice")
	assert.Contains(t, got.HTML, "Hello there")
	assert.NotContains(t, got.HTML, "DOCTYPE")
}

func TestRelay_Deliver_HTMLIsSanitized(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	var got *mailer.Email
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*mailer.Email) }).
		Return(nil)

	s := valid()
	s.Message = "click <a href=\"javascript:alert(1)\">here</a>\n\n<img src=x onerror=alert(1)>"

	_, err := contact.NewRelay(sender, "me@example.com").Deliver(context.Background(), s)
	require.NoError(t, err)

	assert.NotContains(t, got.HTML, "javascript:")
	assert.NotContains(t, got.HTML, "onerror")
	assert.Contains(t, got.Text, "javascript:alert(1)")
}

func TestRelay_Deliver_TwoSubmissionsTwoSends(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	relay := contact.NewRelay(sender, "me@example.com")
	id1, err := relay.Deliver(context.Background(), valid())
	require.NoError(t, err)
	id2, err := relay.Deliver(context.Background(), valid())
	require.NoError(t, err)

	sender.AssertNumberOfCalls(t, "Send", 2)
	assert.NotEqual(t, id1, id2)
}

func TestRelay_Deliver_RejectsInvalid(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	relay := contact.NewRelay(sender, "me@example.com")

	s := valid()
	s.Name = " "
	_, err := relay.Deliver(context.Background(), s)
	require.ErrorIs(t, err, contact.ErrMissingFields)

	s = valid()
	s.Email = "alice@"
	_, err = relay.Deliver(context.Background(), s)
	require.ErrorIs(t, err, contact.ErrInvalidEmail)

	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestRelay_Deliver_ProviderFailure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "debug"}, contact.SubmissionIDExtractor())

	sender := &MockSender{}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("535 bad credentials")).Once()

	relay := contact.NewRelay(sender, "me@example.com",
		contact.WithLogger(log),
		contact.WithIDGenerator(fixedID),
	)

	_, err := relay.Deliver(context.Background(), valid())
	require.ErrorIs(t, err, contact.ErrSendFailed)
	require.NotErrorIs(t, err, contact.ErrSendTimeout)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "mail provider failed", entry["msg"])
	assert.Equal(t, "sub-1", entry["submission_id"])
	assert.Equal(t, "535 bad credentials", entry["error"])
}

func TestRelay_Deliver_Timeout(t *testing.T) {
	t.Parallel()

	slow := mailer.SenderFunc(func(ctx context.Context, _ *mailer.Email) error {
		<-ctx.Done()
		return ctx.Err()
	})

	relay := contact.NewRelay(slow, "me@example.com", contact.WithSendTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := relay.Deliver(context.Background(), valid())
	require.ErrorIs(t, err, contact.ErrSendTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestRelay_Deliver_WithoutRenderer(t *testing.T) {
	t.Parallel()

	sender := &MockSender{}
	var got *mailer.Email
	sender.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(*mailer.Email) }).
		Return(nil)

	_, err := contact.NewRelay(sender, "me@example.com", contact.WithRenderer(nil)).
		Deliver(context.Background(), valid())
	require.NoError(t, err)
	assert.Empty(t, got.HTML)
	assert.NotEmpty(t, got.Text)
}

func TestSubmissionIDExtractor(t *testing.T) {
	t.Parallel()

	extract := contact.SubmissionIDExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(contact.WithSubmissionID(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, slog.String("submission_id", "abc"), attr)
}
