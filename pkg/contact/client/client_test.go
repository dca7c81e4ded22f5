package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio/pkg/contact"
	"github.com/ashimpoudel/portfolio/pkg/contact/client"
)

func alice() contact.Submission {
	return contact.Submission{Name: "Alice", Email: "alice@example.com", Subject: "Hi", Message: "Hello there"}
}

func relay(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Submit_Success(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, client.SubmitPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"message":"Message sent successfully!"}`))
	}))
	t.Cleanup(srv.Close)

	c := client.New(srv.URL + "/")
	assert.Equal(t, srv.URL+"/api/submit", c.Endpoint())

	resp, err := c.Submit(context.Background(), alice())
	require.NoError(t, err)
	assert.Equal(t, "Message sent successfully!", resp.Message)
	assert.Equal(t, alice(), got)
}

func TestClient_Submit_ServerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		message string
		status  int
		kind    client.Kind
	}{
		{"validation", `{"message":"All form fields are required."}`, client.MsgValidation, 400, client.KindValidation},
		{"send failed", `{"message":"Failed to send message due to a server error."}`, client.MsgSendFailed, 500, client.KindSendFailed},
		{"timeout", `{"message":"The mail service did not respond in time."}`, client.MsgTimeout, 504, client.KindTimeout},
		{"method", `Method Not Allowed`, client.MsgUnspecified, 405, client.KindUnexpected},
		{"bad gateway", ``, client.MsgUnspecified, 502, client.KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := relay(t, tt.status, tt.body)
			_, err := client.New(srv.URL).Submit(context.Background(), alice())

			var se *client.ServerError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.Status)
			assert.Equal(t, tt.kind, se.Kind)
			assert.Equal(t, tt.message, client.UserMessage(err))
		})
	}
}

func TestClient_Submit_NeverEchoesServerBody(t *testing.T) {
	t.Parallel()

	srv := relay(t, 500, `{"message":"smtp: 535 5.7.8 Username and Password not accepted"}`)
	_, err := client.New(srv.URL).Submit(context.Background(), alice())
	require.Error(t, err)

	msg := client.UserMessage(err)
	assert.NotContains(t, msg, "535")
	assert.NotContains(t, msg, "Password")
}

func TestClient_Submit_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := client.New(url).Submit(context.Background(), alice())
	require.ErrorIs(t, err, client.ErrUnreachable)
	assert.Equal(t, client.MsgUnreachable, client.UserMessage(err))
	assert.NotEqual(t, client.MsgValidation, client.UserMessage(err))
}

func TestClient_Submit_InvalidSuccessBody(t *testing.T) {
	t.Parallel()

	srv := relay(t, 200, `not json`)
	_, err := client.New(srv.URL).Submit(context.Background(), alice())
	require.ErrorIs(t, err, client.ErrInvalidResponse)
	assert.Equal(t, client.MsgUnspecified, client.UserMessage(err))
}

func TestClient_Submit_Cancelled(t *testing.T) {
	t.Parallel()

	srv := relay(t, 200, `{"message":"ok"}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.New(srv.URL).Submit(ctx, alice())
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, client.ErrUnreachable)
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	assert.Empty(t, client.UserMessage(nil))
	assert.Equal(t, client.MsgUnspecified, client.UserMessage(errors.New("boom")))
	assert.Equal(t, client.MsgInProgress, client.UserMessage(client.ErrSubmitInProgress))
	assert.Equal(t, client.MsgFieldErrors, client.UserMessage(contact.Validate(contact.Submission{})))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation", client.KindValidation.String())
	assert.Equal(t, "send_failed", client.KindSendFailed.String())
	assert.Equal(t, "timeout", client.KindTimeout.String())
	assert.Equal(t, "unexpected", client.KindUnexpected.String())
}
