package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashimpoudel/portfolio/pkg/contact"
)

func run(t *testing.T, endpoint string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--endpoint", endpoint}, args...))
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestContactCommand_Success(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/submit", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Message sent successfully!"}`))
	}))
	defer srv.Close()

	out, _, err := run(t, srv.URL,
		"--name", "Alice", "--email", "alice@example.com",
		"--subject", "Hi", "--message", "Hello there")
	require.NoError(t, err)
	assert.Contains(t, out, "Message sent successfully!")
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Hello there", got.Message)
}

func TestContactCommand_FieldErrorsSendNothing(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	_, errOut, err := run(t, srv.URL, "--name", "Alice", "--email", "nope")
	require.ErrorIs(t, err, errSubmitFailed)
	assert.Contains(t, errOut, "Please enter a valid email address")
	assert.Contains(t, errOut, "Subject is required")
	assert.Contains(t, errOut, "Message is required")
	assert.NotContains(t, errOut, "Name is required")
	assert.Zero(t, calls)
}

func TestContactCommand_ServerFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"smtp exploded"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, errOut, err := run(t, srv.URL,
		"--name", "Alice", "--email", "alice@example.com",
		"--subject", "Hi", "--message", "Hello there")
	require.ErrorIs(t, err, errSubmitFailed)
	assert.Contains(t, errOut, "could not deliver")
	assert.NotContains(t, errOut, "smtp exploded")
}
