package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, "secret", srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func request() port.CompletionRequest {
	return port.CompletionRequest{
		Model:       "google/gemini-2.5-pro",
		System:      "system text",
		User:        "user text",
		Temperature: 0.8,
		MaxTokens:   1000,
	}
}

func TestCompleteSendsChatRequest(t *testing.T) {
	var got chatRequest
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"{\"variants\":[]}"}}]}`)
	})

	text, err := client.Complete(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, `{"variants":[]}`, text)
	assert.Equal(t, "google/gemini-2.5-pro", got.Model)
	assert.Equal(t, 0.8, got.Temperature)
	assert.Equal(t, 1000, got.MaxTokens)
	assert.Equal(t, []message{{Role: "system", Content: "system text"}, {Role: "user", Content: "user text"}}, got.Messages)
}

func TestCompleteMapsStatus(t *testing.T) {
	cases := []struct {
		status int
		kind   domain.ErrorKind
	}{
		{http.StatusTooManyRequests, domain.KindRateLimited},
		{http.StatusPaymentRequired, domain.KindQuotaExhausted},
		{http.StatusInternalServerError, domain.KindUnavailable},
		{http.StatusUnauthorized, domain.KindUnavailable},
	}
	for _, tc := range cases {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "nope", tc.status)
		})
		_, err := client.Complete(context.Background(), request())
		assert.Equal(t, tc.kind, domain.KindOf(err), "status %d", tc.status)
	}
}

func TestCompleteRateLimitMessage(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	_, err := client.Complete(context.Background(), request())
	assert.EqualError(t, err, "Rate limit exceeded. Please try again in a moment.")
}

func TestCompleteEmptyChoices(t *testing.T) {
	for _, body := range []string{`{"choices":[]}`, `{"choices":[{"message":{"content":"  "}}]}`} {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, body)
		})
		_, err := client.Complete(context.Background(), request())
		assert.Equal(t, domain.KindEmptyCompletion, domain.KindOf(err), body)
	}
}

func TestCompleteHonoursDeadline(t *testing.T) {
	release := make(chan struct{})
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.Complete(ctx, request())

	assert.Equal(t, domain.KindUnavailable, domain.KindOf(err))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
