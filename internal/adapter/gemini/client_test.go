package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

func newClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(context.Background(), Config{APIKey: "secret", BaseURL: srv.URL, HTTPClient: srv.Client()},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return c
}

func TestCompleteGeneratesJSON(t *testing.T) {
	var path string
	var body map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"variants\":[]}"}]},"finishReason":"STOP"}]}`)
	})

	text, err := client.Complete(context.Background(), port.CompletionRequest{
		Model: "google/gemini-2.5-pro", System: "sys", User: "usr", Temperature: 0.8, MaxTokens: 512,
	})

	require.NoError(t, err)
	assert.Equal(t, `{"variants":[]}`, text)
	assert.True(t, strings.HasSuffix(path, "/models/gemini-2.5-pro:generateContent"), path)
	gc, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "application/json", gc["responseMimeType"])
	assert.EqualValues(t, 512, gc["maxOutputTokens"])
	assert.Contains(t, body, "systemInstruction")
}

func TestCompleteClassifiesAPIErrors(t *testing.T) {
	cases := []struct {
		status int
		body   string
		kind   domain.ErrorKind
	}{
		{429, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, domain.KindRateLimited},
		{402, `{"error":{"code":402,"message":"pay","status":"FAILED_PRECONDITION"}}`, domain.KindQuotaExhausted},
		{500, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, domain.KindUnavailable},
	}
	for _, tc := range cases {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tc.status)
			_, _ = io.WriteString(w, tc.body)
		})
		_, err := client.Complete(context.Background(), port.CompletionRequest{User: "u"})
		assert.Equal(t, tc.kind, domain.KindOf(err), "status %d", tc.status)
	}
}

func TestCompleteEmptyCandidates(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})
	_, err := client.Complete(context.Background(), port.CompletionRequest{User: "u"})
	assert.Equal(t, domain.KindEmptyCompletion, domain.KindOf(err))
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "gemini-2.5-pro", modelName("google/gemini-2.5-pro"))
	assert.Equal(t, "gemini-2.5-flash", modelName("gemini-2.5-flash"))
	assert.Equal(t, DefaultModel, modelName(""))
}
