// Package gateway is a completion provider for OpenAI-compatible chat
// completion endpoints such as the Lovable AI gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// DefaultEndpoint is the chat completions URL of the Lovable AI gateway.
const DefaultEndpoint = "https://ai.gateway.lovable.dev/v1/chat/completions"

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 4 << 10

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client calls a chat completions endpoint with a bearer key. It makes
// exactly one HTTP request per Complete.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New returns a client for endpoint. A nil httpClient uses
// http.DefaultClient; deadlines come from the request context.
func New(endpoint, apiKey string, httpClient *http.Client, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, apiKey: apiKey, httpClient: httpClient, logger: logger}
}

var _ port.CompletionProvider = (*Client)(nil)

// Complete sends the system and user messages and returns the content of
// the first choice.
func (c *Client) Complete(ctx context.Context, req port.CompletionRequest) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewUnavailableError("AI gateway error", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", domain.NewUnavailableError("AI gateway error", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", domain.NewRateLimitedError()
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", domain.NewQuotaExhaustedError()
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("AI gateway error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(text)))
		return "", domain.NewUnavailableError("AI gateway error",
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(text))))
	}

	var out chatResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", domain.NewUnavailableError("AI gateway error", fmt.Errorf("decode response: %w", err))
	}
	if out.Error != nil {
		return "", domain.NewUnavailableError("AI gateway error", fmt.Errorf("%s", out.Error.Message))
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", domain.NewEmptyCompletionError()
	}
	if reason := out.Choices[0].FinishReason; reason == "length" {
		c.logger.Warn("completion truncated by token limit", slog.Int("max_tokens", req.MaxTokens))
	}
	return out.Choices[0].Message.Content, nil
}
