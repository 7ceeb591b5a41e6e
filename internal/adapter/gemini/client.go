// Package gemini is a completion provider backed by the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// DefaultModel is used when the configured model is empty.
const DefaultModel = "gemini-2.5-pro"

// Config holds the connection settings of the SDK client.
type Config struct {
	APIKey string
	// BaseURL overrides the Gemini API endpoint; empty means the default.
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements port.CompletionProvider with Models.GenerateContent.
type Client struct {
	client *genai.Client
	logger *slog.Logger
}

var _ port.CompletionProvider = (*Client)(nil)

// New creates the SDK client. It does not contact the API.
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, logger: logger}, nil
}

// Complete asks for a JSON response with the system text as system
// instruction.
func (c *Client) Complete(ctx context.Context, req port.CompletionRequest) (string, error) {
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
		Temperature:       genai.Ptr(float32(req.Temperature)),
		ResponseMIMEType:  "application/json",
	}
	if req.MaxTokens > 0 {
		gc.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := c.client.Models.GenerateContent(ctx, modelName(req.Model), genai.Text(req.User), gc)
	if err != nil {
		return "", classify(err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", domain.NewEmptyCompletionError()
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonMaxTokens {
		c.logger.Warn("completion truncated by token limit", slog.Int("max_tokens", req.MaxTokens))
	}
	return text, nil
}

// modelName drops the vendor prefix used by the gateway ("google/...").
func modelName(model string) string {
	model = strings.TrimPrefix(model, "google/")
	if model == "" {
		return DefaultModel
	}
	return model
}

func classify(err error) error {
	code, status := 0, ""
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code, status = apiErr.Code, apiErr.Status
	case errors.As(err, &apiErrPtr):
		code, status = apiErrPtr.Code, apiErrPtr.Status
	}
	switch {
	case code == http.StatusTooManyRequests || status == "RESOURCE_EXHAUSTED":
		return domain.NewRateLimitedError()
	case code == http.StatusPaymentRequired:
		return domain.NewQuotaExhaustedError()
	}
	return domain.NewUnavailableError("AI gateway error", err)
}
