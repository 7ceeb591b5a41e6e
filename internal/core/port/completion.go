package port

import "context"

// CompletionRequest is one single-shot chat completion. System carries the
// full output contract, User the interpolated business inputs.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

// CompletionProvider is the outbound port to the language model. An
// implementation performs exactly one call per Complete and never retries.
// Failures are returned as *domain.GenerationError of an upstream kind.
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
