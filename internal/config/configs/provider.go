package configs

import "time"

const (
	ProviderGateway = "gateway"
	ProviderGemini  = "gemini"
)

// Provider configures the completion provider.
type Provider struct {
	// Kind is gateway (OpenAI-compatible endpoint) or gemini (GenAI SDK).
	Kind     string `env:"KIND" envDefault:"gateway"`
	Endpoint string `env:"ENDPOINT" envDefault:"https://ai.gateway.lovable.dev/v1/chat/completions"`
	// APIKey falls back to LOVABLE_API_KEY when unset.
	APIKey         string        `env:"API_KEY"`
	Model          string        `env:"MODEL" envDefault:"google/gemini-2.5-pro"`
	Temperature    float64       `env:"TEMPERATURE" envDefault:"0.8"`
	MaxTokens      int           `env:"MAX_TOKENS" envDefault:"16000"`
	QuickMaxTokens int           `env:"QUICK_MAX_TOKENS" envDefault:"6000"`
	Timeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
}
