package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
	"adspark-ai-wizard/internal/metrics"
)

// GeneratorConfig is the explicit configuration of the generation
// pipeline. It is built once by the composition root.
type GeneratorConfig struct {
	// ProviderName labels metrics and logs ("gateway", "gemini").
	ProviderName string
	// APIKey is only checked for presence; the provider holds its own copy.
	APIKey      string
	Model       string
	Temperature float64
	// MaxTokens bounds a full generation, QuickMaxTokens a quick one.
	MaxTokens      int
	QuickMaxTokens int
	// Timeout bounds one provider call. Zero disables it.
	Timeout time.Duration

	Full  campaign.Profile
	Quick campaign.Profile

	// RetryOnInvalid is the number of extra provider calls made when a
	// response fails validation. Upstream failures are never retried.
	RetryOnInvalid    int
	EnforceCopyLength bool
}

// GenerateUseCase drives one request through prompt, completion,
// extraction and validation. It holds no mutable state and is safe for
// concurrent use.
type GenerateUseCase struct {
	provider port.CompletionProvider
	cfg      GeneratorConfig
	logger   *slog.Logger
}

// NewGenerateUseCase wires the pipeline to a completion provider.
func NewGenerateUseCase(provider port.CompletionProvider, cfg GeneratorConfig, logger *slog.Logger) *GenerateUseCase {
	return &GenerateUseCase{provider: provider, cfg: cfg, logger: logger}
}

// Generate returns exactly three validated variants or a
// *domain.GenerationError. Request validation failures wrap
// domain.ErrInvalidRequest.
func (u *GenerateUseCase) Generate(ctx context.Context, req domain.CampaignRequest) ([]domain.Variant, error) {
	variants, err := u.generate(ctx, req)
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = string(domain.KindOf(err))
		if outcome == "" {
			outcome = "invalid_request"
		}
	}
	metrics.Generations.WithLabelValues(outcome).Inc()
	return variants, err
}

func (u *GenerateUseCase) generate(ctx context.Context, req domain.CampaignRequest) ([]domain.Variant, error) {
	if strings.TrimSpace(u.cfg.APIKey) == "" {
		return nil, domain.NewConfigurationError("PROVIDER_API_KEY is not configured")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	profile, maxTokens := u.cfg.Full, u.cfg.MaxTokens
	if req.QuickMode {
		profile, maxTokens = u.cfg.Quick, u.cfg.QuickMaxTokens
	}
	prompt := campaign.BuildPrompt(req, profile)
	rules := campaign.Rules{Minimums: profile.Required, EnforceCopyLength: u.cfg.EnforceCopyLength}

	user := prompt.User
	for attempt := 0; ; attempt++ {
		variants, err := u.attempt(ctx, port.CompletionRequest{
			Model:       u.cfg.Model,
			System:      prompt.System,
			User:        user,
			Temperature: u.cfg.Temperature,
			MaxTokens:   maxTokens,
		}, rules)
		if err == nil {
			fillBudget(variants, req.BudgetMicros())
			u.logger.Info("campaign generated",
				slog.Int("attempts", attempt+1),
				slog.Bool("quick", req.QuickMode))
			return variants, nil
		}
		if attempt >= u.cfg.RetryOnInvalid || domain.KindOf(err).Class() != domain.ClassValidation {
			return nil, err
		}
		u.logger.Warn("invalid completion, retrying",
			slog.Int("attempt", attempt+1),
			slog.Any("error", err))
		user = prompt.User + campaign.Reminder(err)
	}
}

func (u *GenerateUseCase) attempt(ctx context.Context, req port.CompletionRequest, rules campaign.Rules) ([]domain.Variant, error) {
	if u.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	raw, err := u.provider.Complete(ctx, req)
	metrics.CompletionDuration.WithLabelValues(u.cfg.ProviderName).Observe(time.Since(start).Seconds())
	if err != nil {
		err = upstreamError(ctx, err)
		u.logger.Error("completion failed",
			slog.String("provider", u.cfg.ProviderName),
			slog.Any("error", err))
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, domain.NewEmptyCompletionError()
	}
	u.logger.Debug("completion received", slog.Int("length", len(raw)), slog.String("raw", raw))

	doc, err := campaign.Extract(raw)
	if err != nil {
		u.logger.Error("failed to parse completion", slog.Any("error", err), slog.String("raw", raw))
		return nil, err
	}
	variants, err := campaign.Validate(doc, rules)
	if err != nil {
		u.logger.Error("completion failed validation", slog.Any("error", err))
		return nil, err
	}
	return variants, nil
}

// upstreamError makes sure every provider failure carries an upstream kind.
func upstreamError(ctx context.Context, err error) error {
	if domain.KindOf(err) != "" {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewUnavailableError("AI request timed out", err)
	}
	if errors.Is(err, context.Canceled) {
		return domain.NewUnavailableError("AI request cancelled", err)
	}
	return domain.NewUnavailableError("AI gateway error", err)
}

func fillBudget(variants []domain.Variant, micros int64) {
	for i := range variants {
		if variants[i].Budget.DailyMicros == 0 {
			variants[i].Budget.DailyMicros = micros
		}
	}
}
