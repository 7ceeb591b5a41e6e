package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
	"adspark-ai-wizard/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() GeneratorConfig {
	return GeneratorConfig{
		ProviderName:   "test",
		APIKey:         "key",
		Model:          "google/gemini-2.5-pro",
		Temperature:    0.8,
		MaxTokens:      16000,
		QuickMaxTokens: 6000,
		Timeout:        time.Second,
		Full:           campaign.DefaultProfile(),
		Quick:          campaign.QuickProfile(),
	}
}

func yogaRequest() domain.CampaignRequest {
	return domain.CampaignRequest{
		BusinessDescription: "We sell eco-friendly yoga mats",
		TargetAudience:      "health-conscious millennials",
		Budget:              decimal.NewFromInt(50),
		Goals:               "increase online sales",
		WebsiteURL:          "https://example.com",
	}
}

// response renders a provider answer with n example variants.
func response(t *testing.T, n int, dailyMicros int64) string {
	t.Helper()
	var doc struct {
		Variants []json.RawMessage `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(campaign.ExampleDocument(campaign.DefaultProfile(), dailyMicros), &doc))
	for len(doc.Variants) < n {
		doc.Variants = append(doc.Variants, doc.Variants[0])
	}
	doc.Variants = doc.Variants[:n]
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(out)
}

func requireKind(t *testing.T, err error, kind domain.ErrorKind) *domain.GenerationError {
	t.Helper()
	var ge *domain.GenerationError
	require.True(t, errors.As(err, &ge), "expected GenerationError, got %v", err)
	require.Equal(t, kind, ge.Kind)
	return ge
}

// TestGenerateYogaMats runs the happy path and checks what reaches the provider.
func TestGenerateYogaMats(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
			return req.Model == "google/gemini-2.5-pro" &&
				req.Temperature == 0.8 &&
				req.MaxTokens == 16000 &&
				strings.Contains(req.User, "Business: We sell eco-friendly yoga mats") &&
				strings.Contains(req.System, "exactly 3 campaign variants")
		})).
		Return(response(t, 3, 50_000_000), nil).
		Once()

	svc := NewGenerateUseCase(provider, testConfig(), discardLogger())

	variants, err := svc.Generate(context.Background(), yogaRequest())
	require.NoError(t, err)
	require.Len(t, variants, 3)
	for _, v := range variants {
		assert.Equal(t, int64(50_000_000), v.Budget.DailyMicros)
		assert.GreaterOrEqual(t, len(v.Keywords.Positive), 5)
	}
}

func TestGenerateAcceptsProseAndFence(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("Here is your campaign:\n```json\n"+response(t, 3, 50_000_000)+"\n```", nil)

	variants, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).
		Generate(context.Background(), yogaRequest())
	require.NoError(t, err)
	assert.Len(t, variants, 3)
}

func TestGenerateFillsMissingBudget(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.Anything).Return(response(t, 3, 0), nil)

	variants, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).
		Generate(context.Background(), yogaRequest())
	require.NoError(t, err)
	for _, v := range variants {
		assert.Equal(t, int64(50_000_000), v.Budget.DailyMicros)
	}
}

func TestGenerateRateLimited(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("", domain.NewRateLimitedError()).
		Once()

	cfg := testConfig()
	cfg.RetryOnInvalid = 2
	_, err := NewGenerateUseCase(provider, cfg, discardLogger()).Generate(context.Background(), yogaRequest())

	ge := requireKind(t, err, domain.KindRateLimited)
	assert.Equal(t, "Rate limit exceeded. Please try again in a moment.", ge.Message)
}

func TestGenerateMissingAPIKey(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)

	cfg := testConfig()
	cfg.APIKey = ""
	_, err := NewGenerateUseCase(provider, cfg, discardLogger()).Generate(context.Background(), yogaRequest())

	requireKind(t, err, domain.KindConfiguration)
	provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)

	req := yogaRequest()
	req.Budget = decimal.Zero
	_, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).Generate(context.Background(), req)

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Empty(t, domain.KindOf(err))
}

func TestGenerateWrongVariantCount(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.Anything).Return(response(t, 2, 1), nil).Once()

	_, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).Generate(context.Background(), yogaRequest())

	ge := requireKind(t, err, domain.KindWrongVariantCount)
	assert.Equal(t, 2, ge.Actual)
}

func TestGenerateParseFailureKeepsRaw(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.Anything).Return("Sorry, I can't help with that.", nil)

	_, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).Generate(context.Background(), yogaRequest())

	ge := requireKind(t, err, domain.KindParseFailure)
	assert.Equal(t, "Sorry, I can't help with that.", ge.Raw)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().Complete(mock.Anything, mock.Anything).Return(" \n", nil)

	_, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).Generate(context.Background(), yogaRequest())

	requireKind(t, err, domain.KindEmptyCompletion)
}

func TestGenerateRetriesInvalidResponse(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
			return !containsReminder(req.User)
		})).
		Return(response(t, 4, 1), nil).
		Once()
	provider.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
			return containsReminder(req.User)
		})).
		Return(response(t, 3, 1), nil).
		Once()

	cfg := testConfig()
	cfg.RetryOnInvalid = 1
	variants, err := NewGenerateUseCase(provider, cfg, discardLogger()).Generate(context.Background(), yogaRequest())

	require.NoError(t, err)
	assert.Len(t, variants, 3)
}

func containsReminder(user string) bool {
	return strings.Contains(user, "IMPORTANT: the previous answer was rejected")
}

func TestGenerateDoesNotRetryUpstreamFailure(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.Anything).
		Return("", errors.New("connection reset by peer")).
		Once()

	cfg := testConfig()
	cfg.RetryOnInvalid = 3
	_, err := NewGenerateUseCase(provider, cfg, discardLogger()).Generate(context.Background(), yogaRequest())

	ge := requireKind(t, err, domain.KindUnavailable)
	assert.EqualError(t, ge.Err, "connection reset by peer")
}

func TestGenerateTimeout(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ port.CompletionRequest) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	cfg := testConfig()
	cfg.Timeout = 20 * time.Millisecond
	_, err := NewGenerateUseCase(provider, cfg, discardLogger()).Generate(context.Background(), yogaRequest())

	ge := requireKind(t, err, domain.KindUnavailable)
	assert.ErrorIs(t, ge, context.DeadlineExceeded)
}

func TestGenerateQuickMode(t *testing.T) {
	provider := mocks.NewMockCompletionProvider(t)
	provider.EXPECT().
		Complete(mock.Anything, mock.MatchedBy(func(req port.CompletionRequest) bool {
			return req.MaxTokens == 6000
		})).
		Return(response(t, 3, 1), nil)

	req := yogaRequest()
	req.QuickMode = true
	_, err := NewGenerateUseCase(provider, testConfig(), discardLogger()).Generate(context.Background(), req)
	require.NoError(t, err)
}
