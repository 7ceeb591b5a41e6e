package port

import (
	"context"
	"encoding/json"

	"adspark-ai-wizard/internal/core/domain"
)

// GenerateUseCase turns a campaign request into exactly three validated
// variants or a typed *domain.GenerationError. No partial result is ever
// returned.
type GenerateUseCase interface {
	Generate(ctx context.Context, req domain.CampaignRequest) ([]domain.Variant, error)
}

// DraftUseCase manages the drafts of a user.
type DraftUseCase interface {
	ListDrafts(ctx context.Context, userID string) ([]domain.Draft, error)
	CreateDraft(ctx context.Context, userID string, payload json.RawMessage) (*domain.Draft, error)
	UpdateDraft(ctx context.Context, id, userID string, payload json.RawMessage) (*domain.Draft, error)
	DeleteDraft(ctx context.Context, id, userID string) error
}

// CampaignUseCase saves a chosen variant and lists saved campaigns. Save
// re-checks the variant because the user may have edited it.
type CampaignUseCase interface {
	SaveCampaign(ctx context.Context, userID string, req domain.CampaignRequest, v domain.Variant) (*domain.SavedCampaign, error)
	ListCampaigns(ctx context.Context, userID string) ([]domain.SavedCampaign, error)
}

// ReportUseCase backs the Google Ads dashboard.
type ReportUseCase interface {
	AuthURL(ctx context.Context) (string, error)
	ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error)
	Report(ctx context.Context, accessToken string) (*domain.AdsReport, error)
}
