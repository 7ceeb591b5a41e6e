package port

import (
	"context"
	"encoding/json"

	"adspark-ai-wizard/internal/core/domain"
)

// DraftRepository persists wizard drafts. Every operation is scoped to the
// owning user; a draft of another user behaves as if it did not exist.
type DraftRepository interface {
	// CreateDraft stores a new draft and returns it with id and timestamps set.
	CreateDraft(ctx context.Context, userID string, payload json.RawMessage) (*domain.Draft, error)
	// UpdateDraft replaces the payload and bumps updated_at. It returns
	// domain.ErrDraftNotFound when no draft matches.
	UpdateDraft(ctx context.Context, id, userID string, payload json.RawMessage) (*domain.Draft, error)
	// DeleteDraft returns domain.ErrDraftNotFound when no draft matches.
	DeleteDraft(ctx context.Context, id, userID string) error
	// ListDrafts returns the drafts of a user, most recently updated first.
	ListDrafts(ctx context.Context, userID string) ([]domain.Draft, error)
}

// CampaignRepository persists variants the user chose to keep.
type CampaignRepository interface {
	// SaveCampaign inserts c and fills in its id and timestamps.
	SaveCampaign(ctx context.Context, c *domain.SavedCampaign) error
	// ListCampaigns returns the campaigns of a user, newest first.
	ListCampaigns(ctx context.Context, userID string) ([]domain.SavedCampaign, error)
}
