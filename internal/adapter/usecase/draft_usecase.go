package usecase

import (
	"context"
	"encoding/json"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// DraftUseCase checks draft payloads and delegates to the repository.
type DraftUseCase struct {
	repo port.DraftRepository
}

func NewDraftUseCase(repo port.DraftRepository) *DraftUseCase {
	return &DraftUseCase{repo: repo}
}

func (u *DraftUseCase) ListDrafts(ctx context.Context, userID string) ([]domain.Draft, error) {
	drafts, err := u.repo.ListDrafts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if drafts == nil {
		drafts = []domain.Draft{}
	}
	return drafts, nil
}

func (u *DraftUseCase) CreateDraft(ctx context.Context, userID string, payload json.RawMessage) (*domain.Draft, error) {
	if err := domain.CheckPayload(payload); err != nil {
		return nil, err
	}
	return u.repo.CreateDraft(ctx, userID, payload)
}

func (u *DraftUseCase) UpdateDraft(ctx context.Context, id, userID string, payload json.RawMessage) (*domain.Draft, error) {
	if err := domain.CheckPayload(payload); err != nil {
		return nil, err
	}
	return u.repo.UpdateDraft(ctx, id, userID, payload)
}

func (u *DraftUseCase) DeleteDraft(ctx context.Context, id, userID string) error {
	return u.repo.DeleteDraft(ctx, id, userID)
}
