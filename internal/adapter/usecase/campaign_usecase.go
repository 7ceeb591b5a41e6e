package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// CampaignUseCase stores the variant a user picked in the wizard.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	rules  campaign.Rules
	logger *slog.Logger
}

// NewCampaignUseCase re-checks saved variants against rules, since the
// user may have edited them after generation.
func NewCampaignUseCase(repo port.CampaignRepository, rules campaign.Rules, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, rules: rules, logger: logger}
}

func (u *CampaignUseCase) SaveCampaign(ctx context.Context, userID string, req domain.CampaignRequest, v domain.Variant) (*domain.SavedCampaign, error) {
	if reasons := campaign.CheckVariant(v, u.rules); len(reasons) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, strings.Join(reasons, "; "))
	}
	c := domain.NewSavedCampaign(userID, req, v)
	if err := u.repo.SaveCampaign(ctx, &c); err != nil {
		return nil, fmt.Errorf("save campaign: %w", err)
	}
	u.logger.Info("campaign saved", slog.String("id", c.ID), slog.String("user_id", userID))
	return &c, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, userID string) ([]domain.SavedCampaign, error) {
	list, err := u.repo.ListCampaigns(ctx, userID)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []domain.SavedCampaign{}
	}
	return list, nil
}
