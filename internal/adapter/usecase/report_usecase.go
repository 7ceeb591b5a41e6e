package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// ReportUseCase fronts the Google Ads account. A nil account means the
// integration is not configured.
type ReportUseCase struct {
	account port.AdsAccount
}

func NewReportUseCase(account port.AdsAccount) *ReportUseCase {
	return &ReportUseCase{account: account}
}

// AuthURL returns a consent URL with a fresh state value.
func (u *ReportUseCase) AuthURL(_ context.Context) (string, error) {
	if u.account == nil {
		return "", domain.ErrAdsNotConfigured
	}
	return u.account.AuthCodeURL(uuid.NewString()), nil
}

func (u *ReportUseCase) ExchangeCode(ctx context.Context, code string) (*domain.OAuthToken, error) {
	if u.account == nil {
		return nil, domain.ErrAdsNotConfigured
	}
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: authorization code is required", domain.ErrInvalidRequest)
	}
	return u.account.Exchange(ctx, code)
}

func (u *ReportUseCase) Report(ctx context.Context, accessToken string) (*domain.AdsReport, error) {
	if u.account == nil {
		return nil, domain.ErrAdsNotConfigured
	}
	if strings.TrimSpace(accessToken) == "" {
		return nil, fmt.Errorf("%w: access token is required", domain.ErrInvalidRequest)
	}
	return u.account.Report(ctx, accessToken)
}
