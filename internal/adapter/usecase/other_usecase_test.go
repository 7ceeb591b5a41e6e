package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/campaign"
	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port/mocks"
)

func TestCreateDraftRejectsNonObjectPayload(t *testing.T) {
	repo := mocks.NewMockDraftRepository(t)
	svc := NewDraftUseCase(repo)

	for _, payload := range []string{`[]`, `"x"`, `null`, `{`} {
		_, err := svc.CreateDraft(context.Background(), "u1", json.RawMessage(payload))
		assert.ErrorIs(t, err, domain.ErrInvalidPayload, payload)
	}
}

func TestUpdateDraftPassesThroughNotFound(t *testing.T) {
	repo := mocks.NewMockDraftRepository(t)
	repo.EXPECT().
		UpdateDraft(mock.Anything, "d1", "u1", json.RawMessage(`{"step":2}`)).
		Return(nil, domain.ErrDraftNotFound)

	_, err := NewDraftUseCase(repo).UpdateDraft(context.Background(), "d1", "u1", json.RawMessage(`{"step":2}`))
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestListDraftsNeverReturnsNil(t *testing.T) {
	repo := mocks.NewMockDraftRepository(t)
	repo.EXPECT().ListDrafts(mock.Anything, "u1").Return(nil, nil)

	drafts, err := NewDraftUseCase(repo).ListDrafts(context.Background(), "u1")
	require.NoError(t, err)
	assert.NotNil(t, drafts)
}

func exampleVariant(t *testing.T) domain.Variant {
	t.Helper()
	var doc struct {
		Variants []domain.Variant `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(campaign.ExampleDocument(campaign.DefaultProfile(), 0), &doc))
	return doc.Variants[0]
}

func TestSaveCampaignStoresDraftStatus(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		SaveCampaign(mock.Anything, mock.AnythingOfType("*domain.SavedCampaign")).
		Run(func(_ context.Context, c *domain.SavedCampaign) {
			c.ID = "c1"
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo, campaign.Rules{Minimums: campaign.DefaultProfile().Required}, discardLogger())
	saved, err := svc.SaveCampaign(context.Background(), "u1", yogaRequest(), exampleVariant(t))

	require.NoError(t, err)
	assert.Equal(t, "c1", saved.ID)
	assert.Equal(t, domain.CampaignStatusDraft, saved.Status)
	assert.Equal(t, int64(50_000_000), saved.DailyBudgetMicros)
	assert.Equal(t, "health-conscious millennials", saved.TargetAudience.Description)
	assert.Zero(t, saved.Metrics)
}

func TestSaveCampaignRejectsEditedVariant(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	v := exampleVariant(t)
	v.Ads = nil

	svc := NewCampaignUseCase(repo, campaign.Rules{Minimums: campaign.DefaultProfile().Required}, discardLogger())
	_, err := svc.SaveCampaign(context.Background(), "u1", yogaRequest(), v)

	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "ads: need 1+, got 0")
}

func TestReportUseCaseWithoutAccount(t *testing.T) {
	svc := NewReportUseCase(nil)

	_, err := svc.AuthURL(context.Background())
	assert.ErrorIs(t, err, domain.ErrAdsNotConfigured)
	_, err = svc.Report(context.Background(), "token")
	assert.ErrorIs(t, err, domain.ErrAdsNotConfigured)
}

func TestReportUseCaseRequiresToken(t *testing.T) {
	account := mocks.NewMockAdsAccount(t)
	svc := NewReportUseCase(account)

	_, err := svc.Report(context.Background(), " ")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	_, err = svc.ExchangeCode(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestReportUseCaseDelegates(t *testing.T) {
	account := mocks.NewMockAdsAccount(t)
	account.EXPECT().AuthCodeURL(mock.AnythingOfType("string")).Return("https://accounts.google.com/o/oauth2/auth?state=x")
	account.EXPECT().Report(mock.Anything, "token").Return(nil, errors.New("boom"))

	svc := NewReportUseCase(account)
	url, err := svc.AuthURL(context.Background())
	require.NoError(t, err)
	assert.Contains(t, url, "state=")

	_, err = svc.Report(context.Background(), "token")
	assert.EqualError(t, err, "boom")
}
