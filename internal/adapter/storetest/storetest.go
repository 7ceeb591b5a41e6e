// Package storetest holds the behaviour every draft and campaign store must
// share. Store packages run it from their own tests.
package storetest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// tick separates writes so timestamp ordering is strict on every store.
const tick = 5 * time.Millisecond

// RunDrafts checks a DraftRepository. open must return an empty store.
func RunDrafts(t *testing.T, open func(t *testing.T) port.DraftRepository) {
	t.Run("lifecycle", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		d, err := s.CreateDraft(ctx, "u1", json.RawMessage(`{"step":1}`))
		require.NoError(t, err)
		require.NotEmpty(t, d.ID)
		assert.Equal(t, "u1", d.UserID)

		time.Sleep(tick)
		updated, err := s.UpdateDraft(ctx, d.ID, "u1", json.RawMessage(`{"step":2}`))
		require.NoError(t, err)
		assert.Equal(t, d.ID, updated.ID)
		assert.True(t, updated.UpdatedAt.After(d.UpdatedAt))
		assert.WithinDuration(t, d.CreatedAt, updated.CreatedAt, time.Millisecond)

		list, err := s.ListDrafts(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.JSONEq(t, `{"step":2}`, string(list[0].Payload))

		require.NoError(t, s.DeleteDraft(ctx, d.ID, "u1"))
		assert.ErrorIs(t, s.DeleteDraft(ctx, d.ID, "u1"), domain.ErrDraftNotFound)

		list, err = s.ListDrafts(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("most recently updated first", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		first, err := s.CreateDraft(ctx, "u1", json.RawMessage(`{"n":1}`))
		require.NoError(t, err)
		time.Sleep(tick)
		second, err := s.CreateDraft(ctx, "u1", json.RawMessage(`{"n":2}`))
		require.NoError(t, err)

		list, err := s.ListDrafts(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{second.ID, first.ID}, draftIDs(list))

		time.Sleep(tick)
		_, err = s.UpdateDraft(ctx, first.ID, "u1", json.RawMessage(`{"n":3}`))
		require.NoError(t, err)

		list, err = s.ListDrafts(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []string{first.ID, second.ID}, draftIDs(list))
	})

	t.Run("scoped to owner", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		d, err := s.CreateDraft(ctx, "owner", json.RawMessage(`{}`))
		require.NoError(t, err)

		_, err = s.UpdateDraft(ctx, d.ID, "intruder", json.RawMessage(`{"x":1}`))
		assert.ErrorIs(t, err, domain.ErrDraftNotFound)
		assert.ErrorIs(t, s.DeleteDraft(ctx, d.ID, "intruder"), domain.ErrDraftNotFound)

		list, err := s.ListDrafts(ctx, "intruder")
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = s.ListDrafts(ctx, "owner")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.JSONEq(t, `{}`, string(list[0].Payload))
	})

	t.Run("unknown id", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		for _, id := range []string{uuid.NewString(), "not-a-uuid"} {
			_, err := s.UpdateDraft(ctx, id, "u1", json.RawMessage(`{}`))
			assert.ErrorIs(t, err, domain.ErrDraftNotFound, id)
			assert.ErrorIs(t, s.DeleteDraft(ctx, id, "u1"), domain.ErrDraftNotFound, id)
		}
	})
}

// RunCampaigns checks a CampaignRepository. open must return an empty store.
func RunCampaigns(t *testing.T, open func(t *testing.T) port.CampaignRepository) {
	t.Run("round trip", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		c := sampleCampaign("u1", "Eco Grip")
		require.NoError(t, s.SaveCampaign(ctx, &c))
		require.NotEmpty(t, c.ID)
		assert.False(t, c.CreatedAt.IsZero())

		list, err := s.ListCampaigns(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		got := list[0]
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, "u1", got.UserID)
		assert.Equal(t, c.Name, got.Name)
		assert.Equal(t, c.Status, got.Status)
		assert.Equal(t, c.DailyBudgetMicros, got.DailyBudgetMicros)
		assert.Equal(t, c.TargetAudience, got.TargetAudience)
		assert.Equal(t, c.Keywords, got.Keywords)
		assert.Equal(t, c.Bidding, got.Bidding)
		assert.Equal(t, c.AdGroups, got.AdGroups)
		assert.Equal(t, c.Ads, got.Ads)
		assert.Equal(t, c.Metrics, got.Metrics)
	})

	t.Run("newest first and scoped to owner", func(t *testing.T) {
		ctx := context.Background()
		s := open(t)

		older := sampleCampaign("u1", "Older")
		require.NoError(t, s.SaveCampaign(ctx, &older))
		time.Sleep(tick)
		newer := sampleCampaign("u1", "Newer")
		require.NoError(t, s.SaveCampaign(ctx, &newer))
		foreign := sampleCampaign("u2", "Foreign")
		require.NoError(t, s.SaveCampaign(ctx, &foreign))

		list, err := s.ListCampaigns(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, []string{newer.ID, older.ID}, []string{list[0].ID, list[1].ID})

		list, err = s.ListCampaigns(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func sampleCampaign(userID, name string) domain.SavedCampaign {
	return domain.SavedCampaign{
		UserID:            userID,
		Name:              name,
		Description:       "Lead with sustainability.",
		Status:            domain.CampaignStatusDraft,
		DailyBudgetMicros: 50_000_000,
		TargetAudience: domain.TargetAudience{
			Description: "yogis",
			Targeting:   domain.Targeting{Locations: []string{"US"}, Devices: "mobile"},
		},
		Keywords: domain.KeywordSet{Positive: []string{"cork yoga mat"}, Negative: []string{"free"}},
		Bidding:  domain.Bidding{Strategy: "manual_cpc", BidMicros: 1_200_000},
		AdGroups: []domain.AdGroup{{Name: "Cork", Keywords: []string{"cork yoga mat"}, CPCBidMicros: 850_000}},
		Ads:      []domain.Ad{{Headlines: []string{"Eco Mats"}, Descriptions: []string{"Grip."}}},
	}
}

func draftIDs(list []domain.Draft) []string {
	ids := make([]string, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	return ids
}
