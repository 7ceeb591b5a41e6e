package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspark-ai-wizard/internal/adapter/sqlite"
)

func TestSeed(t *testing.T) {
	store, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, Seed(context.Background(), store, store))

	drafts, err := store.ListDrafts(context.Background(), DemoUser)
	require.NoError(t, err)
	assert.Len(t, drafts, 3)

	campaigns, err := store.ListCampaigns(context.Background(), DemoUser)
	require.NoError(t, err)
	require.Len(t, campaigns, 3)
	for _, c := range campaigns {
		assert.Equal(t, "draft", c.Status)
		assert.Positive(t, c.DailyBudgetMicros)
	}
}
