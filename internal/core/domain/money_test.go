package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountToMicros(t *testing.T) {
	m, err := AmountToMicros(decimal.RequireFromString("1.2345675"))
	require.NoError(t, err)
	assert.Equal(t, int64(1_234_568), m)

	m, err = AmountToMicros(MaxAmount)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), m)

	_, err = AmountToMicros(MaxAmount.Add(decimal.NewFromInt(1)))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = AmountToMicros(decimal.RequireFromString("1e20"))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestWholeMicrosRejectsOverflow(t *testing.T) {
	_, err := WholeMicros(decimal.RequireFromString("1e25"))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)

	_, err = WholeMicros(decimal.RequireFromString("-1e25"))
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestToMicrosClamps(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), ToMicros(decimal.RequireFromString("1e20")))
	assert.Equal(t, int64(math.MinInt64), ToMicros(decimal.RequireFromString("-1e20")))
}

func validRequest() CampaignRequest {
	return CampaignRequest{
		BusinessDescription: "We sell eco-friendly yoga mats",
		TargetAudience:      "health-conscious millennials",
		Budget:              decimal.RequireFromString("50"),
		Goals:               "increase online sales",
		WebsiteURL:          "example.com",
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CampaignRequest)
		want   string
	}{
		{name: "valid", mutate: func(*CampaignRequest) {}},
		{
			name:   "zero budget",
			mutate: func(r *CampaignRequest) { r.Budget = decimal.Zero },
			want:   "budget must be greater than 0",
		},
		{
			name:   "budget beyond micro range",
			mutate: func(r *CampaignRequest) { r.Budget = decimal.RequireFromString("1e20") },
			want:   "budget too large",
		},
		{
			name:   "website without domain",
			mutate: func(r *CampaignRequest) { r.WebsiteURL = "localhost" },
			want:   "website URL must contain a domain",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRequest()
			tt.mutate(&r)

			err := r.Validate()

			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestBudgetMicrosAtLimit(t *testing.T) {
	r := validRequest()
	r.Budget = MaxAmount
	require.NoError(t, r.Validate())
	assert.Equal(t, int64(math.MaxInt64), r.BudgetMicros())
}
