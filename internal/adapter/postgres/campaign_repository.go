package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adspark-ai-wizard/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Nested structures are stored as JSONB columns.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func (r *CampaignRepository) SaveCampaign(ctx context.Context, c *domain.SavedCampaign) error {
	cols, err := marshalColumns(c)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err = r.pool.Exec(ctx, `INSERT INTO campaigns
    (id, user_id, name, description, status, budget_daily_micros,
     target_audience, keywords, bidding, ad_groups, ads, metrics, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.UserID, c.Name, c.Description, c.Status, c.DailyBudgetMicros,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CampaignRepository) ListCampaigns(ctx context.Context, userID string) ([]domain.SavedCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT
    id, user_id, name, description, status, budget_daily_micros,
    target_audience, keywords, bidding, ad_groups, ads, metrics, created_at, updated_at
FROM campaigns WHERE user_id = $1
ORDER BY created_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SavedCampaign, error) {
		var (
			c    domain.SavedCampaign
			cols [6][]byte
		)
		err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status, &c.DailyBudgetMicros,
			&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return c, err
		}
		return c, unmarshalColumns(&c, cols)
	})
}

// marshalColumns encodes the JSONB columns in table order.
func marshalColumns(c *domain.SavedCampaign) ([6][]byte, error) {
	var out [6][]byte
	for i, v := range []any{c.TargetAudience, c.Keywords, c.Bidding, nonNil(c.AdGroups), nonNil(c.Ads), c.Metrics} {
		b, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("marshal campaign column %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

func unmarshalColumns(c *domain.SavedCampaign, cols [6][]byte) error {
	for i, dst := range []any{&c.TargetAudience, &c.Keywords, &c.Bidding, &c.AdGroups, &c.Ads, &c.Metrics} {
		if err := json.Unmarshal(cols[i], dst); err != nil {
			return fmt.Errorf("unmarshal campaign column %d: %w", i, err)
		}
	}
	return nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
