// Package sqlite is a single-file store for drafts and saved campaigns,
// used by the CLI and by deployments without Postgres.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"adspark-ai-wizard/internal/core/domain"
	"adspark-ai-wizard/internal/core/port"
)

// Timestamps are stored as unix nanoseconds so ordering by updated_at
// separates writes made within the same second.
const schema = `
CREATE TABLE IF NOT EXISTS drafts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    campaign_data TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_drafts_user_updated ON drafts(user_id, updated_at DESC);

CREATE TABLE IF NOT EXISTS campaigns (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'draft',
    budget_daily_micros INTEGER NOT NULL,
    target_audience TEXT NOT NULL,
    keywords TEXT NOT NULL,
    bidding TEXT NOT NULL,
    ad_groups TEXT NOT NULL,
    ads TEXT NOT NULL,
    metrics TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_campaigns_user_created ON campaigns(user_id, created_at DESC);
`

// Store implements port.DraftRepository and port.CampaignRepository.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var (
	_ port.DraftRepository    = (*Store)(nil)
	_ port.CampaignRepository = (*Store)(nil)
)

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == ":memory:" {
		// Every connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// timestamp returns the current time, strictly after last when the clock
// has not moved.
func (s *Store) timestamp(last time.Time) time.Time {
	now := s.now().UTC()
	if !now.After(last) {
		now = last.Add(time.Nanosecond)
	}
	return now
}

func (s *Store) CreateDraft(ctx context.Context, userID string, payload json.RawMessage) (*domain.Draft, error) {
	now := s.now().UTC()
	d := &domain.Draft{ID: uuid.NewString(), UserID: userID, Payload: payload, CreatedAt: now, UpdatedAt: now}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO drafts (id, user_id, campaign_data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		d.ID, d.UserID, string(payload), now.UnixNano(), now.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to insert draft: %w", err)
	}
	return d, nil
}

func (s *Store) UpdateDraft(ctx context.Context, id, userID string, payload json.RawMessage) (*domain.Draft, error) {
	var created, updated int64
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, updated_at FROM drafts WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	now := s.timestamp(time.Unix(0, updated))
	res, err := s.db.ExecContext(ctx,
		`UPDATE drafts SET campaign_data = ?, updated_at = ? WHERE id = ? AND user_id = ?`,
		string(payload), now.UnixNano(), id, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrDraftNotFound
	}
	return &domain.Draft{
		ID:        id,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: time.Unix(0, created).UTC(),
		UpdatedAt: now,
	}, nil
}

func (s *Store) DeleteDraft(ctx context.Context, id, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

func (s *Store) ListDrafts(ctx context.Context, userID string) ([]domain.Draft, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, campaign_data, created_at, updated_at
		 FROM drafts WHERE user_id = ? ORDER BY updated_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	defer rows.Close()

	drafts := []domain.Draft{}
	for rows.Next() {
		var (
			d                domain.Draft
			payload          string
			created, updated int64
		)
		if err := rows.Scan(&d.ID, &d.UserID, &payload, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan draft: %w", err)
		}
		d.Payload = json.RawMessage(payload)
		d.CreatedAt = time.Unix(0, created).UTC()
		d.UpdatedAt = time.Unix(0, updated).UTC()
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (s *Store) SaveCampaign(ctx context.Context, c *domain.SavedCampaign) error {
	var cols [6]string
	for i, v := range []any{c.TargetAudience, c.Keywords, c.Bidding, c.AdGroups, c.Ads, c.Metrics} {
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal campaign: %w", err)
		}
		cols[i] = string(b)
	}
	now := s.now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now
	_, err := s.db.ExecContext(ctx, `INSERT INTO campaigns
		(id, user_id, name, description, status, budget_daily_micros,
		 target_audience, keywords, bidding, ad_groups, ads, metrics, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Name, c.Description, c.Status, c.DailyBudgetMicros,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], now.UnixNano(), now.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}
	return nil
}

func (s *Store) ListCampaigns(ctx context.Context, userID string) ([]domain.SavedCampaign, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		id, user_id, name, description, status, budget_daily_micros,
		target_audience, keywords, bidding, ad_groups, ads, metrics, created_at, updated_at
		FROM campaigns WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	list := []domain.SavedCampaign{}
	for rows.Next() {
		var (
			c                domain.SavedCampaign
			cols             [6]string
			created, updated int64
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Status, &c.DailyBudgetMicros,
			&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		for i, dst := range []any{&c.TargetAudience, &c.Keywords, &c.Bidding, &c.AdGroups, &c.Ads, &c.Metrics} {
			if err := json.Unmarshal([]byte(cols[i]), dst); err != nil {
				return nil, fmt.Errorf("failed to unmarshal campaign: %w", err)
			}
		}
		c.CreatedAt = time.Unix(0, created).UTC()
		c.UpdatedAt = time.Unix(0, updated).UTC()
		list = append(list, c)
	}
	return list, rows.Err()
}
