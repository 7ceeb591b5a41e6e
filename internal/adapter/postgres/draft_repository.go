package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adspark-ai-wizard/internal/core/domain"
)

// DraftRepository implements port.DraftRepository using pgxpool.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository returns a new repository instance.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

func (r *DraftRepository) CreateDraft(ctx context.Context, userID string, payload json.RawMessage) (*domain.Draft, error) {
	now := time.Now().UTC()
	d := &domain.Draft{
		ID:        uuid.NewString(),
		UserID:    userID,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO drafts (id, user_id, campaign_data, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		d.ID, d.UserID, []byte(payload), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DraftRepository) UpdateDraft(ctx context.Context, id, userID string, payload json.RawMessage) (*domain.Draft, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrDraftNotFound
	}
	d := domain.Draft{ID: id, UserID: userID, Payload: payload, UpdatedAt: time.Now().UTC()}
	err := r.pool.QueryRow(ctx,
		`UPDATE drafts SET campaign_data = $1, updated_at = $2
		 WHERE id = $3 AND user_id = $4
		 RETURNING created_at`,
		[]byte(payload), d.UpdatedAt, id, userID).Scan(&d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DraftRepository) DeleteDraft(ctx context.Context, id, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrDraftNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM drafts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDraftNotFound
	}
	return nil
}

// ListDrafts returns the drafts of a user, most recently updated first.
func (r *DraftRepository) ListDrafts(ctx context.Context, userID string) ([]domain.Draft, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, campaign_data, created_at, updated_at
		 FROM drafts WHERE user_id = $1
		 ORDER BY updated_at DESC, id`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Draft, error) {
		var (
			d   domain.Draft
			raw []byte
		)
		err := row.Scan(&d.ID, &d.UserID, &raw, &d.CreatedAt, &d.UpdatedAt)
		d.Payload = raw
		return d, err
	})
}
