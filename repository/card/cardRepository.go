package cardrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Card) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	Update(ctx context.Context, c *model.Card) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Card) error {
	const q = `
INSERT INTO cards (id, user_id, magstripe, status)
VALUES ($1,$2,$3,$4)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q, c.ID, c.UserID, c.Magstripe, c.Status).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	const q = `
SELECT id, user_id, magstripe, status, created_at, updated_at
FROM cards
WHERE id = $1`
	var c model.Card
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.UserID, &c.Magstripe, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, c *model.Card) error {
	const q = `
UPDATE cards
SET user_id = $2, magstripe = $3, status = $4, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q, c.ID, c.UserID, c.Magstripe, c.Status).
		Scan(&c.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM cards WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
