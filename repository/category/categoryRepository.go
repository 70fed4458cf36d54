package categoryrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, c *model.Category) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	ByName(ctx context.Context, name string) (*model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, c *model.Category) error {
	const q = `
INSERT INTO categories (id, name)
VALUES ($1,$2)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q, c.ID, c.Name).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	const q = `
SELECT id, name, created_at, updated_at
FROM categories
WHERE id = $1`
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) ByName(ctx context.Context, name string) (*model.Category, error) {
	const q = `
SELECT id, name, created_at, updated_at
FROM categories
WHERE name = $1`
	var c model.Category
	if err := r.db.QueryRowContext(ctx, q, name).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) Update(ctx context.Context, c *model.Category) error {
	const q = `
UPDATE categories
SET name = $2, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q, c.ID, c.Name).Scan(&c.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM categories WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
