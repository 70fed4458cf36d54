package authorrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Author) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	ByName(ctx context.Context, name, surname string) (*model.Author, error)
	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, a *model.Author) error {
	const q = `
INSERT INTO authors (id, name, surname)
VALUES ($1,$2,$3)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q, a.ID, a.Name, a.Surname).
		Scan(&a.CreatedAt, &a.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	const q = `
SELECT id, name, surname, created_at, updated_at
FROM authors
WHERE id = $1`
	var a model.Author
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.Surname, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) ByName(ctx context.Context, name, surname string) (*model.Author, error) {
	const q = `
SELECT id, name, surname, created_at, updated_at
FROM authors
WHERE name = $1 AND surname = $2`
	var a model.Author
	if err := r.db.QueryRowContext(ctx, q, name, surname).Scan(
		&a.ID, &a.Name, &a.Surname, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) Update(ctx context.Context, a *model.Author) error {
	const q = `
UPDATE authors
SET name = $2, surname = $3, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q, a.ID, a.Name, a.Surname).Scan(&a.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM authors WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
