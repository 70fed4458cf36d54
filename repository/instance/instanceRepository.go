package instancerepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, i *model.Instance) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Instance, error)
	Update(ctx context.Context, i *model.Instance) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, i *model.Instance) error {
	const q = `
INSERT INTO instances (id, type, publisher, year, status, publication_id)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		i.ID, i.Type, i.Publisher, i.Year, i.Status, i.PublicationID,
	).Scan(&i.CreatedAt, &i.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Instance, error) {
	const q = `
SELECT id, type, publisher, year, status, publication_id, created_at, updated_at
FROM instances
WHERE id = $1`
	var i model.Instance
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&i.ID, &i.Type, &i.Publisher, &i.Year, &i.Status,
		&i.PublicationID, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *repo) Update(ctx context.Context, i *model.Instance) error {
	const q = `
UPDATE instances
SET type = $2, publisher = $3, year = $4, status = $5,
    publication_id = $6, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q,
		i.ID, i.Type, i.Publisher, i.Year, i.Status, i.PublicationID,
	).Scan(&i.UpdatedAt)
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM instances WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
