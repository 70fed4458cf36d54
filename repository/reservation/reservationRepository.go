package reservationrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, res *model.Reservation) error
	ByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `
INSERT INTO reservations (id, user_id, publication_id)
VALUES ($1,$2,$3)
RETURNING created_at`
	return r.db.QueryRowContext(ctx, q, res.ID, res.UserID, res.PublicationID).
		Scan(&res.CreatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	const q = `
SELECT id, user_id, publication_id, created_at
FROM reservations
WHERE id = $1`
	var res model.Reservation
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&res.ID, &res.UserID, &res.PublicationID, &res.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `DELETE FROM reservations WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}
