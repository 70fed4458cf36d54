package userrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, u *model.User) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, name, surname, email, birth_date, personal_identificator)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, q,
		u.ID, u.Name, u.Surname, u.Email, u.BirthDate, u.PersonalIdentificator,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, name, surname, email, birth_date, personal_identificator, created_at, updated_at
FROM users
WHERE id = $1`
	var u model.User
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.BirthDate,
		&u.PersonalIdentificator, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) Update(ctx context.Context, u *model.User) error {
	const q = `
UPDATE users
SET name = $2, surname = $3, email = $4, birth_date = $5,
    personal_identificator = $6, updated_at = NOW()
WHERE id = $1
RETURNING updated_at`
	return r.db.QueryRowContext(ctx, q,
		u.ID, u.Name, u.Surname, u.Email, u.BirthDate, u.PersonalIdentificator,
	).Scan(&u.UpdatedAt)
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	err := r.db.QueryRowContext(ctx, q, id).Scan(&ok)
	return ok, err
}
