package rentalrepo

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"librental/model"
)

// Repo is the transactional store behind the allocation engine. The
// engine runs its read-decide-write sequence against one *sql.Tx, so
// every step here takes the tx it must participate in.
type Repo interface {
	Begin(ctx context.Context) (*sql.Tx, error)
	Commit(tx *sql.Tx) error
	Rollback(tx *sql.Tx) error

	UserExists(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (bool, error)
	PublicationExists(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) (bool, error)

	// LockAvailableInstances locks and returns the ids of every available
	// instance of the publication, ordered by id ascending. The locks hold
	// until the transaction ends, so rival allocators for the same
	// publication serialize here.
	LockAvailableInstances(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) ([]uuid.UUID, error)

	// ListReservations returns the publication's reservation queue, oldest
	// first.
	ListReservations(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) ([]model.Reservation, error)

	MarkInstanceUnavailable(ctx context.Context, tx *sql.Tx, instanceID uuid.UUID) error
	InsertRental(ctx context.Context, tx *sql.Tx, rental *model.Rental) error
	DeleteReservation(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) error

	ByID(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Rental, error)
	UpdateDuration(ctx context.Context, tx *sql.Tx, id uuid.UUID, duration int, endDate model.Date) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Begin(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

func (r *repo) Commit(tx *sql.Tx) error { return tx.Commit() }

func (r *repo) Rollback(tx *sql.Tx) error { return tx.Rollback() }

func (r *repo) UserExists(ctx context.Context, tx *sql.Tx, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`
	var ok bool
	err := tx.QueryRowContext(ctx, q, userID).Scan(&ok)
	return ok, err
}

func (r *repo) PublicationExists(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM publications WHERE id = $1)`
	var ok bool
	err := tx.QueryRowContext(ctx, q, publicationID).Scan(&ok)
	return ok, err
}

func (r *repo) LockAvailableInstances(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) ([]uuid.UUID, error) {
	const q = `
SELECT id
FROM instances
WHERE publication_id = $1
  AND status = 'available'
ORDER BY id
FOR UPDATE`
	rows, err := tx.QueryContext(ctx, q, publicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *repo) ListReservations(ctx context.Context, tx *sql.Tx, publicationID uuid.UUID) ([]model.Reservation, error) {
	const q = `
SELECT id, user_id, publication_id, created_at
FROM reservations
WHERE publication_id = $1
ORDER BY created_at, id`
	rows, err := tx.QueryContext(ctx, q, publicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Reservation
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.PublicationID, &res.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *repo) MarkInstanceUnavailable(ctx context.Context, tx *sql.Tx, instanceID uuid.UUID) error {
	const q = `
UPDATE instances
SET status = 'unavailable', updated_at = NOW()
WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, instanceID)
	return err
}

func (r *repo) InsertRental(ctx context.Context, tx *sql.Tx, rental *model.Rental) error {
	const q = `
INSERT INTO rentals (id, user_id, publication_instance_id, duration, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5,$6,$7)
RETURNING created_at`
	return tx.QueryRowContext(ctx, q,
		rental.ID, rental.UserID, rental.PublicationInstanceID,
		rental.Duration, rental.StartDate, rental.EndDate, rental.Status,
	).Scan(&rental.CreatedAt)
}

func (r *repo) DeleteReservation(ctx context.Context, tx *sql.Tx, reservationID uuid.UUID) error {
	const q = `DELETE FROM reservations WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, reservationID)
	return err
}

func (r *repo) ByID(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	const q = `
SELECT id, user_id, publication_instance_id, duration, start_date, end_date, status, created_at
FROM rentals
WHERE id = $1`
	var rt model.Rental
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&rt.ID, &rt.UserID, &rt.PublicationInstanceID, &rt.Duration,
		&rt.StartDate, &rt.EndDate, &rt.Status, &rt.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repo) GetForUpdate(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*model.Rental, error) {
	const q = `
SELECT id, user_id, publication_instance_id, duration, start_date, end_date, status, created_at
FROM rentals
WHERE id = $1
FOR UPDATE`
	var rt model.Rental
	if err := tx.QueryRowContext(ctx, q, id).Scan(
		&rt.ID, &rt.UserID, &rt.PublicationInstanceID, &rt.Duration,
		&rt.StartDate, &rt.EndDate, &rt.Status, &rt.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *repo) UpdateDuration(ctx context.Context, tx *sql.Tx, id uuid.UUID, duration int, endDate model.Date) error {
	const q = `
UPDATE rentals
SET duration = $2, end_date = $3
WHERE id = $1`
	_, err := tx.ExecContext(ctx, q, id, duration, endDate)
	return err
}
