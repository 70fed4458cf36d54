// Package rentalsvc decides whether a rental request may take one of a
// publication's instances right now, or is blocked behind the
// reservation queue.
package rentalsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"librental/model"
	rentalrepo "librental/repository/rental"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchRentalReq) (*model.Rental, error)
}

type service struct{ r rentalrepo.Repo }

func New(r rentalrepo.Repo) Service { return &service{r: r} }

// Create runs the allocation: snapshot availability, snapshot the
// reservation queue, admit or reject, then bind the lowest-id available
// instance. All reads and writes share one transaction; rejection paths
// roll back without touching anything.
func (s *service) Create(ctx context.Context, req model.CreateRentalReq) (rental *model.Rental, err error) {
	if req.UserID == uuid.Nil || req.PublicationID == uuid.Nil || req.Duration == 0 {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}
	if req.Duration < 0 {
		return nil, apperr.New(apperr.CodeInvalid, "duration must be positive")
	}
	if req.Duration > model.MaxRentalDays {
		return nil, apperr.New(apperr.CodeInvalidDuration, "rental duration cannot exceed 14 days")
	}

	tx, err := s.r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.r.Rollback(tx)
		}
	}()

	ok, err := s.r.UserExists(ctx, tx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "user not found")
	}
	ok, err = s.r.PublicationExists(ctx, tx, req.PublicationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "publication not found")
	}

	available, err := s.r.LockAvailableInstances(ctx, tx, req.PublicationID)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, apperr.New(apperr.CodeNoAvailableInstance, "no available instance for publication")
	}

	queue, err := s.r.ListReservations(ctx, tx, req.PublicationID)
	if err != nil {
		return nil, err
	}
	if !admitted(req.UserID, len(available), queue) {
		return nil, apperr.New(apperr.CodeQueueBlocked, "publication is reserved by earlier requests")
	}

	instanceID := available[0]
	if err = s.r.MarkInstanceUnavailable(ctx, tx, instanceID); err != nil {
		return nil, err
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	start := model.Today()
	rental = &model.Rental{
		ID:                    id,
		UserID:                req.UserID,
		PublicationInstanceID: instanceID,
		Duration:              req.Duration,
		StartDate:             start,
		EndDate:               start.AddDays(req.Duration),
		Status:                model.RentalActive,
	}
	if err = s.r.InsertRental(ctx, tx, rental); err != nil {
		return nil, err
	}

	// The winning rental consumes the requester's oldest ticket. A user
	// admitted through surplus capacity may hold none.
	if resID, held := oldestReservationOf(queue, req.UserID); held {
		if err = s.r.DeleteReservation(ctx, tx, resID); err != nil {
			return nil, err
		}
	}

	if err = s.r.Commit(tx); err != nil {
		return nil, err
	}
	return rental, nil
}

// admitted applies the queue-fairness rule. With no queue, or with fewer
// queued requests than free instances, anyone may take a copy. Otherwise
// the requester must hold one of the first n positions, where n is the
// number of free instances.
func admitted(userID uuid.UUID, n int, queue []model.Reservation) bool {
	q := len(queue)
	if q == 0 || q < n {
		return true
	}
	for i := 0; i < n; i++ {
		if queue[i].UserID == userID {
			return true
		}
	}
	return false
}

func oldestReservationOf(queue []model.Reservation, userID uuid.UUID) (uuid.UUID, bool) {
	for _, res := range queue {
		if res.UserID == userID {
			return res.ID, true
		}
	}
	return uuid.Nil, false
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	rental, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "rental not found")
		}
		return nil, err
	}
	return rental, nil
}

// Update extends the rental. The issue date is preserved; the end date is
// recomputed from it.
func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchRentalReq) (rental *model.Rental, err error) {
	if req.Duration == nil {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}
	duration := *req.Duration
	if duration <= 0 {
		return nil, apperr.New(apperr.CodeInvalid, "duration must be positive")
	}
	if duration > model.MaxRentalDays {
		return nil, apperr.New(apperr.CodeInvalidDuration, "rental duration cannot exceed 14 days")
	}

	tx, err := s.r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.r.Rollback(tx)
		}
	}()

	rental, err = s.r.GetForUpdate(ctx, tx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "rental not found")
		}
		return nil, err
	}

	rental.Duration = duration
	rental.EndDate = rental.StartDate.AddDays(duration)
	if err = s.r.UpdateDuration(ctx, tx, id, duration, rental.EndDate); err != nil {
		return nil, err
	}
	if err = s.r.Commit(tx); err != nil {
		return nil, err
	}
	return rental, nil
}
