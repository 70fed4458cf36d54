package reservationsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"librental/model"
	pubrepo "librental/repository/publication"
	reservationrepo "librental/repository/reservation"
	userrepo "librental/repository/user"
	"librental/util/apperr"
)

type Service interface {
	// Create appends a queue ticket. A user may hold several tickets for
	// the same publication; each is an independent place in line.
	Create(ctx context.Context, req model.CreateReservationReq) (*model.Reservation, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	r  reservationrepo.Repo
	ur userrepo.Repo
	pr pubrepo.Repo
}

func New(r reservationrepo.Repo, ur userrepo.Repo, pr pubrepo.Repo) Service {
	return &service{r: r, ur: ur, pr: pr}
}

func (s *service) Create(ctx context.Context, req model.CreateReservationReq) (*model.Reservation, error) {
	if req.UserID == uuid.Nil || req.PublicationID == uuid.Nil {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}

	ok, err := s.ur.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "user not found")
	}
	ok, err = s.pr.Exists(ctx, req.PublicationID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "publication not found")
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	res := &model.Reservation{
		ID:            id,
		UserID:        req.UserID,
		PublicationID: req.PublicationID,
	}
	if err := s.r.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Reservation, error) {
	res, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "reservation not found")
		}
		return nil, err
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "reservation not found")
	}
	return nil
}
