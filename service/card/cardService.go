package cardsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"librental/model"
	cardrepo "librental/repository/card"
	userrepo "librental/repository/user"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateCardReq) (*model.Card, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Card, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchCardReq) (*model.Card, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	r  cardrepo.Repo
	ur userrepo.Repo
}

func New(r cardrepo.Repo, ur userrepo.Repo) Service { return &service{r: r, ur: ur} }

func (s *service) Create(ctx context.Context, req model.CreateCardReq) (*model.Card, error) {
	if req.UserID == uuid.Nil || req.Magstripe == "" || req.Status == "" {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}
	if !validCardStatus(req.Status) {
		return nil, apperr.New(apperr.CodeInvalid, "unknown card status")
	}

	ok, err := s.ur.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.New(apperr.CodeNotFound, "user not found")
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	c := &model.Card{
		ID:        id,
		UserID:    req.UserID,
		Magstripe: req.Magstripe,
		Status:    req.Status,
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "card not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchCardReq) (*model.Card, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.UserID != nil {
		ok, err := s.ur.Exists(ctx, *req.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		c.UserID = *req.UserID
	}
	if req.Magstripe != nil {
		if *req.Magstripe == "" {
			return nil, apperr.New(apperr.CodeInvalid, "magstripe cannot be empty")
		}
		c.Magstripe = *req.Magstripe
	}
	if req.Status != nil {
		if !validCardStatus(*req.Status) {
			return nil, apperr.New(apperr.CodeInvalid, "unknown card status")
		}
		c.Status = *req.Status
	}

	if err := s.r.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "card not found")
	}
	return nil
}

func validCardStatus(st model.CardStatus) bool {
	switch st {
	case model.CardActive, model.CardInactive, model.CardExpired:
		return true
	}
	return false
}
