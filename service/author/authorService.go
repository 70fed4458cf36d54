package authorsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"librental/model"
	authorrepo "librental/repository/author"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateAuthorReq) (*model.Author, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Author, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchAuthorReq) (*model.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ r authorrepo.Repo }

func New(r authorrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, req model.CreateAuthorReq) (*model.Author, error) {
	if req.Name == "" || req.Surname == "" {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	a := &model.Author{ID: id, Name: req.Name, Surname: req.Surname}
	if err := s.r.Create(ctx, a); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "author with this name and surname already exists")
		}
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	a, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "author not found")
		}
		return nil, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchAuthorReq) (*model.Author, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.New(apperr.CodeInvalid, "name cannot be empty")
		}
		a.Name = *req.Name
	}
	if req.Surname != nil {
		if *req.Surname == "" {
			return nil, apperr.New(apperr.CodeInvalid, "surname cannot be empty")
		}
		a.Surname = *req.Surname
	}

	if err := s.r.Update(ctx, a); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "author with this name and surname already exists")
		}
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "author not found")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
