package usersvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"librental/model"
	userrepo "librental/repository/user"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateUserReq) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchUserReq) (*model.User, error)
}

type service struct{ r userrepo.Repo }

func New(r userrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, req model.CreateUserReq) (*model.User, error) {
	if req.Name == "" || req.Surname == "" || req.Email == "" ||
		req.BirthDate.IsZero() || req.PersonalIdentificator == "" {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	u := &model.User{
		ID:                    id,
		Name:                  req.Name,
		Surname:               req.Surname,
		Email:                 req.Email,
		BirthDate:             req.BirthDate,
		PersonalIdentificator: req.PersonalIdentificator,
	}
	if err := s.r.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "email already taken")
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchUserReq) (*model.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperr.New(apperr.CodeInvalid, "name cannot be empty")
		}
		u.Name = *req.Name
	}
	if req.Surname != nil {
		if *req.Surname == "" {
			return nil, apperr.New(apperr.CodeInvalid, "surname cannot be empty")
		}
		u.Surname = *req.Surname
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, apperr.New(apperr.CodeInvalid, "email cannot be empty")
		}
		u.Email = *req.Email
	}
	if req.BirthDate != nil {
		u.BirthDate = *req.BirthDate
	}
	if req.PersonalIdentificator != nil {
		if *req.PersonalIdentificator == "" {
			return nil, apperr.New(apperr.CodeInvalid, "personal_identificator cannot be empty")
		}
		u.PersonalIdentificator = *req.PersonalIdentificator
	}

	if err := s.r.Update(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "email already taken")
		}
		return nil, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
