package categorysvc

import (
	"context"
	"database/sql"
	"errors"
	"unicode"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"librental/model"
	categoryrepo "librental/repository/category"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateCategoryReq) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchCategoryReq) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct{ r categoryrepo.Repo }

func New(r categoryrepo.Repo) Service { return &service{r} }

func (s *service) Create(ctx context.Context, req model.CreateCategoryReq) (*model.Category, error) {
	if req.Name == "" {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}
	if isNumeric(req.Name) {
		return nil, apperr.New(apperr.CodeInvalid, "category name cannot be numeric")
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	c := &model.Category{ID: id, Name: req.Name}
	if err := s.r.Create(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "this category already exists")
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	c, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "category not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchCategoryReq) (*model.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name == nil || *req.Name == "" {
		return nil, apperr.New(apperr.CodeInvalid, "category name is required")
	}
	if isNumeric(*req.Name) {
		return nil, apperr.New(apperr.CodeInvalid, "category name cannot be numeric")
	}

	c.Name = *req.Name
	if err := s.r.Update(ctx, c); err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.New(apperr.CodeConflict, "this category already exists")
		}
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
		return apperr.New(apperr.CodeNotFound, "category not found")
	}
	return nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
