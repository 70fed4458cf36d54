package pubsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"librental/model"
	authorrepo "librental/repository/author"
	categoryrepo "librental/repository/category"
	pubrepo "librental/repository/publication"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreatePublicationReq) (*model.Publication, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Publication, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchPublicationReq) (*model.Publication, error)
	// Delete cascades to the publication's instances.
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	r  pubrepo.Repo
	ar authorrepo.Repo
	cr categoryrepo.Repo
}

func New(r pubrepo.Repo, ar authorrepo.Repo, cr categoryrepo.Repo) Service {
	return &service{r: r, ar: ar, cr: cr}
}

func (s *service) Create(ctx context.Context, req model.CreatePublicationReq) (*model.Publication, error) {
	if req.Title == "" || len(req.Authors) == 0 || len(req.Categories) == 0 {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}

	authorIDs, err := s.resolveAuthors(ctx, req.Authors)
	if err != nil {
		return nil, err
	}
	categoryIDs, err := s.resolveCategories(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if req.ID != nil {
		id = *req.ID
	}
	p := &model.Publication{
		ID:         id,
		Title:      req.Title,
		Authors:    req.Authors,
		Categories: req.Categories,
	}
	if err := s.r.Create(ctx, p, authorIDs, categoryIDs); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Publication, error) {
	p, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "publication not found")
		}
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchPublicationReq) (*model.Publication, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title == "" {
		return nil, apperr.New(apperr.CodeInvalid, "title cannot be empty")
	}

	var authorIDs, categoryIDs []uuid.UUID
	if req.Authors != nil {
		if len(req.Authors) == 0 {
			return nil, apperr.New(apperr.CodeInvalid, "authors cannot be empty")
		}
		ids, err := s.resolveAuthors(ctx, req.Authors)
		if err != nil {
			return nil, err
		}
		authorIDs = ids
	}
	if req.Categories != nil {
		if len(req.Categories) == 0 {
			return nil, apperr.New(apperr.CodeInvalid, "categories cannot be empty")
		}
		ids, err := s.resolveCategories(ctx, req.Categories)
		if err != nil {
			return nil, err
		}
		categoryIDs = ids
	}

	if err := s.r.Update(ctx, id, req.Title, authorIDs, categoryIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "publication not found")
	}
	return nil
}

// Publications reference authors by name pairs and categories by name;
// both must already exist.
func (s *service) resolveAuthors(ctx context.Context, refs []model.AuthorRef) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		a, err := s.ar.ByName(ctx, ref.Name, ref.Surname)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperr.New(apperr.CodeInvalid, "author does not exist")
			}
			return nil, err
		}
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (s *service) resolveCategories(ctx context.Context, names []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		c, err := s.cr.ByName(ctx, name)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, apperr.New(apperr.CodeInvalid, "category does not exist")
			}
			return nil, err
		}
		ids = append(ids, c.ID)
	}
	return ids, nil
}
