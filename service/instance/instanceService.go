package instancesvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"librental/model"
	instancerepo "librental/repository/instance"
	pubrepo "librental/repository/publication"
	"librental/util/apperr"
)

type Service interface {
	Create(ctx context.Context, req model.CreateInstanceReq) (*model.Instance, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Instance, error)
	Update(ctx context.Context, id uuid.UUID, req model.PatchInstanceReq) (*model.Instance, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	r  instancerepo.Repo
	pr pubrepo.Repo
}

func New(r instancerepo.Repo, pr pubrepo.Repo) Service { return &service{r: r, pr: pr} }

func (s *service) Create(ctx context.Context, req model.CreateInstanceReq) (*model.Instance, error) {
	if req.Type == "" || req.Publisher == "" || req.Year == 0 ||
		req.Status == "" || req.PublicationID == uuid.Nil {
		return nil, apperr.New(apperr.CodeMissingField, "missing required information")
	}
	if !validType(req.Type) || !validStatus(req.Status) {
		return nil, apperr.New(apperr.CodeInvalid, "unknown instance type or status")
	}

	ok, err := s.pr.Exists(ctx, req.PublicationID)
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
	// New copies enter the pool available no matter what the caller
	// requested; only the allocation engine moves them out of it.
	i := &model.Instance{
		ID:            id,
		Type:          req.Type,
		Publisher:     req.Publisher,
		Year:          req.Year,
		Status:        model.InstanceAvailable,
		PublicationID: req.PublicationID,
	}
	if err := s.r.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*model.Instance, error) {
	i, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.New(apperr.CodeNotFound, "instance not found")
		}
		return nil, err
	}
	return i, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req model.PatchInstanceReq) (*model.Instance, error) {
	i, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !validType(*req.Type) {
			return nil, apperr.New(apperr.CodeInvalid, "unknown instance type")
		}
		i.Type = *req.Type
	}
	if req.Publisher != nil {
		if *req.Publisher == "" {
			return nil, apperr.New(apperr.CodeInvalid, "publisher cannot be empty")
		}
		i.Publisher = *req.Publisher
	}
	if req.Year != nil {
		i.Year = *req.Year
	}
	if req.Status != nil {
		if !validStatus(*req.Status) {
			return nil, apperr.New(apperr.CodeInvalid, "unknown instance status")
		}
		i.Status = *req.Status
	}
	if req.PublicationID != nil {
		ok, err := s.pr.Exists(ctx, *req.PublicationID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.New(apperr.CodeNotFound, "publication not found")
		}
		i.PublicationID = *req.PublicationID
	}

	if err := s.r.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.CodeNotFound, "instance not found")
	}
	return nil
}

func validType(t model.InstanceType) bool {
	switch t {
	case model.InstancePhysical, model.InstanceEbook, model.InstanceAudiobook:
		return true
	}
	return false
}

func validStatus(st model.InstanceStatus) bool {
	switch st {
	case model.InstanceAvailable, model.InstanceReserved, model.InstanceUnavailable:
		return true
	}
	return false
}
