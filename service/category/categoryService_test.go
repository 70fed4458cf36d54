package categorysvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"librental/model"
	categoryrepo "librental/repository/category"
	categorysvc "librental/service/category"
	"librental/util/apperr"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Category) error
	byIDFn   func(ctx context.Context, id uuid.UUID) (*model.Category, error)
	byNameFn func(ctx context.Context, name string) (*model.Category, error)
	updateFn func(ctx context.Context, c *model.Category) error
	deleteFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ categoryrepo.Repo = (*repoMock)(nil)

func (m *repoMock) Create(ctx context.Context, c *model.Category) error { return m.createFn(ctx, c) }
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) ByName(ctx context.Context, name string) (*model.Category, error) {
	return m.byNameFn(ctx, name)
}
func (m *repoMock) Update(ctx context.Context, c *model.Category) error { return m.updateFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.deleteFn(ctx, id)
}

func TestCreate_Validation(t *testing.T) {
	svc := categorysvc.New(&repoMock{})
	ctx := context.Background()

	_, err := svc.Create(ctx, model.CreateCategoryReq{})
	require.Equal(t, apperr.CodeMissingField, apperr.CodeOf(err))

	_, err = svc.Create(ctx, model.CreateCategoryReq{Name: "12345"})
	require.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Category) error { return nil },
	}
	svc := categorysvc.New(m)

	c, err := svc.Create(context.Background(), model.CreateCategoryReq{Name: "sci-fi"})
	require.NoError(t, err)
	require.Equal(t, "sci-fi", c.Name)
	require.NotEqual(t, uuid.Nil, c.ID)
}

func TestCreate_DuplicateName(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Category) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "categories_name_key"}
		},
	}
	svc := categorysvc.New(m)

	_, err := svc.Create(context.Background(), model.CreateCategoryReq{Name: "sci-fi"})
	require.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestUpdate_NumericNameRejected(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
			return &model.Category{ID: id, Name: "old"}, nil
		},
	}
	svc := categorysvc.New(m)

	name := "42"
	_, err := svc.Update(context.Background(), uuid.New(), model.PatchCategoryReq{Name: &name})
	require.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}

func TestGetDelete_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.Category, error) {
			return nil, sql.ErrNoRows
		},
		deleteFn: func(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil },
	}
	svc := categorysvc.New(m)
	ctx := context.Background()

	_, err := svc.Get(ctx, uuid.New())
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	err = svc.Delete(ctx, uuid.New())
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
