package usersvc_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"librental/model"
	userrepo "librental/repository/user"
	usersvc "librental/service/user"
	"librental/util/apperr"
)

type repoMock struct {
	createFn func(ctx context.Context, u *model.User) error
	byIDFn   func(ctx context.Context, id uuid.UUID) (*model.User, error)
	updateFn func(ctx context.Context, u *model.User) error
	existsFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ userrepo.Repo = (*repoMock)(nil)

func (m *repoMock) Create(ctx context.Context, u *model.User) error { return m.createFn(ctx, u) }
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, u *model.User) error { return m.updateFn(ctx, u) }
func (m *repoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.existsFn(ctx, id)
}

func validCreateReq() model.CreateUserReq {
	return model.CreateUserReq{
		Name:                  "Jan",
		Surname:               "Novak",
		Email:                 "jan.novak@example.com",
		BirthDate:             model.NewDate(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)),
		PersonalIdentificator: "900412/1234",
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc := usersvc.New(&repoMock{})
	ctx := context.Background()

	req := validCreateReq()
	req.Email = ""
	_, err := svc.Create(ctx, req)
	require.Equal(t, apperr.CodeMissingField, apperr.CodeOf(err))

	req = validCreateReq()
	req.BirthDate = model.Date{}
	_, err = svc.Create(ctx, req)
	require.Equal(t, apperr.CodeMissingField, apperr.CodeOf(err))
}

func TestCreate_GeneratesIDWhenAbsent(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, u *model.User) error { return nil },
	}
	svc := usersvc.New(m)

	u, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, u.ID)
}

func TestCreate_KeepsClientID(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, u *model.User) error { return nil },
	}
	svc := usersvc.New(m)

	id := uuid.New()
	req := validCreateReq()
	req.ID = &id
	u, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, id, u.ID)
}

func TestCreate_EmailTaken(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, u *model.User) error {
			return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
		},
	}
	svc := usersvc.New(m)

	_, err := svc.Create(context.Background(), validCreateReq())
	require.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestUpdate_PartialFields(t *testing.T) {
	existing := &model.User{
		ID:                    uuid.New(),
		Name:                  "Jan",
		Surname:               "Novak",
		Email:                 "jan.novak@example.com",
		BirthDate:             model.NewDate(time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)),
		PersonalIdentificator: "900412/1234",
	}
	var saved *model.User
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			cp := *existing
			return &cp, nil
		},
		updateFn: func(ctx context.Context, u *model.User) error {
			saved = u
			return nil
		},
	}
	svc := usersvc.New(m)

	email := "jan@example.org"
	u, err := svc.Update(context.Background(), existing.ID, model.PatchUserReq{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "jan@example.org", u.Email)
	require.Equal(t, "Jan", u.Name, "unprovided fields keep their values")
	require.Same(t, u, saved)
}

func TestUpdate_EmptyProvidedFieldRejected(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			return &model.User{ID: id, Name: "Jan"}, nil
		},
	}
	svc := usersvc.New(m)

	empty := ""
	_, err := svc.Update(context.Background(), uuid.New(), model.PatchUserReq{Name: &empty})
	require.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}

func TestUpdate_NotFound(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.User, error) {
			return nil, sql.ErrNoRows
		},
	}
	svc := usersvc.New(m)

	name := "x"
	_, err := svc.Update(context.Background(), uuid.New(), model.PatchUserReq{Name: &name})
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
