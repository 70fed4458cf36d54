package cardsvc_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"librental/model"
	cardrepo "librental/repository/card"
	userrepo "librental/repository/user"
	cardsvc "librental/service/card"
	"librental/util/apperr"
)

type repoMock struct {
	createFn func(ctx context.Context, c *model.Card) error
	byIDFn   func(ctx context.Context, id uuid.UUID) (*model.Card, error)
	updateFn func(ctx context.Context, c *model.Card) error
	deleteFn func(ctx context.Context, id uuid.UUID) (bool, error)
}

var _ cardrepo.Repo = (*repoMock)(nil)

func (m *repoMock) Create(ctx context.Context, c *model.Card) error { return m.createFn(ctx, c) }
func (m *repoMock) ByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	return m.byIDFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, c *model.Card) error { return m.updateFn(ctx, c) }
func (m *repoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.deleteFn(ctx, id)
}

type userMock struct{ exists bool }

var _ userrepo.Repo = (*userMock)(nil)

func (m *userMock) Create(ctx context.Context, u *model.User) error { return nil }
func (m *userMock) ByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return nil, sql.ErrNoRows
}
func (m *userMock) Update(ctx context.Context, u *model.User) error { return nil }
func (m *userMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.exists, nil
}

func validCreateReq() model.CreateCardReq {
	return model.CreateCardReq{
		UserID:    uuid.New(),
		Magstripe: "9081726354",
		Status:    model.CardActive,
	}
}

func TestCreate_Success(t *testing.T) {
	var saved *model.Card
	m := &repoMock{
		createFn: func(ctx context.Context, c *model.Card) error {
			saved = c
			return nil
		},
	}
	svc := cardsvc.New(m, &userMock{exists: true})

	card, err := svc.Create(context.Background(), validCreateReq())
	require.NoError(t, err)
	require.Same(t, saved, card)
	require.NotEqual(t, uuid.Nil, card.ID)
}

func TestCreate_UnknownStatus(t *testing.T) {
	svc := cardsvc.New(&repoMock{}, &userMock{exists: true})

	req := validCreateReq()
	req.Status = "lost"
	_, err := svc.Create(context.Background(), req)
	require.Equal(t, apperr.CodeInvalid, apperr.CodeOf(err))
}

func TestCreate_UnknownUser(t *testing.T) {
	svc := cardsvc.New(&repoMock{}, &userMock{exists: false})

	_, err := svc.Create(context.Background(), validCreateReq())
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestUpdate_StatusOnly(t *testing.T) {
	id := uuid.New()
	m := &repoMock{
		byIDFn: func(ctx context.Context, got uuid.UUID) (*model.Card, error) {
			return &model.Card{ID: id, Magstripe: "9081726354", Status: model.CardActive}, nil
		},
		updateFn: func(ctx context.Context, c *model.Card) error { return nil },
	}
	svc := cardsvc.New(m, &userMock{exists: true})

	status := model.CardExpired
	card, err := svc.Update(context.Background(), id, model.PatchCardReq{Status: &status})
	require.NoError(t, err)
	require.Equal(t, model.CardExpired, card.Status)
	require.Equal(t, "9081726354", card.Magstripe)
}

func TestUpdate_ReassignToUnknownUser(t *testing.T) {
	m := &repoMock{
		byIDFn: func(ctx context.Context, id uuid.UUID) (*model.Card, error) {
			return &model.Card{ID: id, Magstripe: "9081726354", Status: model.CardActive}, nil
		},
	}
	svc := cardsvc.New(m, &userMock{exists: false})

	other := uuid.New()
	_, err := svc.Update(context.Background(), uuid.New(), model.PatchCardReq{UserID: &other})
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestDelete_NotFound(t *testing.T) {
	m := &repoMock{
		deleteFn: func(ctx context.Context, id uuid.UUID) (bool, error) { return false, nil },
	}
	svc := cardsvc.New(m, &userMock{exists: true})

	err := svc.Delete(context.Background(), uuid.New())
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
