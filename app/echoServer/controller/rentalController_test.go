package controller_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"librental/app/echoServer/controller"
	"librental/app/echoServer/validation"
	"librental/model"
	rentalsvc "librental/service/rental"
	"librental/util/apperr"
)

type svcMock struct {
	createFn func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*model.Rental, error)
	updateFn func(ctx context.Context, id uuid.UUID, req model.PatchRentalReq) (*model.Rental, error)
}

var _ rentalsvc.Service = (*svcMock)(nil)

func (m *svcMock) Create(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
	return m.createFn(ctx, req)
}
func (m *svcMock) Get(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
	return m.getFn(ctx, id)
}
func (m *svcMock) Update(ctx context.Context, id uuid.UUID, req model.PatchRentalReq) (*model.Rental, error) {
	return m.updateFn(ctx, id, req)
}

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = validation.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRentalCreate_Success(t *testing.T) {
	userID, pubID := uuid.New(), uuid.New()
	m := &svcMock{
		createFn: func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
			require.Equal(t, userID, req.UserID)
			require.Equal(t, 7, req.Duration)
			start := model.Today()
			return &model.Rental{
				ID:        uuid.New(),
				UserID:    req.UserID,
				Duration:  req.Duration,
				StartDate: start,
				EndDate:   start.AddDays(req.Duration),
				Status:    model.RentalActive,
			}, nil
		},
	}
	h := &controller.RentalController{Svc: m, Log: discardLogger()}

	body := `{"user_id":"` + userID.String() + `","publication_id":"` + pubID.String() + `","duration":7}`
	c, rec := newContext(t, http.MethodPost, "/rentals", body)

	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"active"`)
}

func TestRentalCreate_BadJSON(t *testing.T) {
	h := &controller.RentalController{Svc: &svcMock{}, Log: discardLogger()}

	c, rec := newContext(t, http.MethodPost, "/rentals", `{"user_id":`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalCreate_MissingFields(t *testing.T) {
	h := &controller.RentalController{Svc: &svcMock{}, Log: discardLogger()}

	// No duration; validation rejects before the service is called.
	c, rec := newContext(t, http.MethodPost, "/rentals",
		`{"user_id":"`+uuid.NewString()+`","publication_id":"`+uuid.NewString()+`"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "missing required information")
}

func TestRentalCreate_QueueBlocked(t *testing.T) {
	m := &svcMock{
		createFn: func(ctx context.Context, req model.CreateRentalReq) (*model.Rental, error) {
			return nil, apperr.New(apperr.CodeQueueBlocked, "reserved for queued users")
		},
	}
	h := &controller.RentalController{Svc: m, Log: discardLogger()}

	body := `{"user_id":"` + uuid.NewString() + `","publication_id":"` + uuid.NewString() + `","duration":7}`
	c, rec := newContext(t, http.MethodPost, "/rentals", body)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "reserved by earlier requests")
}

func TestRentalGet_InvalidID(t *testing.T) {
	h := &controller.RentalController{Svc: &svcMock{}, Log: discardLogger()}

	c, rec := newContext(t, http.MethodGet, "/rentals/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalGet_NotFound(t *testing.T) {
	m := &svcMock{
		getFn: func(ctx context.Context, id uuid.UUID) (*model.Rental, error) {
			return nil, apperr.New(apperr.CodeNotFound, "rental not found")
		},
	}
	h := &controller.RentalController{Svc: m, Log: discardLogger()}

	id := uuid.NewString()
	c, rec := newContext(t, http.MethodGet, "/rentals/"+id, "")
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRentalUpdate_InternalErrorMasked(t *testing.T) {
	m := &svcMock{
		updateFn: func(ctx context.Context, id uuid.UUID, req model.PatchRentalReq) (*model.Rental, error) {
			return nil, context.DeadlineExceeded
		},
	}
	h := &controller.RentalController{Svc: m, Log: discardLogger()}

	id := uuid.NewString()
	c, rec := newContext(t, http.MethodPatch, "/rentals/"+id, `{"duration":10}`)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "internal error")
	require.NotContains(t, rec.Body.String(), "deadline")
}
