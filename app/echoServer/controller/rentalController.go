package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	rentalsvc "librental/service/rental"
	"librental/util/apperr"
)

type RentalController struct {
	Svc rentalsvc.Service
	Log *slog.Logger
}

// POST /rentals
func (h *RentalController) Create(c echo.Context) error {
	var req model.CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	rental, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("rental create", "err", err, "user_id", req.UserID, "publication_id", req.PublicationID)
		switch apperr.CodeOf(err) {
		case apperr.CodeNoAvailableInstance:
			return badRequest(c, "no available instance for publication")
		case apperr.CodeQueueBlocked:
			return badRequest(c, "publication is reserved by earlier requests")
		case apperr.CodeInvalidDuration:
			return badRequest(c, "rental duration cannot exceed 14 days")
		default:
			return fail(c, err)
		}
	}
	return c.JSON(http.StatusCreated, rental)
}

// GET /rentals/:id
func (h *RentalController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	rental, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}

// PATCH /rentals/:id
func (h *RentalController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchRentalReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	rental, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("rental update", "err", err, "rental_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rental)
}
