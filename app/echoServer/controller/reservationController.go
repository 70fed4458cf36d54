package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	reservationsvc "librental/service/reservation"
)

type ReservationController struct {
	Svc reservationsvc.Service
	Log *slog.Logger
}

// POST /reservations
func (h *ReservationController) Create(c echo.Context) error {
	var req model.CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	res, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("reservation create", "err", err, "user_id", req.UserID)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// GET /reservations/:id
func (h *ReservationController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	res, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// DELETE /reservations/:id
func (h *ReservationController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
