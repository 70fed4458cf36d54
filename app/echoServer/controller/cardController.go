package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	cardsvc "librental/service/card"
)

type CardController struct {
	Svc cardsvc.Service
	Log *slog.Logger
}

// POST /cards
func (h *CardController) Create(c echo.Context) error {
	var req model.CreateCardReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	card, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("card create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

// GET /cards/:id
func (h *CardController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	card, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

// PATCH /cards/:id
func (h *CardController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchCardReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "invalid fields")
	}

	card, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("card update", "err", err, "card_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, card)
}

// DELETE /cards/:id
func (h *CardController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
