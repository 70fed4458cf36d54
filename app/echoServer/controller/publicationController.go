package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	pubsvc "librental/service/publication"
)

type PublicationController struct {
	Svc pubsvc.Service
	Log *slog.Logger
}

// POST /publications
func (h *PublicationController) Create(c echo.Context) error {
	var req model.CreatePublicationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	p, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("publication create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

// GET /publications/:id
func (h *PublicationController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	p, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// PATCH /publications/:id
func (h *PublicationController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchPublicationReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	p, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("publication update", "err", err, "publication_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// DELETE /publications/:id
func (h *PublicationController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("publication delete", "err", err, "publication_id", id)
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
