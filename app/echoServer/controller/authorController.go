package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	authorsvc "librental/service/author"
)

type AuthorController struct {
	Svc authorsvc.Service
	Log *slog.Logger
}

// POST /authors
func (h *AuthorController) Create(c echo.Context) error {
	var req model.CreateAuthorReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	a, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("author create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, a)
}

// GET /authors/:id
func (h *AuthorController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	a, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// PATCH /authors/:id
func (h *AuthorController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchAuthorReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	a, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("author update", "err", err, "author_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// DELETE /authors/:id
func (h *AuthorController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
