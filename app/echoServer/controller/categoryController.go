package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	categorysvc "librental/service/category"
)

type CategoryController struct {
	Svc categorysvc.Service
	Log *slog.Logger
}

// POST /categories
func (h *CategoryController) Create(c echo.Context) error {
	var req model.CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	cat, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("category create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, cat)
}

// GET /categories/:id
func (h *CategoryController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	cat, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

// PATCH /categories/:id
func (h *CategoryController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchCategoryReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}

	cat, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("category update", "err", err, "category_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, cat)
}

// DELETE /categories/:id
func (h *CategoryController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
