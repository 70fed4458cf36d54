package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	instancesvc "librental/service/instance"
)

type InstanceController struct {
	Svc instancesvc.Service
	Log *slog.Logger
}

// POST /instances
func (h *InstanceController) Create(c echo.Context) error {
	var req model.CreateInstanceReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	i, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("instance create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, i)
}

// GET /instances/:id
func (h *InstanceController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	i, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, i)
}

// PATCH /instances/:id
func (h *InstanceController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchInstanceReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "invalid fields")
	}

	i, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("instance update", "err", err, "instance_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, i)
}

// DELETE /instances/:id
func (h *InstanceController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
