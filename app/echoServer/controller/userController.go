package controller

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librental/model"
	usersvc "librental/service/user"
)

type UserController struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// POST /users
func (h *UserController) Create(c echo.Context) error {
	var req model.CreateUserReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "missing required information")
	}

	u, err := h.Svc.Create(c.Request().Context(), req)
	if err != nil {
		h.Log.Error("user create", "err", err)
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// GET /users/:id
func (h *UserController) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// PATCH /users/:id
func (h *UserController) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}
	var req model.PatchUserReq
	if err := c.Bind(&req); err != nil {
		return badBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "invalid fields")
	}

	u, err := h.Svc.Update(c.Request().Context(), id, req)
	if err != nil {
		h.Log.Error("user update", "err", err, "user_id", id)
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
