package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"librental/util/apperr"
)

func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

func badID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
}

func badBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
}

// fail maps a service error to its response through the apperr taxonomy.
func fail(c echo.Context, err error) error {
	return c.JSON(apperr.Status(err), echo.Map{"message": apperr.Message(err)})
}
