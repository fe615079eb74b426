package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Hello, world!")
}

func Health(c echo.Context) error {
	return WriteJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
