package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthGet reports that the server is up.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
