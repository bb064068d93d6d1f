package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health answers liveness probes. It deliberately touches no backing
// store; a database outage surfaces through the ledger routes, not here.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
