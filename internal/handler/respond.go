package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
)

// ledgerError translates the ledger's failure classes into HTTP responses:
// 403 for authorization failures, 404 for unknown ids, 400 for both invalid
// arguments and invalid state (externally indistinguishable, matching the
// numeric codes the API promises).
func ledgerError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, ledger.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, ledger.ErrInvalidArgument), errors.Is(err, ledger.ErrInvalidState):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
