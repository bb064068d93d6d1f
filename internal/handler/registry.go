package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
)

// InitializeRegistry handles POST /v1/registry/initialize. It registers the
// calling principal as an active organizer; the very first caller after
// deployment bootstraps the registry this way. Calling it again just
// re-asserts the record.
func (h *LedgerHandler) InitializeRegistry(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := h.Ledger.Initialize(c.Request().Context(), caller); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"principal": caller, "active": true})
}

// AddOrganizer handles POST /v1/registry/organizers. The caller must be an
// active organizer; the target principal is upserted as active.
func (h *LedgerHandler) AddOrganizer(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Principal string `json:"principal"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Ledger.AddOrganizer(c.Request().Context(), caller, body.Principal); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"principal": body.Principal, "active": true})
}

// GetOrganizer handles GET /v1/registry/organizers/:principal. Absent
// entries read as inactive rather than 404, mirroring the registry
// predicate.
func (h *LedgerHandler) GetOrganizer(c echo.Context) error {
	principal := c.Param("principal")
	active, err := h.Ledger.IsOrganizer(c.Request().Context(), principal)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"principal": principal, "active": active})
}
