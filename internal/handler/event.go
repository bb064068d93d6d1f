package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
)

// CreateEvent handles POST /v1/events. The caller becomes the event's
// organizer and is the only principal that may later toggle its status.
func (h *LedgerHandler) CreateEvent(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		VenueID     uint64 `json:"venue_id"`
		StartHeight uint64 `json:"start_height"`
		EndHeight   uint64 `json:"end_height"`
		TotalSeats  uint64 `json:"total_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Ledger.CreateEvent(c.Request().Context(), caller, ledger.CreateEventInput{
		Name:        strings.TrimSpace(body.Name),
		Description: body.Description,
		VenueID:     body.VenueID,
		StartHeight: body.StartHeight,
		EndHeight:   body.EndHeight,
		TotalSeats:  body.TotalSeats,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// UpdateEventStatus handles PATCH /v1/events/:id/status. Only the event's
// creating organizer may flip the flag; every other field is preserved.
func (h *LedgerHandler) UpdateEventStatus(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		IsActive *bool `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil || body.IsActive == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_active is required"})
	}

	if err := h.Ledger.UpdateEventStatus(c.Request().Context(), caller, id, *body.IsActive); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "is_active": *body.IsActive})
}

// GetEvent handles GET /v1/events/:id.
func (h *LedgerHandler) GetEvent(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	e, err := h.Ledger.GetEvent(c.Request().Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, toEventResp(e))
}

// GetEventActive handles GET /v1/events/:id/active. The predicate is true
// only for an existing, flagged-active event whose start height is still in
// the future; an unknown id reads as false, not 404.
func (h *LedgerHandler) GetEventActive(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	active, err := h.Ledger.IsEventActive(c.Request().Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "active": active})
}
