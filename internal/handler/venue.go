package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
)

// CreateVenue handles POST /v1/venues and registers a new venue for the
// authenticated organizer.
func (h *LedgerHandler) CreateVenue(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var body struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Capacity uint64 `json:"capacity"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	// Blank names are the ledger's call to reject, after authorization.
	name := strings.TrimSpace(body.Name)

	id, err := h.Ledger.RegisterVenue(c.Request().Context(), caller, name, body.Location, body.Capacity)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetVenue handles GET /v1/venues/:id. Pure lookup, no authorization.
func (h *LedgerHandler) GetVenue(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	v, err := h.Ledger.GetVenue(c.Request().Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, toVenueResp(v))
}
