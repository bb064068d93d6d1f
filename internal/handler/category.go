package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/middleware"
)

// CreateCategory handles POST /v1/events/:id/categories. Any active
// organizer may carve a category out of any active event; the event pool
// debit happens atomically with the insert.
func (h *LedgerHandler) CreateCategory(c echo.Context) error {
	caller := middleware.Principal(c)
	if caller == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	eventID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Name       string `json:"name"`
		PriceCents uint64 `json:"price_cents"`
		TotalSeats uint64 `json:"total_seats"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	id, err := h.Ledger.CreateSeatCategory(c.Request().Context(), caller, ledger.CreateCategoryInput{
		EventID:    eventID,
		Name:       strings.TrimSpace(body.Name),
		PriceCents: body.PriceCents,
		TotalSeats: body.TotalSeats,
	})
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// GetCategory handles GET /v1/categories/:id.
func (h *LedgerHandler) GetCategory(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	sc, err := h.Ledger.GetSeatCategory(c.Request().Context(), id)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResp(sc))
}

// ListEventCategories handles GET /v1/events/:id/categories, returning
// every category of the event in creation order.
func (h *LedgerHandler) ListEventCategories(c echo.Context) error {
	eventID, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cats, err := h.Ledger.GetEventCategories(c.Request().Context(), eventID)
	if err != nil {
		return ledgerError(c, err)
	}
	out := make([]categoryResp, 0, len(cats))
	for _, sc := range cats {
		out = append(out, toCategoryResp(sc))
	}
	return c.JSON(http.StatusOK, out)
}
