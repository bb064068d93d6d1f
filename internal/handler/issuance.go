package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/queue"
	queue_publisher "github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/service"
)

// IssuanceHandler serves the hook the external ticket-issuance collaborator
// calls when tickets are sold. The route is gated by the issuer capability
// token at the middleware layer; this handler only does the bookkeeping.
type IssuanceHandler struct {
	Ledger *ledger.Ledger
	// Publish sends the after-the-fact sale event. Failures are logged by
	// the publisher and ignored here; the sale is already committed.
	Publish func(ctx context.Context, ev queue.SeatsSoldEvent) error
}

// NewIssuanceHandler wires the handler to the ledger and the RabbitMQ
// publisher.
func NewIssuanceHandler(l *ledger.Ledger) *IssuanceHandler {
	if l == nil {
		panic("nil ledger passed to NewIssuanceHandler")
	}
	return &IssuanceHandler{Ledger: l, Publish: queue_publisher.PublishSeatsSold}
}

// SellSeats handles POST /v1/categories/:id/sell, deducting sold seats from
// the category's pool. The parent event's pool is untouched; it was debited
// when the category was created.
func (h *IssuanceHandler) SellSeats(c echo.Context) error {
	id, ok := paramID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		SeatsSold uint64 `json:"seats_sold"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	// The returned record is the post-sale snapshot taken under the
	// ledger lock; a re-read here could already include a later sale.
	sc, err := h.Ledger.UpdateSeatAvailability(ctx, id, body.SeatsSold)
	if err != nil {
		return ledgerError(c, err)
	}
	if h.Publish != nil {
		_ = h.Publish(ctx, queue.SeatsSoldEvent{
			CategoryID:     sc.ID,
			EventID:        sc.EventID,
			CategoryName:   sc.Name,
			SeatsSold:      body.SeatsSold,
			AvailableSeats: sc.AvailableSeats,
			PriceCents:     sc.PriceCents,
			SoldAt:         time.Now().UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, toCategoryResp(sc))
}
