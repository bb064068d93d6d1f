package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// LedgerHandler bundles the ledger for the registry, venue, event and
// seat-category endpoints.
type LedgerHandler struct {
	Ledger *ledger.Ledger
}

// NewLedgerHandler constructs a LedgerHandler and panics on a nil ledger.
func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	if l == nil {
		panic("nil ledger passed to NewLedgerHandler")
	}
	return &LedgerHandler{Ledger: l}
}

// paramID parses a numeric path parameter.
func paramID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ----- response DTOs -----

type venueResp struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity uint64 `json:"capacity"`
	Active   bool   `json:"active"`
}

func toVenueResp(v model.Venue) venueResp {
	return venueResp{ID: v.ID, Name: v.Name, Location: v.Location, Capacity: v.Capacity, Active: v.Active}
}

type eventResp struct {
	ID             uint64 `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	VenueID        uint64 `json:"venue_id"`
	StartHeight    uint64 `json:"start_height"`
	EndHeight      uint64 `json:"end_height"`
	Organizer      string `json:"organizer"`
	TotalSeats     uint64 `json:"total_seats"`
	AvailableSeats uint64 `json:"available_seats"`
	IsActive       bool   `json:"is_active"`
}

func toEventResp(e model.Event) eventResp {
	return eventResp{
		ID: e.ID, Name: e.Name, Description: e.Description, VenueID: e.VenueID,
		StartHeight: e.StartHeight, EndHeight: e.EndHeight, Organizer: e.Organizer,
		TotalSeats: e.TotalSeats, AvailableSeats: e.AvailableSeats, IsActive: e.IsActive,
	}
}

type categoryResp struct {
	ID             uint64 `json:"id"`
	EventID        uint64 `json:"event_id"`
	Name           string `json:"name"`
	PriceCents     uint64 `json:"price_cents"`
	TotalSeats     uint64 `json:"total_seats"`
	AvailableSeats uint64 `json:"available_seats"`
	Active         bool   `json:"active"`
}

func toCategoryResp(sc model.SeatCategory) categoryResp {
	return categoryResp{
		ID: sc.ID, EventID: sc.EventID, Name: sc.Name, PriceCents: sc.PriceCents,
		TotalSeats: sc.TotalSeats, AvailableSeats: sc.AvailableSeats, Active: sc.Active,
	}
}
