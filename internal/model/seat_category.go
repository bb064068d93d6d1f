package model

import "time"

// SeatCategory is a named, priced subdivision of an event's inventory
// (e.g. "VIP", "General Admission"). Creating a category debits the parent
// event's available pool by the category's TotalSeats; selling tickets
// through the issuance hook debits the category's own AvailableSeats and
// never touches the event again.
//
// Category ids come from their own global counter; they are not scoped per
// event.
//
// Fields:
//  ID             – monotonically assigned identifier, starting at 1.
//  EventID        – event this category belongs to.
//  Name           – category label.
//  PriceCents     – ticket price in the smallest currency unit.
//  TotalSeats     – seats allocated to this category, fixed at creation.
//  AvailableSeats – unsold seats, TotalSeats at creation.
//  Active         – whether tickets may still be sold from this category.
//  CreatedAt      – timestamp of creation.
type SeatCategory struct {
	ID             uint64    // seat_categories.id
	EventID        uint64    // seat_categories.event_id
	Name           string    // seat_categories.name
	PriceCents     uint64    // seat_categories.price_cents
	TotalSeats     uint64    // seat_categories.total_seats
	AvailableSeats uint64    // seat_categories.available_seats
	Active         bool      // seat_categories.is_active
	CreatedAt      time.Time // seat_categories.created_at
}
