// Package queue defines message payloads exchanged over the message broker
// and the background consumer that audits them.
package queue

// SeatsSoldEvent is published after the issuance hook successfully debits a
// seat category. It carries enough for downstream consumers to log or
// trigger analytics without querying the primary database.
type SeatsSoldEvent struct {
	CategoryID     uint64 `json:"category_id"`
	EventID        uint64 `json:"event_id"`
	CategoryName   string `json:"category_name"`
	SeatsSold      uint64 `json:"seats_sold"`
	AvailableSeats uint64 `json:"available_seats"`
	PriceCents     uint64 `json:"price_cents"`
	SoldAt         string `json:"sold_at"`
}
