package model

import "time"

// Event is a ticketed happening scheduled at a venue. Total seats are fixed
// at creation (and bounded by the venue capacity); AvailableSeats is the
// still-unsubdivided pool and only ever shrinks as seat categories are
// carved out of it. The start and end of the event are expressed as block
// heights, comparable against the current chain height.
//
// Fields:
//  ID             – monotonically assigned identifier, starting at 1.
//  Name           – event title.
//  Description    – longer free-form description.
//  VenueID        – venue the event is scheduled at.
//  StartHeight    – block height at which the event begins (strictly in the
//                   future at creation time).
//  EndHeight      – block height at which the event ends (after StartHeight).
//  Organizer      – principal that created the event; only this principal
//                   may toggle IsActive.
//  TotalSeats     – full seating inventory, never mutated.
//  AvailableSeats – seats not yet assigned to a category; TotalSeats at
//                   creation, decremented on each category creation.
//  IsActive       – organizer-controlled flag gating category creation.
//  CreatedAt      – timestamp of creation.
type Event struct {
	ID             uint64    // events.id
	Name           string    // events.name
	Description    string    // events.description
	VenueID        uint64    // events.venue_id
	StartHeight    uint64    // events.start_height
	EndHeight      uint64    // events.end_height
	Organizer      string    // events.organizer
	TotalSeats     uint64    // events.total_seats
	AvailableSeats uint64    // events.available_seats
	IsActive       bool      // events.is_active
	CreatedAt      time.Time // events.created_at
}
