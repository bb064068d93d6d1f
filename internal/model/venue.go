package model

import "time"

// Venue describes a physical or virtual location events can be scheduled
// at. The capacity acts as the ceiling for any event created on the venue
// and is fixed at registration time; no operation mutates it afterwards.
//
// Fields:
//  ID        – monotonically assigned identifier, starting at 1.
//  Name      – human-friendly venue name.
//  Location  – free-form address or description of where the venue is.
//  Capacity  – maximum number of seats an event at this venue may sell.
//  Active    – whether events may still be created at this venue.
//  CreatedAt – timestamp of registration.
type Venue struct {
	ID        uint64    // venues.id
	Name      string    // venues.name
	Location  string    // venues.location
	Capacity  uint64    // venues.capacity
	Active    bool      // venues.is_active
	CreatedAt time.Time // venues.created_at
}
