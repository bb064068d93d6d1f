package model

import "time"

// Organizer represents an entry in the access registry. A principal with
// an active entry is allowed to perform privileged mutations (registering
// venues, creating events, carving seat categories). Entries are only ever
// written as active; there is no deactivation path.
//
// Fields:
//  Principal – opaque identity of the caller as authenticated upstream.
//  Active    – whether the principal currently counts as an organizer.
//  CreatedAt – timestamp of the first registration.
type Organizer struct {
	Principal string    // organizers.principal
	Active    bool      // organizers.is_active
	CreatedAt time.Time // organizers.created_at
}
