package ledger

import (
	"context"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// Store is the persistence boundary of the ledger. Implementations must
// satisfy two contracts beyond plain CRUD:
//
//   - Insert methods allocate the record's id from a per-entity monotonic
//     counter (starting at 1) as one indivisible read-increment-store, so a
//     rejected call never burns an id.
//   - InsertCategory must persist the new category and debit the parent
//     event's available pool as one atomic unit; no observer may see one
//     write without the other.
//
// Getters return ErrNoRecord for absent rows.
type Store interface {
	GetOrganizer(ctx context.Context, principal string) (model.Organizer, error)
	PutOrganizer(ctx context.Context, o model.Organizer) error

	InsertVenue(ctx context.Context, v *model.Venue) (uint64, error)
	GetVenue(ctx context.Context, id uint64) (model.Venue, error)

	InsertEvent(ctx context.Context, e *model.Event) (uint64, error)
	GetEvent(ctx context.Context, id uint64) (model.Event, error)
	SetEventActive(ctx context.Context, id uint64, active bool) error

	InsertCategory(ctx context.Context, c *model.SeatCategory) (uint64, error)
	GetCategory(ctx context.Context, id uint64) (model.SeatCategory, error)
	DebitCategory(ctx context.Context, id uint64, seats uint64) error
	ListEventCategories(ctx context.Context, eventID uint64) ([]model.SeatCategory, error)
}
