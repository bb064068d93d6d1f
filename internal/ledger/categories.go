package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// CreateCategoryInput carries the attributes of a new seat category.
type CreateCategoryInput struct {
	EventID    uint64
	Name       string
	PriceCents uint64
	TotalSeats uint64
}

// CreateSeatCategory carves a priced category out of an event's available
// pool and returns the category id. Any active organizer may do this for
// any active event; unlike UpdateEventStatus, ownership of the event is not
// checked. The category insert and the event-pool debit are persisted as
// one atomic unit.
func (l *Ledger) CreateSeatCategory(ctx context.Context, caller string, in CreateCategoryInput) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOrganizer(ctx, caller); err != nil {
		return 0, err
	}

	event, err := l.store.GetEvent(ctx, in.EventID)
	if errors.Is(err, ErrNoRecord) {
		return 0, fmt.Errorf("event %d: %w", in.EventID, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	if !event.IsActive {
		return 0, fmt.Errorf("event %d is inactive: %w", in.EventID, ErrInvalidState)
	}

	if in.Name == "" {
		return 0, fmt.Errorf("category name is empty: %w", ErrInvalidArgument)
	}
	if len(in.Name) > MaxCategoryNameLen {
		return 0, fmt.Errorf("category name exceeds %d bytes: %w", MaxCategoryNameLen, ErrInvalidArgument)
	}
	if in.TotalSeats > event.AvailableSeats {
		return 0, fmt.Errorf("category seats %d exceed event availability %d: %w", in.TotalSeats, event.AvailableSeats, ErrInvalidArgument)
	}

	c := model.SeatCategory{
		EventID:        in.EventID,
		Name:           in.Name,
		PriceCents:     in.PriceCents,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: in.TotalSeats,
		Active:         true,
	}
	return l.store.InsertCategory(ctx, &c)
}

// UpdateSeatAvailability records seatsSold tickets as sold from the
// category's pool and returns the record as it stands after this sale,
// taken under the same lock so a concurrent sale cannot leak into it. It
// is meant to be called only by the ticket-issuance collaborator; the
// transport layer gates it behind a capability token. The parent event's
// pool is untouched: it was already debited when the category was created.
func (l *Ledger) UpdateSeatAvailability(ctx context.Context, categoryID, seatsSold uint64) (model.SeatCategory, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, err := l.store.GetCategory(ctx, categoryID)
	if errors.Is(err, ErrNoRecord) {
		return model.SeatCategory{}, fmt.Errorf("seat category %d: %w", categoryID, ErrNotFound)
	}
	if err != nil {
		return model.SeatCategory{}, err
	}
	if !c.Active {
		return model.SeatCategory{}, fmt.Errorf("seat category %d is inactive: %w", categoryID, ErrInvalidState)
	}
	if seatsSold > c.AvailableSeats {
		return model.SeatCategory{}, fmt.Errorf("sold %d exceeds %d available: %w", seatsSold, c.AvailableSeats, ErrInvalidArgument)
	}
	if err := l.store.DebitCategory(ctx, categoryID, seatsSold); err != nil {
		return model.SeatCategory{}, err
	}
	c.AvailableSeats -= seatsSold
	return c, nil
}

// GetSeatCategory returns the category record, or ErrNotFound when the id
// is unknown.
func (l *Ledger) GetSeatCategory(ctx context.Context, id uint64) (model.SeatCategory, error) {
	c, err := l.store.GetCategory(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return model.SeatCategory{}, fmt.Errorf("seat category %d: %w", id, ErrNotFound)
	}
	return c, err
}

// GetEventCategories lists every category carved out of the event, backed
// by the store's event-id index. An event with no categories (or an unknown
// event id) yields an empty slice.
func (l *Ledger) GetEventCategories(ctx context.Context, eventID uint64) ([]model.SeatCategory, error) {
	return l.store.ListEventCategories(ctx, eventID)
}
