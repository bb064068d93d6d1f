package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// CreateEventInput carries the attributes of a new event. Start and end are
// block heights, not wall-clock times.
type CreateEventInput struct {
	Name        string
	Description string
	VenueID     uint64
	StartHeight uint64
	EndHeight   uint64
	TotalSeats  uint64
}

// CreateEvent records a new event and returns its id. Checks run eagerly in
// a fixed order (authorization, venue existence, venue state, argument
// validity) and the first failure aborts the call with no state change.
func (l *Ledger) CreateEvent(ctx context.Context, caller string, in CreateEventInput) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOrganizer(ctx, caller); err != nil {
		return 0, err
	}

	venue, err := l.store.GetVenue(ctx, in.VenueID)
	if errors.Is(err, ErrNoRecord) {
		return 0, fmt.Errorf("venue %d: %w", in.VenueID, ErrNotFound)
	}
	if err != nil {
		return 0, err
	}
	if !venue.Active {
		return 0, fmt.Errorf("venue %d is inactive: %w", in.VenueID, ErrInvalidState)
	}

	if in.Name == "" {
		return 0, fmt.Errorf("event name is empty: %w", ErrInvalidArgument)
	}
	if len(in.Name) > MaxNameLen {
		return 0, fmt.Errorf("event name exceeds %d bytes: %w", MaxNameLen, ErrInvalidArgument)
	}
	if len(in.Description) > MaxDescriptionLen {
		return 0, fmt.Errorf("event description exceeds %d bytes: %w", MaxDescriptionLen, ErrInvalidArgument)
	}
	if in.TotalSeats > venue.Capacity {
		return 0, fmt.Errorf("total seats %d exceed venue capacity %d: %w", in.TotalSeats, venue.Capacity, ErrInvalidArgument)
	}
	if in.EndHeight <= in.StartHeight {
		return 0, fmt.Errorf("end height %d not after start height %d: %w", in.EndHeight, in.StartHeight, ErrInvalidArgument)
	}
	if height := l.chain.Height(); in.StartHeight <= height {
		return 0, fmt.Errorf("start height %d not past current height %d: %w", in.StartHeight, height, ErrInvalidArgument)
	}

	e := model.Event{
		Name:           in.Name,
		Description:    in.Description,
		VenueID:        in.VenueID,
		StartHeight:    in.StartHeight,
		EndHeight:      in.EndHeight,
		Organizer:      caller,
		TotalSeats:     in.TotalSeats,
		AvailableSeats: in.TotalSeats,
		IsActive:       true,
	}
	return l.store.InsertEvent(ctx, &e)
}

// UpdateEventStatus overwrites the event's is-active flag, leaving every
// other field untouched. The caller must be an active organizer and must be
// the organizer who created the event; another valid organizer is rejected
// just like a non-organizer.
func (l *Ledger) UpdateEventStatus(ctx context.Context, caller string, id uint64, active bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOrganizer(ctx, caller); err != nil {
		return err
	}
	e, err := l.store.GetEvent(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}
	if e.Organizer != caller {
		return fmt.Errorf("principal %q did not create event %d: %w", caller, id, ErrUnauthorized)
	}
	return l.store.SetEventActive(ctx, id, active)
}

// GetEvent returns the event record, or ErrNotFound when the id is unknown.
func (l *Ledger) GetEvent(ctx context.Context, id uint64) (model.Event, error) {
	e, err := l.store.GetEvent(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return model.Event{}, fmt.Errorf("event %d: %w", id, ErrNotFound)
	}
	return e, err
}

// IsEventActive reports whether the event exists, its flag is set, and its
// start height is still strictly in the future. An ongoing or finished
// event reads as inactive here even when its flag is true.
func (l *Ledger) IsEventActive(ctx context.Context, id uint64) (bool, error) {
	e, err := l.store.GetEvent(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return e.IsActive && e.StartHeight > l.chain.Height(), nil
}
