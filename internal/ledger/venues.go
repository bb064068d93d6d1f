package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// RegisterVenue records a new venue and returns its id. Only active
// organizers may register venues. A capacity of zero is accepted; the
// ceiling simply makes any event on the venue unsellable.
func (l *Ledger) RegisterVenue(ctx context.Context, caller, name, location string, capacity uint64) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOrganizer(ctx, caller); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("venue name is empty: %w", ErrInvalidArgument)
	}
	if len(name) > MaxNameLen {
		return 0, fmt.Errorf("venue name exceeds %d bytes: %w", MaxNameLen, ErrInvalidArgument)
	}
	if len(location) > MaxLocationLen {
		return 0, fmt.Errorf("venue location exceeds %d bytes: %w", MaxLocationLen, ErrInvalidArgument)
	}

	v := model.Venue{
		Name:     name,
		Location: location,
		Capacity: capacity,
		Active:   true,
	}
	return l.store.InsertVenue(ctx, &v)
}

// GetVenue returns the venue record, or ErrNotFound when the id is unknown.
// No authorization is required.
func (l *Ledger) GetVenue(ctx context.Context, id uint64) (model.Venue, error) {
	v, err := l.store.GetVenue(ctx, id)
	if errors.Is(err, ErrNoRecord) {
		return model.Venue{}, fmt.Errorf("venue %d: %w", id, ErrNotFound)
	}
	return v, err
}
