package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// MemStore is an in-memory Store. It backs the ledger tests and lets the
// server run without MySQL (APP_ENV=dev with DB_HOST unset); nothing
// survives a restart.
type MemStore struct {
	mu         sync.RWMutex
	organizers map[string]model.Organizer
	venues     map[uint64]model.Venue
	events     map[uint64]model.Event
	categories map[uint64]model.SeatCategory
	byEvent    map[uint64][]uint64 // event id -> category ids, insertion order

	venueSeq    uint64
	eventSeq    uint64
	categorySeq uint64
}

// NewMemStore returns an empty in-memory store with all counters at zero.
func NewMemStore() *MemStore {
	return &MemStore{
		organizers: make(map[string]model.Organizer),
		venues:     make(map[uint64]model.Venue),
		events:     make(map[uint64]model.Event),
		categories: make(map[uint64]model.SeatCategory),
		byEvent:    make(map[uint64][]uint64),
	}
}

func (s *MemStore) GetOrganizer(_ context.Context, principal string) (model.Organizer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.organizers[principal]
	if !ok {
		return model.Organizer{}, ErrNoRecord
	}
	return o, nil
}

func (s *MemStore) PutOrganizer(_ context.Context, o model.Organizer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.organizers[o.Principal]; ok {
		existing.Active = o.Active
		s.organizers[o.Principal] = existing
		return nil
	}
	o.CreatedAt = time.Now().UTC()
	s.organizers[o.Principal] = o
	return nil
}

func (s *MemStore) InsertVenue(_ context.Context, v *model.Venue) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venueSeq++
	v.ID = s.venueSeq
	v.CreatedAt = time.Now().UTC()
	s.venues[v.ID] = *v
	return v.ID, nil
}

func (s *MemStore) GetVenue(_ context.Context, id uint64) (model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.venues[id]
	if !ok {
		return model.Venue{}, ErrNoRecord
	}
	return v, nil
}

func (s *MemStore) InsertEvent(_ context.Context, e *model.Event) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventSeq++
	e.ID = s.eventSeq
	e.CreatedAt = time.Now().UTC()
	s.events[e.ID] = *e
	return e.ID, nil
}

func (s *MemStore) GetEvent(_ context.Context, id uint64) (model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return model.Event{}, ErrNoRecord
	}
	return e, nil
}

func (s *MemStore) SetEventActive(_ context.Context, id uint64, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return ErrNoRecord
	}
	e.IsActive = active
	s.events[id] = e
	return nil
}

// InsertCategory stores the category and debits the parent event's pool
// under one lock acquisition, so both writes become visible together.
func (s *MemStore) InsertCategory(_ context.Context, c *model.SeatCategory) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[c.EventID]
	if !ok {
		return 0, ErrNoRecord
	}
	if c.TotalSeats > e.AvailableSeats {
		return 0, ErrInvalidArgument
	}
	s.categorySeq++
	c.ID = s.categorySeq
	c.CreatedAt = time.Now().UTC()
	s.categories[c.ID] = *c
	s.byEvent[c.EventID] = append(s.byEvent[c.EventID], c.ID)
	e.AvailableSeats -= c.TotalSeats
	s.events[c.EventID] = e
	return c.ID, nil
}

func (s *MemStore) GetCategory(_ context.Context, id uint64) (model.SeatCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	if !ok {
		return model.SeatCategory{}, ErrNoRecord
	}
	return c, nil
}

func (s *MemStore) DebitCategory(_ context.Context, id uint64, seats uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.categories[id]
	if !ok {
		return ErrNoRecord
	}
	if seats > c.AvailableSeats {
		return ErrInvalidArgument
	}
	c.AvailableSeats -= seats
	s.categories[id] = c
	return nil
}

func (s *MemStore) ListEventCategories(_ context.Context, eventID uint64) ([]model.SeatCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.byEvent[eventID]
	out := make([]model.SeatCategory, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.categories[id])
	}
	return out, nil
}
