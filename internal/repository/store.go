// Package repository contains data access logic separated from HTTP
// handlers. Store implements ledger.Store on MySQL: every insert runs in a
// transaction that also advances the entity's row in the counters table, so
// ids are allocated read-increment-store and only when the insert commits.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/ledger"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// Counter names in the counters table, one per entity type.
const (
	counterVenue    = "venue"
	counterEvent    = "event"
	counterCategory = "seat_category"
)

// Store provides MySQL-backed persistence for the ledger.
type Store struct {
	db *sql.DB
}

// NewStore constructs a Store with the provided DB handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// nextID advances the named counter inside tx and returns the new value.
// The FOR UPDATE read keeps the read-increment-store indivisible even
// against writers outside this process.
func nextID(ctx context.Context, tx *sql.Tx, name string) (uint64, error) {
	var cur uint64
	err := tx.QueryRowContext(ctx,
		"SELECT value FROM counters WHERE name = ? FOR UPDATE", name).Scan(&cur)
	if err != nil {
		return 0, fmt.Errorf("read counter %s: %w", name, err)
	}
	id := cur + 1
	if _, err := tx.ExecContext(ctx,
		"UPDATE counters SET value = ? WHERE name = ?", id, name); err != nil {
		return 0, fmt.Errorf("advance counter %s: %w", name, err)
	}
	return id, nil
}

func (s *Store) GetOrganizer(ctx context.Context, principal string) (model.Organizer, error) {
	var o model.Organizer
	err := s.db.QueryRowContext(ctx,
		"SELECT principal, is_active, created_at FROM organizers WHERE principal = ?",
		principal).Scan(&o.Principal, &o.Active, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Organizer{}, ledger.ErrNoRecord
	}
	return o, err
}

func (s *Store) PutOrganizer(ctx context.Context, o model.Organizer) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO organizers (principal, is_active) VALUES (?, ?) ON DUPLICATE KEY UPDATE is_active = VALUES(is_active)",
		o.Principal, o.Active)
	return err
}

func (s *Store) InsertVenue(ctx context.Context, v *model.Venue) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := nextID(ctx, tx, counterVenue)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO venues (id, name, location, capacity, is_active) VALUES (?, ?, ?, ?, ?)",
		id, v.Name, v.Location, v.Capacity, v.Active); err != nil {
		return 0, err
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM venues WHERE id = ?", id).Scan(&v.CreatedAt); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	v.ID = id
	return id, nil
}

func (s *Store) GetVenue(ctx context.Context, id uint64) (model.Venue, error) {
	var v model.Venue
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, location, capacity, is_active, created_at FROM venues WHERE id = ?",
		id).Scan(&v.ID, &v.Name, &v.Location, &v.Capacity, &v.Active, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Venue{}, ledger.ErrNoRecord
	}
	return v, err
}

func (s *Store) InsertEvent(ctx context.Context, e *model.Event) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := nextID(ctx, tx, counterEvent)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO events
		   (id, name, description, venue_id, start_height, end_height, organizer, total_seats, available_seats, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Name, e.Description, e.VenueID, e.StartHeight, e.EndHeight,
		e.Organizer, e.TotalSeats, e.AvailableSeats, e.IsActive); err != nil {
		return 0, err
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM events WHERE id = ?", id).Scan(&e.CreatedAt); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

func (s *Store) GetEvent(ctx context.Context, id uint64) (model.Event, error) {
	var e model.Event
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, description, venue_id, start_height, end_height, organizer,
		        total_seats, available_seats, is_active, created_at
		 FROM events WHERE id = ?`, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.VenueID, &e.StartHeight, &e.EndHeight,
		&e.Organizer, &e.TotalSeats, &e.AvailableSeats, &e.IsActive, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Event{}, ledger.ErrNoRecord
	}
	return e, err
}

func (s *Store) SetEventActive(ctx context.Context, id uint64, active bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE events SET is_active = ? WHERE id = ?", active, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// n is 0 both for a missing row and for a no-op flag write; re-check.
	if n == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM events WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ledger.ErrNoRecord
		}
	}
	return nil
}

// InsertCategory persists the category and debits the parent event's pool
// in one transaction. The guarded UPDATE keeps the pool non-negative even
// if a writer outside the ledger's serialization point races us.
func (s *Store) InsertCategory(ctx context.Context, c *model.SeatCategory) (uint64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	id, err := nextID(ctx, tx, counterCategory)
	if err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO seat_categories
		   (id, event_id, name, price_cents, total_seats, available_seats, is_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, c.EventID, c.Name, c.PriceCents, c.TotalSeats, c.AvailableSeats, c.Active); err != nil {
		return 0, err
	}
	// A zero-seat category debits nothing; the UPDATE would change no
	// column and the driver would report 0 affected rows, same as a
	// failed guard. Skip it instead of misreading that as a rejection.
	if c.TotalSeats > 0 {
		res, err := tx.ExecContext(ctx,
			"UPDATE events SET available_seats = available_seats - ? WHERE id = ? AND available_seats >= ?",
			c.TotalSeats, c.EventID, c.TotalSeats)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, fmt.Errorf("event %d cannot cover %d seats: %w", c.EventID, c.TotalSeats, ledger.ErrInvalidArgument)
		}
	}
	if err := tx.QueryRowContext(ctx,
		"SELECT created_at FROM seat_categories WHERE id = ?", id).Scan(&c.CreatedAt); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (s *Store) GetCategory(ctx context.Context, id uint64) (model.SeatCategory, error) {
	var c model.SeatCategory
	err := s.db.QueryRowContext(ctx,
		`SELECT id, event_id, name, price_cents, total_seats, available_seats, is_active, created_at
		 FROM seat_categories WHERE id = ?`, id).Scan(
		&c.ID, &c.EventID, &c.Name, &c.PriceCents, &c.TotalSeats, &c.AvailableSeats, &c.Active, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return model.SeatCategory{}, ledger.ErrNoRecord
	}
	return c, err
}

func (s *Store) DebitCategory(ctx context.Context, id uint64, seats uint64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE seat_categories SET available_seats = available_seats - ? WHERE id = ? AND available_seats >= ?",
		seats, id, seats)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 && seats > 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM seat_categories WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ledger.ErrNoRecord
		}
		return fmt.Errorf("category %d cannot cover %d seats: %w", id, seats, ledger.ErrInvalidArgument)
	}
	return nil
}

// ListEventCategories walks the idx_seat_categories_event index in id order.
func (s *Store) ListEventCategories(ctx context.Context, eventID uint64) ([]model.SeatCategory, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, name, price_cents, total_seats, available_seats, is_active, created_at
		 FROM seat_categories WHERE event_id = ? ORDER BY id`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.SeatCategory, 0)
	for rows.Next() {
		var c model.SeatCategory
		if err := rows.Scan(&c.ID, &c.EventID, &c.Name, &c.PriceCents,
			&c.TotalSeats, &c.AvailableSeats, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
