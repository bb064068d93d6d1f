package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/chain"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

// Bounds on the free-form string attributes of the record types.
const (
	MaxNameLen         = 100
	MaxLocationLen     = 100
	MaxDescriptionLen  = 500
	MaxCategoryNameLen = 50
)

// Ledger exposes the public operations of the four components. One mutex
// serializes all mutating operations; read-only accessors go straight to
// the store, which guarantees per-record snapshot consistency.
type Ledger struct {
	mu    sync.Mutex
	store Store
	chain chain.Source
}

// New builds a Ledger over the given store and chain-height source.
func New(store Store, src chain.Source) *Ledger {
	if store == nil || src == nil {
		panic("ledger: nil store or chain source")
	}
	return &Ledger{store: store, chain: src}
}

// Initialize bootstraps the access registry by registering the calling
// principal as an active organizer. Repeated calls simply re-assert the
// same record; the operation is not guarded against re-invocation.
func (l *Ledger) Initialize(ctx context.Context, caller string) error {
	if caller == "" {
		return fmt.Errorf("empty caller principal: %w", ErrInvalidArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.PutOrganizer(ctx, model.Organizer{Principal: caller, Active: true})
}

// IsOrganizer reports whether the principal has an active registry entry.
// An absent entry is not an error; it just reads as inactive.
func (l *Ledger) IsOrganizer(ctx context.Context, principal string) (bool, error) {
	o, err := l.store.GetOrganizer(ctx, principal)
	if errors.Is(err, ErrNoRecord) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return o.Active, nil
}

// AddOrganizer upserts the target principal as an active organizer. The
// caller must itself be an active organizer.
func (l *Ledger) AddOrganizer(ctx context.Context, caller, target string) error {
	if target == "" {
		return fmt.Errorf("empty target principal: %w", ErrInvalidArgument)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireOrganizer(ctx, caller); err != nil {
		return err
	}
	return l.store.PutOrganizer(ctx, model.Organizer{Principal: target, Active: true})
}

// requireOrganizer is the shared authorization gate. Callers must hold l.mu.
func (l *Ledger) requireOrganizer(ctx context.Context, caller string) error {
	o, err := l.store.GetOrganizer(ctx, caller)
	if errors.Is(err, ErrNoRecord) {
		return fmt.Errorf("principal %q is not an organizer: %w", caller, ErrUnauthorized)
	}
	if err != nil {
		return err
	}
	if !o.Active {
		return fmt.Errorf("principal %q is not an active organizer: %w", caller, ErrUnauthorized)
	}
	return nil
}
