// Package ledger implements the core record-keeping state machine: the
// access registry, venue catalog, event catalog and seat-category ledger.
// All mutations are attributed to an explicit caller principal and run
// behind a single serialization point, so cross-record invariants (event
// availability vs. category totals) hold under concurrent use.
package ledger

import "errors"

// The four failure classes every operation reports. Handlers translate
// ErrUnauthorized to 403, ErrNotFound to 404 and both ErrInvalidState and
// ErrInvalidArgument to 400; the latter two stay distinct values so Go
// callers can still tell "bad input" from "object not ready".
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrInvalidState    = errors.New("invalid state")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ErrNoRecord is the sentinel a Store returns for an absent row. The ledger
// maps it to ErrNotFound (or a false boolean for the predicate accessors)
// before it reaches callers.
var ErrNoRecord = errors.New("no record")
