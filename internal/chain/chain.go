// Package chain provides the block-height source used as the time reference
// for "strictly in the future" checks on event dates.
package chain

import "time"

// Source reports the current chain height. Heights only ever grow.
type Source interface {
	Height() uint64
}

type systemSource struct {
	genesis  time.Time
	interval time.Duration
}

// NewSystem returns a Source that derives the height from wall-clock time:
// the number of whole block intervals elapsed since the genesis instant.
// Instants before genesis report height 0.
func NewSystem(genesis time.Time, interval time.Duration) Source {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return systemSource{genesis: genesis.UTC(), interval: interval}
}

func (s systemSource) Height() uint64 {
	elapsed := time.Now().UTC().Sub(s.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / s.interval)
}

// Fixed is a Source pinned to a constant height (useful for tests).
type Fixed uint64

func (f Fixed) Height() uint64 { return uint64(f) }
