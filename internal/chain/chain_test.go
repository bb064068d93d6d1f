package chain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, uint64(0), Fixed(0).Height())
	assert.Equal(t, uint64(42), Fixed(42).Height())
}

func TestSystemSource(t *testing.T) {
	t.Run("height counts whole intervals since genesis", func(t *testing.T) {
		src := NewSystem(time.Now().Add(-25*time.Second), 10*time.Second)
		assert.Equal(t, uint64(2), src.Height())
	})

	t.Run("pre-genesis reports zero", func(t *testing.T) {
		src := NewSystem(time.Now().Add(time.Hour), 10*time.Second)
		assert.Equal(t, uint64(0), src.Height())
	})

	t.Run("non-positive interval falls back to the default", func(t *testing.T) {
		src := NewSystem(time.Now().Add(-25*time.Second), 0)
		assert.Equal(t, uint64(2), src.Height())
	})

	t.Run("height never decreases", func(t *testing.T) {
		src := NewSystem(time.Now().Add(-time.Minute), time.Millisecond)
		prev := src.Height()
		for i := 0; i < 100; i++ {
			h := src.Height()
			assert.GreaterOrEqual(t, h, prev)
			prev = h
		}
	})
}
