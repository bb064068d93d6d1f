package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/chain"
	"github.com/dulmakkie/Blockchain-Based-Event-Ticketing-System/internal/model"
)

const (
	alice = "alice"
	bob   = "bob"
	carol = "carol"
)

// newLedger returns a ledger over a fresh in-memory store with the chain
// pinned to height 100 and alice bootstrapped as the first organizer.
func newLedger(t *testing.T) (*Ledger, *MemStore) {
	t.Helper()
	store := NewMemStore()
	l := New(store, chain.Fixed(100))
	require.NoError(t, l.Initialize(context.Background(), alice))
	return l, store
}

// validEvent is an input that passes every CreateEvent check at height 100
// against a venue with capacity >= 100.
func validEvent(venueID uint64) CreateEventInput {
	return CreateEventInput{
		Name:        "Launch Party",
		Description: "doors at start height",
		VenueID:     venueID,
		StartHeight: 150,
		EndHeight:   200,
		TotalSeats:  100,
	}
}

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("initialize registers the caller as organizer", func(t *testing.T) {
		l, _ := newLedger(t)
		ok, err := l.IsOrganizer(ctx, alice)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unknown principal reads as inactive, not error", func(t *testing.T) {
		l, _ := newLedger(t)
		ok, err := l.IsOrganizer(ctx, "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("initialize is repeatable", func(t *testing.T) {
		l, _ := newLedger(t)
		require.NoError(t, l.Initialize(ctx, alice))
		ok, err := l.IsOrganizer(ctx, alice)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("organizer can add another organizer", func(t *testing.T) {
		l, _ := newLedger(t)
		require.NoError(t, l.AddOrganizer(ctx, alice, bob))
		ok, err := l.IsOrganizer(ctx, bob)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("non-organizer cannot add organizers", func(t *testing.T) {
		l, _ := newLedger(t)
		err := l.AddOrganizer(ctx, carol, bob)
		assert.ErrorIs(t, err, ErrUnauthorized)

		ok, err := l.IsOrganizer(ctx, bob)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty caller rejected on initialize", func(t *testing.T) {
		l, _ := newLedger(t)
		assert.ErrorIs(t, l.Initialize(ctx, ""), ErrInvalidArgument)
	})
}

func TestRegisterVenue(t *testing.T) {
	ctx := context.Background()

	t.Run("ids start at 1 and increase gaplessly", func(t *testing.T) {
		l, _ := newLedger(t)
		for want := uint64(1); want <= 3; want++ {
			id, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 500)
			require.NoError(t, err)
			assert.Equal(t, want, id)
		}
	})

	t.Run("non-organizer rejected and counter untouched", func(t *testing.T) {
		l, _ := newLedger(t)
		_, err := l.RegisterVenue(ctx, bob, "Hall", "Main St", 500)
		assert.ErrorIs(t, err, ErrUnauthorized)

		id, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 500)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})

	t.Run("zero capacity is accepted", func(t *testing.T) {
		l, _ := newLedger(t)
		id, err := l.RegisterVenue(ctx, alice, "Empty Lot", "Nowhere", 0)
		require.NoError(t, err)

		v, err := l.GetVenue(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, v.Capacity)
		assert.True(t, v.Active)
	})

	t.Run("empty name rejected for organizers", func(t *testing.T) {
		l, _ := newLedger(t)
		_, err := l.RegisterVenue(ctx, alice, "", "Main St", 10)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("authorization outranks the empty-name check", func(t *testing.T) {
		l, _ := newLedger(t)
		_, err := l.RegisterVenue(ctx, bob, "", "Main St", 10)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("overlong name rejected", func(t *testing.T) {
		l, _ := newLedger(t)
		long := make([]byte, MaxNameLen+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := l.RegisterVenue(ctx, alice, string(long), "Main St", 10)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown venue lookup", func(t *testing.T) {
		l, _ := newLedger(t)
		_, err := l.GetVenue(ctx, 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateEvent(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Ledger, *MemStore, uint64) {
		l, store := newLedger(t)
		venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
		require.NoError(t, err)
		return l, store, venueID
	}

	t.Run("success populates the record", func(t *testing.T) {
		l, _, venueID := setup(t)
		id, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)

		e, err := l.GetEvent(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, alice, e.Organizer)
		assert.Equal(t, uint64(100), e.TotalSeats)
		assert.Equal(t, uint64(100), e.AvailableSeats)
		assert.True(t, e.IsActive)
	})

	t.Run("non-organizer", func(t *testing.T) {
		l, _, venueID := setup(t)
		_, err := l.CreateEvent(ctx, bob, validEvent(venueID))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown venue", func(t *testing.T) {
		l, _, _ := setup(t)
		_, err := l.CreateEvent(ctx, alice, validEvent(99))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive venue", func(t *testing.T) {
		l, store, venueID := setup(t)
		v := store.venues[venueID]
		v.Active = false
		store.venues[venueID] = v

		_, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("empty name", func(t *testing.T) {
		l, _, venueID := setup(t)
		in := validEvent(venueID)
		in.Name = ""
		_, err := l.CreateEvent(ctx, alice, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("seats exceed venue capacity", func(t *testing.T) {
		l, _, venueID := setup(t)
		in := validEvent(venueID)
		in.TotalSeats = 101
		_, err := l.CreateEvent(ctx, alice, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("end not after start", func(t *testing.T) {
		l, _, venueID := setup(t)
		in := validEvent(venueID)
		in.EndHeight = in.StartHeight
		_, err := l.CreateEvent(ctx, alice, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("start not strictly future", func(t *testing.T) {
		l, _, venueID := setup(t)
		in := validEvent(venueID)
		in.StartHeight = 100 // equals current height
		in.EndHeight = 101
		_, err := l.CreateEvent(ctx, alice, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("authorization outranks existence", func(t *testing.T) {
		// Both checks fail; the caller must see Unauthorized.
		l, _, _ := setup(t)
		_, err := l.CreateEvent(ctx, bob, validEvent(99))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("failed creation burns no id", func(t *testing.T) {
		l, _, venueID := setup(t)
		in := validEvent(venueID)
		in.TotalSeats = 101
		_, err := l.CreateEvent(ctx, alice, in)
		require.Error(t, err)

		id, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
	})
}

func TestUpdateEventStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Ledger, uint64) {
		l, _ := newLedger(t)
		venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
		require.NoError(t, err)
		eventID, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		require.NoError(t, err)
		return l, eventID
	}

	t.Run("creator may toggle, other fields preserved", func(t *testing.T) {
		l, eventID := setup(t)
		require.NoError(t, l.UpdateEventStatus(ctx, alice, eventID, false))

		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.False(t, e.IsActive)
		assert.Equal(t, uint64(100), e.AvailableSeats)
		assert.Equal(t, alice, e.Organizer)
	})

	t.Run("another active organizer is rejected", func(t *testing.T) {
		l, eventID := setup(t)
		require.NoError(t, l.AddOrganizer(ctx, alice, bob))

		err := l.UpdateEventStatus(ctx, bob, eventID, false)
		assert.ErrorIs(t, err, ErrUnauthorized)

		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.True(t, e.IsActive)
	})

	t.Run("unknown event", func(t *testing.T) {
		l, _ := setup(t)
		err := l.UpdateEventStatus(ctx, alice, 99, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestIsEventActive(t *testing.T) {
	ctx := context.Background()

	l, _ := newLedger(t)
	venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
	require.NoError(t, err)
	eventID, err := l.CreateEvent(ctx, alice, validEvent(venueID))
	require.NoError(t, err)

	t.Run("future flagged event is active", func(t *testing.T) {
		active, err := l.IsEventActive(ctx, eventID)
		require.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("unknown event reads inactive", func(t *testing.T) {
		active, err := l.IsEventActive(ctx, 99)
		require.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("flag off reads inactive", func(t *testing.T) {
		require.NoError(t, l.UpdateEventStatus(ctx, alice, eventID, false))
		active, err := l.IsEventActive(ctx, eventID)
		require.NoError(t, err)
		assert.False(t, active)
		require.NoError(t, l.UpdateEventStatus(ctx, alice, eventID, true))
	})

	t.Run("started event reads inactive despite flag", func(t *testing.T) {
		// Same store, chain advanced past the start height.
		started := New(l.store, chain.Fixed(150))
		active, err := started.IsEventActive(ctx, eventID)
		require.NoError(t, err)
		assert.False(t, active)
	})
}

func TestCreateSeatCategory(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Ledger, *MemStore, uint64) {
		l, store := newLedger(t)
		venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
		require.NoError(t, err)
		eventID, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		require.NoError(t, err)
		return l, store, eventID
	}

	category := func(eventID, seats uint64) CreateCategoryInput {
		return CreateCategoryInput{EventID: eventID, Name: "VIP", PriceCents: 15_000, TotalSeats: seats}
	}

	t.Run("creation debits the event pool atomically", func(t *testing.T) {
		l, _, eventID := setup(t)
		id, err := l.CreateSeatCategory(ctx, alice, category(eventID, 20))
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)

		sc, err := l.GetSeatCategory(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uint64(20), sc.TotalSeats)
		assert.Equal(t, uint64(20), sc.AvailableSeats)
		assert.True(t, sc.Active)

		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, uint64(80), e.AvailableSeats)
	})

	t.Run("any organizer may carve any active event", func(t *testing.T) {
		// Unlike UpdateEventStatus, ownership is not re-checked here.
		l, _, eventID := setup(t)
		require.NoError(t, l.AddOrganizer(ctx, alice, bob))

		_, err := l.CreateSeatCategory(ctx, bob, category(eventID, 10))
		assert.NoError(t, err)
	})

	t.Run("non-organizer", func(t *testing.T) {
		l, _, eventID := setup(t)
		_, err := l.CreateSeatCategory(ctx, carol, category(eventID, 10))
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown event", func(t *testing.T) {
		l, _, _ := setup(t)
		_, err := l.CreateSeatCategory(ctx, alice, category(99, 10))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive event", func(t *testing.T) {
		l, _, eventID := setup(t)
		require.NoError(t, l.UpdateEventStatus(ctx, alice, eventID, false))

		_, err := l.CreateSeatCategory(ctx, alice, category(eventID, 10))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("empty name", func(t *testing.T) {
		l, _, eventID := setup(t)
		in := category(eventID, 10)
		in.Name = ""
		_, err := l.CreateSeatCategory(ctx, alice, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("zero-seat category accepted, pool untouched", func(t *testing.T) {
		l, _, eventID := setup(t)
		id, err := l.CreateSeatCategory(ctx, alice, category(eventID, 0))
		require.NoError(t, err)

		sc, err := l.GetSeatCategory(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, sc.TotalSeats)
		assert.Zero(t, sc.AvailableSeats)

		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), e.AvailableSeats)
	})

	t.Run("oversell rejected and pool unchanged", func(t *testing.T) {
		l, _, eventID := setup(t)
		_, err := l.CreateSeatCategory(ctx, alice, category(eventID, 101))
		assert.ErrorIs(t, err, ErrInvalidArgument)

		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), e.AvailableSeats)
	})

	t.Run("oversell is checked against the live pool", func(t *testing.T) {
		l, _, eventID := setup(t)
		_, err := l.CreateSeatCategory(ctx, alice, category(eventID, 60))
		require.NoError(t, err)

		_, err = l.CreateSeatCategory(ctx, alice, category(eventID, 60))
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("exhausting the pool step by step", func(t *testing.T) {
		l, _, eventID := setup(t)

		id, err := l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
			EventID: eventID, Name: "VIP", PriceCents: 15_000, TotalSeats: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), id)
		e, err := l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, uint64(80), e.AvailableSeats)

		id, err = l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
			EventID: eventID, Name: "GA", PriceCents: 5_000, TotalSeats: 80,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(2), id)
		e, err = l.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Zero(t, e.AvailableSeats)

		_, err = l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
			EventID: eventID, Name: "Overflow", PriceCents: 1_000, TotalSeats: 1,
		})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestUpdateSeatAvailability(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*Ledger, *MemStore, uint64) {
		l, store := newLedger(t)
		venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
		require.NoError(t, err)
		eventID, err := l.CreateEvent(ctx, alice, validEvent(venueID))
		require.NoError(t, err)
		catID, err := l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
			EventID: eventID, Name: "GA", PriceCents: 5_000, TotalSeats: 50,
		})
		require.NoError(t, err)
		return l, store, catID
	}

	t.Run("sale decrements only the category pool", func(t *testing.T) {
		l, _, catID := setup(t)
		sc, err := l.UpdateSeatAvailability(ctx, catID, 10)
		require.NoError(t, err)
		assert.Equal(t, uint64(40), sc.AvailableSeats)
		assert.Equal(t, uint64(50), sc.TotalSeats)

		e, err := l.GetEvent(ctx, sc.EventID)
		require.NoError(t, err)
		assert.Equal(t, uint64(50), e.AvailableSeats) // debited once, at creation
	})

	t.Run("returned record matches this sale, not later ones", func(t *testing.T) {
		l, _, catID := setup(t)
		first, err := l.UpdateSeatAvailability(ctx, catID, 10)
		require.NoError(t, err)
		second, err := l.UpdateSeatAvailability(ctx, catID, 5)
		require.NoError(t, err)

		assert.Equal(t, uint64(40), first.AvailableSeats)
		assert.Equal(t, uint64(35), second.AvailableSeats)
	})

	t.Run("overselling rejected and count unchanged", func(t *testing.T) {
		l, _, catID := setup(t)
		_, err := l.UpdateSeatAvailability(ctx, catID, 51)
		assert.ErrorIs(t, err, ErrInvalidArgument)

		sc, err := l.GetSeatCategory(ctx, catID)
		require.NoError(t, err)
		assert.Equal(t, uint64(50), sc.AvailableSeats)
	})

	t.Run("selling down to zero then one more", func(t *testing.T) {
		l, _, catID := setup(t)
		sc, err := l.UpdateSeatAvailability(ctx, catID, 50)
		require.NoError(t, err)
		assert.Zero(t, sc.AvailableSeats)

		_, err = l.UpdateSeatAvailability(ctx, catID, 1)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown category", func(t *testing.T) {
		l, _, _ := setup(t)
		_, err := l.UpdateSeatAvailability(ctx, 99, 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("inactive category", func(t *testing.T) {
		l, store, catID := setup(t)
		sc := store.categories[catID]
		sc.Active = false
		store.categories[catID] = sc

		_, err := l.UpdateSeatAvailability(ctx, catID, 1)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestGetEventCategories(t *testing.T) {
	ctx := context.Background()

	l, _ := newLedger(t)
	venueID, err := l.RegisterVenue(ctx, alice, "Hall", "Main St", 100)
	require.NoError(t, err)
	eventID, err := l.CreateEvent(ctx, alice, validEvent(venueID))
	require.NoError(t, err)

	t.Run("empty for event without categories", func(t *testing.T) {
		cats, err := l.GetEventCategories(ctx, eventID)
		require.NoError(t, err)
		assert.Empty(t, cats)
	})

	t.Run("returns all categories in creation order", func(t *testing.T) {
		names := []string{"VIP", "GA", "Balcony"}
		for _, name := range names {
			_, err := l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
				EventID: eventID, Name: name, PriceCents: 1_000, TotalSeats: 10,
			})
			require.NoError(t, err)
		}

		cats, err := l.GetEventCategories(ctx, eventID)
		require.NoError(t, err)
		require.Len(t, cats, len(names))
		for i, sc := range cats {
			assert.Equal(t, names[i], sc.Name)
			assert.Equal(t, eventID, sc.EventID)
		}
	})

	t.Run("unknown event yields empty, not error", func(t *testing.T) {
		cats, err := l.GetEventCategories(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, cats)
	})
}

// TestAvailabilityInvariant drives a mixed operation sequence and asserts
// available <= total for every record after every call.
func TestAvailabilityInvariant(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	venueID, err := l.RegisterVenue(ctx, alice, "Arena", "Dock 3", 1000)
	require.NoError(t, err)
	eventID, err := l.CreateEvent(ctx, alice, CreateEventInput{
		Name: "Derby", VenueID: venueID, StartHeight: 150, EndHeight: 300, TotalSeats: 1000,
	})
	require.NoError(t, err)

	checkAll := func() {
		for _, e := range store.events {
			assert.LessOrEqual(t, e.AvailableSeats, e.TotalSeats)
		}
		for _, sc := range store.categories {
			assert.LessOrEqual(t, sc.AvailableSeats, sc.TotalSeats)
		}
	}

	var catIDs []uint64
	for _, seats := range []uint64{300, 300, 200, 500 /* rejected */, 200} {
		id, err := l.CreateSeatCategory(ctx, alice, CreateCategoryInput{
			EventID: eventID, Name: "Block", PriceCents: 2_500, TotalSeats: seats,
		})
		if err == nil {
			catIDs = append(catIDs, id)
		}
		checkAll()
	}
	require.Len(t, catIDs, 4)

	for _, id := range catIDs {
		_, _ = l.UpdateSeatAvailability(ctx, id, 150)
		checkAll()
		_, _ = l.UpdateSeatAvailability(ctx, id, 10_000) // rejected
		checkAll()
	}

	e, err := l.GetEvent(ctx, eventID)
	require.NoError(t, err)
	assert.Zero(t, e.AvailableSeats)

	var first model.SeatCategory
	first, err = l.GetSeatCategory(ctx, catIDs[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(150), first.AvailableSeats)
}
