//go:build unit

package booking_test

import (
	"testing"

	"chershare/internal/domain/booking"
	"chershare/internal/pkg/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedger(t *testing.T) *booking.Ledger {
	t.Helper()
	l, err := booking.NewLedger(kv.NewStore())
	require.NoError(t, err)
	return l
}

func mustInterval(t *testing.T, beginMs, endMs int64) booking.Interval {
	t.Helper()
	iv, err := booking.NewInterval(beginMs, endMs)
	require.NoError(t, err)
	return iv
}

func TestInterval(t *testing.T) {
	t.Run("end must be after begin", func(t *testing.T) {
		_, err := booking.NewInterval(100, 100)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
		_, err = booking.NewInterval(100, 99)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("duration", func(t *testing.T) {
		iv := mustInterval(t, 1_000, 4_600)
		assert.Equal(t, int64(3_600), iv.DurationMs())
	})
}

func TestLedgerCommit(t *testing.T) {
	l := newLedger(t)

	b1 := l.Commit(mustInterval(t, 1_000, 2_000), "alice.test", 500)
	b2 := l.Commit(mustInterval(t, 2_000, 3_000), "bob.test", 700)

	// ids are monotonic from one
	assert.Equal(t, uint64(1), b1.ID)
	assert.Equal(t, uint64(2), b2.ID)
	assert.Equal(t, 2, l.Len())

	got, err := l.Get(b1.ID)
	require.NoError(t, err)
	assert.Equal(t, b1, got)

	_, err = l.Get(99)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestLedgerCollisionProbes(t *testing.T) {
	l := newLedger(t)
	committed := l.Commit(mustInterval(t, 10_000, 20_000), "alice.test", 1)

	collides := []struct {
		name    string
		beginMs int64
		endMs   int64
	}{
		{name: "identical", beginMs: 10_000, endMs: 20_000},
		{name: "overlaps the left edge", beginMs: 5_000, endMs: 10_001},
		{name: "overlaps the right edge", beginMs: 19_999, endMs: 25_000},
		{name: "contained", beginMs: 12_000, endMs: 18_000},
		{name: "containing", beginMs: 5_000, endMs: 25_000},
		{name: "shares the begin", beginMs: 10_000, endMs: 11_000},
		{name: "shares the end", beginMs: 19_000, endMs: 20_000},
	}
	for _, tc := range collides {
		t.Run(tc.name, func(t *testing.T) {
			err := l.CheckNoCollision(mustInterval(t, tc.beginMs, tc.endMs))
			require.ErrorIs(t, err, booking.ErrCollision)

			var ce *booking.CollisionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, committed.ID, ce.WithID)
		})
	}

	free := []struct {
		name    string
		beginMs int64
		endMs   int64
	}{
		{name: "entirely before", beginMs: 1_000, endMs: 5_000},
		{name: "entirely after", beginMs: 30_000, endMs: 40_000},
		{name: "touching on the left", beginMs: 5_000, endMs: 10_000},
		{name: "touching on the right", beginMs: 20_000, endMs: 25_000},
	}
	for _, tc := range free {
		t.Run(tc.name, func(t *testing.T) {
			assert.NoError(t, l.CheckNoCollision(mustInterval(t, tc.beginMs, tc.endMs)))
		})
	}
}

func TestLedgerCollisionBetweenNeighbours(t *testing.T) {
	l := newLedger(t)
	l.Commit(mustInterval(t, 10_000, 20_000), "alice.test", 1)
	l.Commit(mustInterval(t, 30_000, 40_000), "bob.test", 1)

	// the gap between the two is bookable
	assert.NoError(t, l.CheckNoCollision(mustInterval(t, 20_000, 30_000)))

	// spanning the gap into either neighbour is not
	assert.ErrorIs(t, l.CheckNoCollision(mustInterval(t, 19_999, 30_000)), booking.ErrCollision)
	assert.ErrorIs(t, l.CheckNoCollision(mustInterval(t, 20_000, 30_001)), booking.ErrCollision)
}

func TestLedgerRemove(t *testing.T) {
	l := newLedger(t)
	b := l.Commit(mustInterval(t, 10_000, 20_000), "alice.test", 1)

	require.NoError(t, l.Remove(b.ID))
	assert.Equal(t, 0, l.Len())

	// record and index entries go together: the slot is free again
	assert.NoError(t, l.CheckNoCollision(mustInterval(t, 10_000, 20_000)))

	_, err := l.Get(b.ID)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	assert.ErrorIs(t, l.Remove(b.ID), booking.ErrBookingNotFound)

	// ids are never reused after removal
	next := l.Commit(mustInterval(t, 10_000, 20_000), "bob.test", 1)
	assert.Equal(t, uint64(2), next.ID)
}
