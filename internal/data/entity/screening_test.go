package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreeningCheckReserve(t *testing.T) {
	now := time.Now()

	t.Run("accepts a request within capacity", func(t *testing.T) {
		s := &Screening{StartTime: now.Add(time.Hour), RemainingSeats: 5}
		require.NoError(t, s.CheckReserve(3, now))
	})

	t.Run("accepts reserving every remaining seat", func(t *testing.T) {
		s := &Screening{StartTime: now.Add(time.Hour), RemainingSeats: 5}
		require.NoError(t, s.CheckReserve(5, now))
	})

	t.Run("rejects a request above capacity", func(t *testing.T) {
		s := &Screening{StartTime: now.Add(time.Hour), RemainingSeats: 2}
		assert.ErrorIs(t, s.CheckReserve(3, now), ErrInsufficientSeats)
	})

	t.Run("rejects any request once started", func(t *testing.T) {
		s := &Screening{StartTime: now.Add(-time.Minute), RemainingSeats: 100}
		assert.ErrorIs(t, s.CheckReserve(1, now), ErrScreeningClosed)
	})

	t.Run("closed wins over insufficient seats", func(t *testing.T) {
		s := &Screening{StartTime: now.Add(-time.Minute), RemainingSeats: 0}
		assert.ErrorIs(t, s.CheckReserve(5, now), ErrScreeningClosed)
	})

	t.Run("start time itself counts as closed", func(t *testing.T) {
		s := &Screening{StartTime: now, RemainingSeats: 5}
		assert.ErrorIs(t, s.CheckReserve(1, now), ErrScreeningClosed)
	})
}

func TestScreeningOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	twoHours := 2 * time.Hour

	s := &Screening{StartTime: base}

	t.Run("identical windows overlap", func(t *testing.T) {
		assert.True(t, s.Overlaps(twoHours, base, twoHours))
	})

	t.Run("partial overlap", func(t *testing.T) {
		assert.True(t, s.Overlaps(twoHours, base.Add(time.Hour), twoHours))
		assert.True(t, s.Overlaps(twoHours, base.Add(-time.Hour), twoHours))
	})

	t.Run("containment overlaps", func(t *testing.T) {
		assert.True(t, s.Overlaps(twoHours, base.Add(30*time.Minute), time.Hour))
	})

	t.Run("back to back windows do not overlap", func(t *testing.T) {
		assert.False(t, s.Overlaps(twoHours, base.Add(twoHours), twoHours))
		assert.False(t, s.Overlaps(twoHours, base.Add(-twoHours), twoHours))
	})

	t.Run("disjoint windows do not overlap", func(t *testing.T) {
		assert.False(t, s.Overlaps(twoHours, base.Add(5*time.Hour), twoHours))
	})
}

func TestReservationActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: ReservationStatusCommitted}).Active())
	assert.False(t, (&Reservation{Status: ReservationStatusCancelled}).Active())
	assert.False(t, (&Reservation{Status: ReservationStatusExpired}).Active())
}

func TestTransient(t *testing.T) {
	assert.True(t, Transient(ErrConflict))
	assert.True(t, Transient(ErrStoreUnavailable))
	assert.False(t, Transient(ErrInsufficientSeats))
	assert.False(t, Transient(ErrScreeningClosed))
	assert.False(t, Transient(ErrTimeout))
	assert.False(t, Transient(nil))
}
