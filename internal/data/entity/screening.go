package entity

import (
	"time"

	"github.com/google/uuid"
)

// Screening is one showing of a movie in one room. RemainingSeats is the
// cached counter seeded from the room's TotalSeats at creation; every
// committed reservation decrements it and every cancellation restores it,
// always inside the same store transaction as the reservation row.
type Screening struct {
	Base
	MovieID        uuid.UUID `db:"movie_id"`
	RoomID         uuid.UUID `db:"room_id"`
	StartTime      time.Time `db:"start_time"`
	RemainingSeats int       `db:"remaining_seats"`
}

// Closed reports whether the screening has already started.
func (s *Screening) Closed(now time.Time) bool {
	return !s.StartTime.After(now)
}

// CheckReserve validates a seat request against the screening at commit
// time. The caller must hold exclusivity on the counter row: the decision
// is only safe while no other writer can move RemainingSeats.
func (s *Screening) CheckReserve(seats int, now time.Time) error {
	if s.Closed(now) {
		return ErrScreeningClosed
	}
	if seats > s.RemainingSeats {
		return ErrInsufficientSeats
	}
	return nil
}

// Overlaps reports whether two screenings in the same room collide, given
// each movie's runtime. Windows are half-open: [start, start+duration).
func (s *Screening) Overlaps(d time.Duration, otherStart time.Time, otherDur time.Duration) bool {
	end := s.StartTime.Add(d)
	otherEnd := otherStart.Add(otherDur)
	return s.StartTime.Before(otherEnd) && otherStart.Before(end)
}
