package entity

import "errors"

// Seat inventory error taxonomy. Callers branch on these with errors.Is;
// every failed mutation leaves the counter unchanged.
var (
	ErrScreeningNotFound   = errors.New("screening not found")
	ErrScreeningClosed     = errors.New("screening already started")
	ErrInsufficientSeats   = errors.New("not enough remaining seats")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")
	ErrConflict            = errors.New("too much contention, retry")
	ErrTimeout             = errors.New("operation timed out")
	ErrStoreUnavailable    = errors.New("store temporarily unavailable")
)

var (
	ErrCinemaNotFound       = errors.New("cinema not found")
	ErrRoomNotFound         = errors.New("screening room not found")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrGenreNotFound        = errors.New("genre not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrRoomHasScreenings    = errors.New("room capacity is frozen once screenings exist")
	ErrScreeningOverlap     = errors.New("screening overlaps another in the same room")
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Transient reports whether the error is worth retrying with backoff.
// Everything else in the taxonomy is terminal for the request.
func Transient(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrConflict)
}
