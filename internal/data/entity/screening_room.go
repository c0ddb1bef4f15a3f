package entity

import "github.com/google/uuid"

// ScreeningRoom holds a non-owning reference to its cinema. TotalSeats is
// immutable once screenings exist against the room.
type ScreeningRoom struct {
	Base
	CinemaID   uuid.UUID `db:"cinema_id"`
	Name       string    `db:"name"`
	TotalSeats int       `db:"total_seats"`
	Is3D       bool      `db:"is_3d"`
}
