package entity

import "github.com/google/uuid"

type ReservationStatus string

const (
	// ReservationStatusCommitted is the only externally visible success
	// state. A pending reservation exists only inside the store
	// transaction and is never persisted as such.
	ReservationStatusCommitted ReservationStatus = "committed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusExpired   ReservationStatus = "expired"
)

type Reservation struct {
	Base
	ScreeningID uuid.UUID         `db:"screening_id"`
	CustomerID  uuid.UUID         `db:"customer_id"`
	BookedSeats int               `db:"booked_seats"`
	Status      ReservationStatus `db:"status"`
}

// Active reports whether the reservation still counts against capacity.
func (r *Reservation) Active() bool {
	return r.Status == ReservationStatusCommitted
}
