// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationEvent is published when a reservation commits or is
// cancelled. It carries enough for downstream consumers to log, notify,
// or feed analytics without querying the primary database.
type ReservationEvent struct {
	ReservationID string `json:"reservation_id"`
	ScreeningID   string `json:"screening_id"`
	CustomerID    string `json:"customer_id"`
	BookedSeats   int    `json:"booked_seats"`
	OccurredAt    string `json:"occurred_at"`
}

const (
	QueueReservationCommitted = "reservation.committed"
	QueueReservationCancelled = "reservation.cancelled"
)
