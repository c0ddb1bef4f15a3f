package response

import (
	"time"

	"cinema-chain/internal/data/entity"
)

type ReservationResponse struct {
	ID          string    `json:"id"`
	ScreeningID string    `json:"screening_id"`
	CustomerID  string    `json:"customer_id"`
	BookedSeats int       `json:"booked_seats"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          reservation.ID.String(),
		ScreeningID: reservation.ScreeningID.String(),
		CustomerID:  reservation.CustomerID.String(),
		BookedSeats: reservation.BookedSeats,
		Status:      string(reservation.Status),
		CreatedAt:   reservation.CreatedAt,
	}
}

func ReservationsToResponse(reservations []*entity.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		resp = append(resp, ReservationToResponse(reservations[i]))
	}
	return resp
}
