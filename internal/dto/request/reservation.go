package request

type CreateReservationRequest struct {
	ScreeningID    string `json:"screening_id" validate:"required,uuid"`
	RequestedSeats int    `json:"requested_seats" validate:"required,gt=0"`
}
