package response

import (
	"time"

	"cinema-chain/internal/data/entity"
)

type ScreeningResponse struct {
	ID             string    `json:"id"`
	MovieID        string    `json:"movie_id"`
	RoomID         string    `json:"room_id"`
	StartTime      time.Time `json:"start_time"`
	RemainingSeats int       `json:"remaining_seats"`
}

type AvailabilityResponse struct {
	ScreeningID    string `json:"screening_id"`
	RemainingSeats int    `json:"remaining_seats"`
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:             screening.ID.String(),
		MovieID:        screening.MovieID.String(),
		RoomID:         screening.RoomID.String(),
		StartTime:      screening.StartTime,
		RemainingSeats: screening.RemainingSeats,
	}
}

func ScreeningsToResponse(screenings []*entity.Screening) []ScreeningResponse {
	resp := make([]ScreeningResponse, 0, len(screenings))
	for i := range screenings {
		resp = append(resp, ScreeningToResponse(screenings[i]))
	}
	return resp
}
