package response

import (
	"cinema-chain/internal/data/entity"
)

type CinemaResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
	Email   string `json:"email"`
}

type CinemaDetailResponse struct {
	CinemaResponse
	Rooms []RoomResponse `json:"rooms"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	CinemaID   string `json:"cinema_id"`
	Name       string `json:"name"`
	TotalSeats int    `json:"total_seats"`
	Is3D       bool   `json:"is_3d"`
}

func CinemaToResponse(cinema *entity.Cinema) CinemaResponse {
	return CinemaResponse{
		ID:      cinema.ID.String(),
		Name:    cinema.Name,
		Address: cinema.Address,
		City:    cinema.City,
		ZipCode: cinema.ZipCode,
		Email:   cinema.Email,
	}
}

func CinemasToResponse(cinemas []*entity.Cinema) []CinemaResponse {
	resp := make([]CinemaResponse, 0, len(cinemas))
	for i := range cinemas {
		resp = append(resp, CinemaToResponse(cinemas[i]))
	}
	return resp
}

func CinemaToDetailResponse(cinema *entity.Cinema, rooms []*entity.ScreeningRoom) CinemaDetailResponse {
	return CinemaDetailResponse{
		CinemaResponse: CinemaToResponse(cinema),
		Rooms:          RoomsToResponse(rooms),
	}
}

func RoomToResponse(room *entity.ScreeningRoom) RoomResponse {
	return RoomResponse{
		ID:         room.ID.String(),
		CinemaID:   room.CinemaID.String(),
		Name:       room.Name,
		TotalSeats: room.TotalSeats,
		Is3D:       room.Is3D,
	}
}

func RoomsToResponse(rooms []*entity.ScreeningRoom) []RoomResponse {
	resp := make([]RoomResponse, 0, len(rooms))
	for i := range rooms {
		resp = append(resp, RoomToResponse(rooms[i]))
	}
	return resp
}
