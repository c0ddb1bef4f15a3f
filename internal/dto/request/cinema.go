package request

type CinemaRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"required,min=1,max=200"`
	City    string `json:"city" validate:"required,min=1,max=100"`
	ZipCode string `json:"zip_code" validate:"required,min=1,max=20"`
	Email   string `json:"email" validate:"required,email"`
}

type CinemaUpdateRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address,omitempty" validate:"omitempty,min=1,max=200"`
	City    *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	ZipCode *string `json:"zip_code,omitempty" validate:"omitempty,min=1,max=20"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
}

type RoomRequest struct {
	CinemaID   string `json:"cinema_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
	Is3D       bool   `json:"is_3d"`
}

type RoomUpdateRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	TotalSeats *int    `json:"total_seats,omitempty" validate:"omitempty,gt=0"`
	Is3D       *bool   `json:"is_3d,omitempty"`
}
