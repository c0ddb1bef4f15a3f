package response

import (
	"time"

	"cinema-chain/internal/data/entity"
)

type AuthResponse struct {
	User    UserResponse `json:"user"`
	Token   string       `json:"token,omitempty"`
	Expires *time.Time   `json:"expires_at,omitempty"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Role      string  `json:"role"`
	CinemaID  *string `json:"cinema_id,omitempty"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
	}
	if user.CinemaID != nil {
		cinemaID := user.CinemaID.String()
		resp.CinemaID = &cinemaID
	}
	return resp
}
