package entity

import "github.com/google/uuid"

type UserRole string

const (
	RoleApplicationAdmin   UserRole = "application_admin"
	RoleContentCinemaAdmin UserRole = "content_cinema_admin"
	RoleContentAppAdmin    UserRole = "content_app_admin"
	RoleCustomer           UserRole = "customer"
)

type User struct {
	Base
	Email        string   `db:"email"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	// CinemaID is the role payload for content cinema admins: the cinema
	// they administer. NULL for every other role.
	CinemaID *uuid.UUID `db:"cinema_id"`
	IsActive bool       `db:"is_active"`
}

// IsAdmin reports whether the role grants any management surface.
func (u *User) IsAdmin() bool {
	return u.Role != RoleCustomer
}

// CanManageCinema reports whether the user may manage content for the
// given cinema. Application admins manage everything; content cinema
// admins only their own cinema.
func (u *User) CanManageCinema(cinemaID uuid.UUID) bool {
	switch u.Role {
	case RoleApplicationAdmin, RoleContentAppAdmin:
		return true
	case RoleContentCinemaAdmin:
		return u.CinemaID != nil && *u.CinemaID == cinemaID
	default:
		return false
	}
}
