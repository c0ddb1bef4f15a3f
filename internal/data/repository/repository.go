package repository

import (
	"cinema-chain/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Cinema       CinemaRepository
	Room         RoomRepository
	Movie        MovieRepository
	Genre        GenreRepository
	Screening    ScreeningRepository
	Reservation  ReservationRepository
	Inventory    InventoryRepository
	Announcement AnnouncementRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Cinema:       NewCinemaRepository(db, log),
		Room:         NewRoomRepository(db, log),
		Movie:        NewMovieRepository(db, log),
		Genre:        NewGenreRepository(db, log),
		Screening:    NewScreeningRepository(db, log),
		Reservation:  NewReservationRepository(db, log),
		Inventory:    NewInventoryRepository(db, log),
		Announcement: NewAnnouncementRepository(db, log),
	}
}
