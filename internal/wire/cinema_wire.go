package wire

import (
	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/cinemas", cinemaHandler.GetCinemas)
	r.Get("/api/cinemas/{id}", cinemaHandler.GetCinema)
	r.Get("/api/cinemas/{id}/rooms", cinemaHandler.GetCinemaRooms)

	// Chain structure belongs to the application admin alone.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleApplicationAdmin))

		r.Post("/api/cinemas", cinemaHandler.CreateCinema)
		r.Delete("/api/cinemas/{id}", cinemaHandler.DeleteCinema)
	})

	// Cinema details and rooms may also be managed by that cinema's admin.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log,
			entity.RoleApplicationAdmin,
			entity.RoleContentCinemaAdmin,
		))

		r.Put("/api/cinemas/{id}", cinemaHandler.UpdateCinema)
		r.Post("/api/rooms", cinemaHandler.CreateRoom)
		r.Put("/api/rooms/{id}", cinemaHandler.UpdateRoom)
		r.Delete("/api/rooms/{id}", cinemaHandler.DeleteRoom)
	})
}
