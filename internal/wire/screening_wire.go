package wire

import (
	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireScreening(
	r chi.Router,
	screeningHandler *adaptor.ScreeningHandler,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/screenings", screeningHandler.GetUpcoming)
	r.Get("/api/screenings/{id}", screeningHandler.GetScreening)
	r.Get("/api/screenings/{id}/availability", reservationHandler.GetAvailability)

	// Scheduling is content management.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log,
			entity.RoleApplicationAdmin,
			entity.RoleContentCinemaAdmin,
			entity.RoleContentAppAdmin,
		))

		r.Post("/api/screenings", screeningHandler.CreateScreening)
		r.Put("/api/screenings/{id}", screeningHandler.UpdateScreening)
		r.Delete("/api/screenings/{id}", screeningHandler.DeleteScreening)
	})
}
