package wire

import (
	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/repository"
	"cinema-chain/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All reservation mutations need an authenticated caller. Ownership
	// is enforced in the service, admins may cancel any reservation.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/reservations", reservationHandler.CreateReservation)
		r.Delete("/api/reservations/{id}", reservationHandler.CancelReservation)
		r.Get("/api/user/reservations", reservationHandler.GetUserReservations)
	})
}
