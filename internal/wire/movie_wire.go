package wire

import (
	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	screeningHandler *adaptor.ScreeningHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/movies", movieHandler.GetMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovie)
	r.Get("/api/movies/{id}/screenings", screeningHandler.GetByMovie)
	r.Get("/api/genres", movieHandler.GetGenres)

	// App-wide catalog content
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log,
			entity.RoleApplicationAdmin,
			entity.RoleContentAppAdmin,
		))

		r.Post("/api/movies", movieHandler.CreateMovie)
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)
		r.Post("/api/genres", movieHandler.CreateGenre)
	})
}
