package wire

import (
	"net/http"

	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/queue"
	"cinema-chain/internal/usecase"
	"cinema-chain/pkg/cache"
	"cinema-chain/pkg/middleware"
	"cinema-chain/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	availability *cache.AvailabilityCache,
	publisher *queue.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, availability, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	wireAuth(r, handler.Auth, repo, logger)
	wireCinema(r, handler.Cinema, repo, logger)
	wireMovie(r, handler.Movie, handler.Screening, repo, logger)
	wireScreening(r, handler.Screening, handler.Reservation, repo, logger)
	wireReservation(r, handler.Reservation, repo, logger)
	wireAnnouncement(r, handler.Announcement, repo, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
