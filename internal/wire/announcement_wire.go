package wire

import (
	"cinema-chain/internal/adaptor"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAnnouncement(
	r chi.Router,
	announcementHandler *adaptor.AnnouncementHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/cinemas/{id}/announcements", announcementHandler.GetCinemaAnnouncements)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log,
			entity.RoleApplicationAdmin,
			entity.RoleContentCinemaAdmin,
		))

		r.Post("/api/announcements", announcementHandler.CreateAnnouncement)
		r.Put("/api/announcements/{id}", announcementHandler.UpdateAnnouncement)
		r.Delete("/api/announcements/{id}", announcementHandler.DeleteAnnouncement)
	})
}
