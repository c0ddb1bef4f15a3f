package usecase

import (
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/queue"
	"cinema-chain/pkg/cache"
	"cinema-chain/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Cinema       CinemaService
	Movie        MovieService
	Screening    ScreeningService
	Inventory    InventoryService
	Announcement AnnouncementService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	availability *cache.AvailabilityCache,
	publisher *queue.Publisher,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Cinema:       NewCinemaService(repo, log),
		Movie:        NewMovieService(repo, log),
		Screening:    NewScreeningService(repo, log),
		Inventory:    NewInventoryService(repo, config.Inventory, availability, publisher, log),
		Announcement: NewAnnouncementService(repo, log),
	}
}
