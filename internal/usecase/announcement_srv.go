package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/dto/response"
	"cinema-chain/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AnnouncementService interface {
	CreateAnnouncement(ctx context.Context, req *request.AnnouncementRequest) (*response.AnnouncementResponse, error)
	GetByCinema(ctx context.Context, cinemaID string) ([]response.AnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, announcementID string, req *request.AnnouncementUpdateRequest) (*response.AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, announcementID string) error
}

type announcementService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnnouncementService(repo *repository.Repository, log *zap.Logger) AnnouncementService {
	return &announcementService{
		repo: repo,
		log:  log.With(zap.String("service", "announcement")),
	}
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, req *request.AnnouncementRequest) (*response.AnnouncementResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cinemaID, err := uuid.Parse(req.CinemaID)
	if err != nil {
		return nil, entity.ErrCinemaNotFound
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, cinemaID)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, entity.ErrCinemaNotFound
	}

	publishedAt, err := time.Parse(time.RFC3339, req.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("invalid published time %s: %w", req.PublishedAt, err)
	}

	now := time.Now()
	announcement := &entity.Announcement{
		CinemaID:    cinemaID,
		Title:       req.Title,
		Content:     req.Content,
		PublishedAt: publishedAt,
	}
	announcement.ID = uuid.New()
	announcement.CreatedAt = now
	announcement.UpdatedAt = now

	if err := s.repo.Announcement.Create(ctx, announcement); err != nil {
		s.log.Error("Failed to create announcement", zap.Error(err))
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	resp := response.AnnouncementToResponse(announcement)
	return &resp, nil
}

func (s *announcementService) GetByCinema(ctx context.Context, cinemaID string) ([]response.AnnouncementResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, entity.ErrCinemaNotFound
	}

	announcements, err := s.repo.Announcement.FindByCinemaID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find announcements: %w", err)
	}

	return response.AnnouncementsToResponse(announcements), nil
}

func (s *announcementService) UpdateAnnouncement(ctx context.Context, announcementID string, req *request.AnnouncementUpdateRequest) (*response.AnnouncementResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(announcementID)
	if err != nil {
		return nil, entity.ErrAnnouncementNotFound
	}

	announcement, err := s.repo.Announcement.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find announcement: %w", err)
	}
	if announcement == nil {
		return nil, entity.ErrAnnouncementNotFound
	}

	if req.Title != nil {
		announcement.Title = *req.Title
	}
	if req.Content != nil {
		announcement.Content = *req.Content
	}
	if req.PublishedAt != nil {
		publishedAt, err := time.Parse(time.RFC3339, *req.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid published time %s: %w", *req.PublishedAt, err)
		}
		announcement.PublishedAt = publishedAt
	}
	announcement.UpdatedAt = time.Now()

	if err := s.repo.Announcement.Update(ctx, announcement); err != nil {
		s.log.Error("Failed to update announcement", zap.Error(err))
		return nil, fmt.Errorf("update announcement: %w", err)
	}

	resp := response.AnnouncementToResponse(announcement)
	return &resp, nil
}

func (s *announcementService) DeleteAnnouncement(ctx context.Context, announcementID string) error {
	id, err := uuid.Parse(announcementID)
	if err != nil {
		return entity.ErrAnnouncementNotFound
	}

	announcement, err := s.repo.Announcement.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find announcement: %w", err)
	}
	if announcement == nil {
		return entity.ErrAnnouncementNotFound
	}

	if err := s.repo.Announcement.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete announcement", zap.Error(err))
		return fmt.Errorf("delete announcement: %w", err)
	}

	return nil
}
