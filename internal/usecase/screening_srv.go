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

type ScreeningService interface {
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error)
	GetUpcoming(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ScreeningResponse], error)
	GetByMovie(ctx context.Context, movieID string) ([]response.ScreeningResponse, error)
	UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error)
	DeleteScreening(ctx context.Context, screeningID string) error
}

type screeningService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScreeningService(repo *repository.Repository, log *zap.Logger) ScreeningService {
	return &screeningService{
		repo: repo,
		log:  log.With(zap.String("service", "screening")),
	}
}

// checkOverlap rejects a screening whose [start, start+duration) window
// intersects any other screening in the same room. excludeID skips the
// screening being updated.
func (s *screeningService) checkOverlap(ctx context.Context, roomID uuid.UUID, start time.Time, duration time.Duration, excludeID uuid.UUID) error {
	overlaps, err := s.repo.Screening.HasOverlap(ctx, roomID, start, start.Add(duration), excludeID)
	if err != nil {
		return fmt.Errorf("check overlap: %w", err)
	}
	if overlaps {
		return entity.ErrScreeningOverlap
	}
	return nil
}

// CreateScreening seeds the remaining seat counter from the room's total
// capacity. The counter only moves through reservations afterwards.
func (s *screeningService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, entity.ErrMovieNotFound
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, entity.ErrRoomNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, entity.ErrRoomNotFound
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %s: %w", req.StartTime, err)
	}

	if err := s.checkOverlap(ctx, roomID, startTime, movie.Duration(), uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	screening := &entity.Screening{
		MovieID:        movieID,
		RoomID:         roomID,
		StartTime:      startTime,
		RemainingSeats: room.TotalSeats,
	}
	screening.ID = uuid.New()
	screening.CreatedAt = now
	screening.UpdatedAt = now

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		s.log.Error("Failed to create screening", zap.Error(err))
		return nil, fmt.Errorf("create screening: %w", err)
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.Int("seats", screening.RemainingSeats),
	)

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) GetScreeningByID(ctx context.Context, screeningID string) (*response.ScreeningResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, entity.ErrScreeningNotFound
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find screening: %w", err)
	}
	if screening == nil {
		return nil, entity.ErrScreeningNotFound
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) GetUpcoming(ctx context.Context, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ScreeningResponse], error) {
	screenings, err := s.repo.Screening.FindUpcoming(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list screenings: %w", err)
	}

	total, err := s.repo.Screening.CountUpcoming(ctx)
	if err != nil {
		return nil, fmt.Errorf("count screenings: %w", err)
	}

	resp := response.NewPaginatedResponse(
		response.ScreeningsToResponse(screenings),
		page.Page, page.Limit(), int(total),
	)
	return &resp, nil
}

func (s *screeningService) GetByMovie(ctx context.Context, movieID string) ([]response.ScreeningResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, entity.ErrMovieNotFound
	}

	screenings, err := s.repo.Screening.FindByMovieID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find screenings: %w", err)
	}

	return response.ScreeningsToResponse(screenings), nil
}

// UpdateScreening moves or reassigns a screening. The remaining seat
// counter is never touched here; only room changes reseed it, and only
// while no reservations exist.
func (s *screeningService) UpdateScreening(ctx context.Context, screeningID string, req *request.ScreeningUpdateRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, entity.ErrScreeningNotFound
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find screening: %w", err)
	}
	if screening == nil {
		return nil, entity.ErrScreeningNotFound
	}

	if req.MovieID != nil {
		movieID, err := uuid.Parse(*req.MovieID)
		if err != nil {
			return nil, entity.ErrMovieNotFound
		}
		movie, err := s.repo.Movie.FindByID(ctx, movieID)
		if err != nil {
			return nil, fmt.Errorf("find movie: %w", err)
		}
		if movie == nil {
			return nil, entity.ErrMovieNotFound
		}
		screening.MovieID = movieID
	}

	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, entity.ErrRoomNotFound
		}
		room, err := s.repo.Room.FindByID(ctx, roomID)
		if err != nil {
			return nil, fmt.Errorf("find room: %w", err)
		}
		if room == nil {
			return nil, entity.ErrRoomNotFound
		}
		if roomID != screening.RoomID {
			reservations, err := s.repo.Reservation.FindByScreeningID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("find reservations: %w", err)
			}
			if len(reservations) > 0 {
				return nil, entity.ErrRoomHasScreenings
			}
			screening.RoomID = roomID
			screening.RemainingSeats = room.TotalSeats
		}
	}

	if req.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %s: %w", *req.StartTime, err)
		}
		screening.StartTime = startTime
	}

	movie, err := s.repo.Movie.FindByID(ctx, screening.MovieID)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	if err := s.checkOverlap(ctx, screening.RoomID, screening.StartTime, movie.Duration(), id); err != nil {
		return nil, err
	}

	screening.UpdatedAt = time.Now()

	if err := s.repo.Screening.Update(ctx, screening); err != nil {
		s.log.Error("Failed to update screening", zap.Error(err))
		return nil, fmt.Errorf("update screening: %w", err)
	}

	resp := response.ScreeningToResponse(screening)
	return &resp, nil
}

func (s *screeningService) DeleteScreening(ctx context.Context, screeningID string) error {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return entity.ErrScreeningNotFound
	}

	screening, err := s.repo.Screening.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find screening: %w", err)
	}
	if screening == nil {
		return entity.ErrScreeningNotFound
	}

	if err := s.repo.Screening.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete screening", zap.Error(err))
		return fmt.Errorf("delete screening: %w", err)
	}

	s.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}
