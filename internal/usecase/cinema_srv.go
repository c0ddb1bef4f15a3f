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

type CinemaService interface {
	CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error)
	GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error)
	GetCinemas(ctx context.Context, page *request.PaginatedRequest, city *string) (*response.PaginatedResponse[response.CinemaResponse], error)
	UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error)
	DeleteCinema(ctx context.Context, cinemaID string) error

	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetRoomsByCinema(ctx context.Context, cinemaID string) ([]response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID string) error
}

type cinemaService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCinemaService(repo *repository.Repository, log *zap.Logger) CinemaService {
	return &cinemaService{
		repo: repo,
		log:  log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	cinema := &entity.Cinema{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		ZipCode: req.ZipCode,
		Email:   req.Email,
	}
	cinema.ID = uuid.New()
	cinema.CreatedAt = now
	cinema.UpdatedAt = now

	if err := s.repo.Cinema.Create(ctx, cinema); err != nil {
		s.log.Error("Failed to create cinema", zap.Error(err))
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created", zap.String("cinema_id", cinema.ID.String()))

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

func (s *cinemaService) GetCinemaByID(ctx context.Context, cinemaID string) (*response.CinemaDetailResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, entity.ErrCinemaNotFound
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, entity.ErrCinemaNotFound
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}

	resp := response.CinemaToDetailResponse(cinema, rooms)
	return &resp, nil
}

func (s *cinemaService) GetCinemas(ctx context.Context, page *request.PaginatedRequest, city *string) (*response.PaginatedResponse[response.CinemaResponse], error) {
	cinemas, err := s.repo.Cinema.FindAll(ctx, page.Limit(), page.Offset(), city)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}

	total, err := s.repo.Cinema.CountAll(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("count cinemas: %w", err)
	}

	resp := response.NewPaginatedResponse(
		response.CinemasToResponse(cinemas),
		page.Page, page.Limit(), int(total),
	)
	return &resp, nil
}

func (s *cinemaService) UpdateCinema(ctx context.Context, cinemaID string, req *request.CinemaUpdateRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, entity.ErrCinemaNotFound
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return nil, entity.ErrCinemaNotFound
	}

	if req.Name != nil {
		cinema.Name = *req.Name
	}
	if req.Address != nil {
		cinema.Address = *req.Address
	}
	if req.City != nil {
		cinema.City = *req.City
	}
	if req.ZipCode != nil {
		cinema.ZipCode = *req.ZipCode
	}
	if req.Email != nil {
		cinema.Email = *req.Email
	}
	cinema.UpdatedAt = time.Now()

	if err := s.repo.Cinema.Update(ctx, cinema); err != nil {
		s.log.Error("Failed to update cinema", zap.Error(err))
		return nil, fmt.Errorf("update cinema: %w", err)
	}

	resp := response.CinemaToResponse(cinema)
	return &resp, nil
}

// DeleteCinema removes the cinema and everything owned by it. The store
// deletes reservations, screenings, rooms and announcements child first
// inside one transaction.
func (s *cinemaService) DeleteCinema(ctx context.Context, cinemaID string) error {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return entity.ErrCinemaNotFound
	}

	cinema, err := s.repo.Cinema.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find cinema: %w", err)
	}
	if cinema == nil {
		return entity.ErrCinemaNotFound
	}

	if err := s.repo.Cinema.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete cinema", zap.Error(err))
		return fmt.Errorf("delete cinema: %w", err)
	}

	s.log.Info("Cinema deleted", zap.String("cinema_id", id.String()))
	return nil
}

func (s *cinemaService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
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

	now := time.Now()
	room := &entity.ScreeningRoom{
		CinemaID:   cinemaID,
		Name:       req.Name,
		TotalSeats: req.TotalSeats,
		Is3D:       req.Is3D,
	}
	room.ID = uuid.New()
	room.CreatedAt = now
	room.UpdatedAt = now

	if err := s.repo.Room.Create(ctx, room); err != nil {
		s.log.Error("Failed to create room", zap.Error(err))
		return nil, fmt.Errorf("create room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *cinemaService) GetRoomsByCinema(ctx context.Context, cinemaID string) ([]response.RoomResponse, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, entity.ErrCinemaNotFound
	}

	rooms, err := s.repo.Room.FindByCinemaID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find rooms: %w", err)
	}

	return response.RoomsToResponse(rooms), nil
}

// UpdateRoom renames or reconfigures a room. Capacity is frozen once the
// room has screenings: remaining seat counters were seeded from it and
// changing it would break the capacity invariant for live screenings.
func (s *cinemaService) UpdateRoom(ctx context.Context, roomID string, req *request.RoomUpdateRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, entity.ErrRoomNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, entity.ErrRoomNotFound
	}

	if req.TotalSeats != nil && *req.TotalSeats != room.TotalSeats {
		has, err := s.repo.Room.HasScreenings(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check screenings: %w", err)
		}
		if has {
			return nil, entity.ErrRoomHasScreenings
		}
		room.TotalSeats = *req.TotalSeats
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Is3D != nil {
		room.Is3D = *req.Is3D
	}
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		s.log.Error("Failed to update room", zap.Error(err))
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *cinemaService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return entity.ErrRoomNotFound
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return entity.ErrRoomNotFound
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete room", zap.Error(err))
		return fmt.Errorf("delete room: %w", err)
	}

	return nil
}
