package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/dto/response"
	"cinema-chain/internal/queue"
	"cinema-chain/pkg/cache"
	"cinema-chain/pkg/metrics"
	"cinema-chain/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService is the seat inventory manager. Every mutation is an
// atomic store transaction; the service adds the per-call deadline,
// bounded retry on transient store errors, cache invalidation and event
// publication around it.
type InventoryService interface {
	Reserve(ctx context.Context, customerID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, callerID, callerRole, reservationID string) (*response.ReservationResponse, error)
	Availability(ctx context.Context, screeningID string) (*response.AvailabilityResponse, error)
	GetCustomerReservations(ctx context.Context, customerID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
}

type inventoryService struct {
	repo         *repository.Repository
	config       utils.InventoryConfig
	availability *cache.AvailabilityCache
	publisher    *queue.Publisher
	log          *zap.Logger
}

func NewInventoryService(
	repo *repository.Repository,
	config utils.InventoryConfig,
	availability *cache.AvailabilityCache,
	publisher *queue.Publisher,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{
		repo:         repo,
		config:       config,
		availability: availability,
		publisher:    publisher,
		log:          log.With(zap.String("service", "inventory")),
	}
}

// withDeadline bounds a single reserve/cancel call. The deadline covers
// all retry attempts, not each attempt separately.
func (s *inventoryService) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.OperationTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.config.OperationTimeout)
}

// retry runs op, retrying transient store failures with a fixed delay
// until attempts or the deadline run out. Terminal taxonomy errors pass
// through untouched on the first occurrence.
func (s *inventoryService) retry(ctx context.Context, op func(context.Context) error) error {
	attempts := s.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = op(ctx)
		if err == nil || !entity.Transient(err) {
			return err
		}

		if i == attempts-1 {
			break
		}

		s.log.Warn("Transient store failure, retrying",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return entity.ErrTimeout
		case <-time.After(s.config.RetryDelay):
		}
	}
	return err
}

func reserveResult(err error) string {
	switch {
	case err == nil:
		return "committed"
	case errors.Is(err, entity.ErrInsufficientSeats):
		return "insufficient_seats"
	case errors.Is(err, entity.ErrScreeningClosed):
		return "screening_closed"
	case errors.Is(err, entity.ErrConflict):
		return "conflict"
	case errors.Is(err, entity.ErrTimeout):
		return "timeout"
	default:
		return "error"
	}
}

func (s *inventoryService) Reserve(ctx context.Context, customerID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %s: %w", customerID, err)
	}

	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, entity.ErrScreeningNotFound
	}

	now := time.Now()
	reservation := &entity.Reservation{
		ScreeningID: screeningID,
		CustomerID:  customerUUID,
		BookedSeats: req.RequestedSeats,
		Status:      entity.ReservationStatusCommitted,
	}
	reservation.ID = uuid.New()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	opCtx, cancel := s.withDeadline(ctx)
	defer cancel()

	timer := time.Now()
	err = s.retry(opCtx, func(c context.Context) error {
		return s.repo.Inventory.ReserveSeats(c, reservation)
	})
	metrics.ReserveDuration.Observe(time.Since(timer).Seconds())
	metrics.ReservationsTotal.WithLabelValues(reserveResult(err)).Inc()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = entity.ErrTimeout
		}
		s.log.Warn("Reserve failed",
			zap.String("screening_id", screeningID.String()),
			zap.Int("seats", req.RequestedSeats),
			zap.Error(err),
		)
		return nil, err
	}

	s.availability.Invalidate(ctx, screeningID.String())
	s.publishEvent(queue.QueueReservationCommitted, reservation)

	s.log.Info("Reservation committed",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("screening_id", screeningID.String()),
		zap.Int("seats", reservation.BookedSeats),
	)

	resp := response.ReservationToResponse(reservation)
	return &resp, nil
}

// Cancel releases the reservation's seats. Idempotent: cancelling an
// already cancelled reservation returns AlreadyCancelled and the counter
// does not move again. Customers may only cancel their own reservations.
func (s *inventoryService) Cancel(ctx context.Context, callerID, callerRole, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, entity.ErrReservationNotFound
	}

	existing, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	if existing == nil {
		return nil, entity.ErrReservationNotFound
	}

	if entity.UserRole(callerRole) == entity.RoleCustomer {
		callerUUID, err := uuid.Parse(callerID)
		if err != nil || existing.CustomerID != callerUUID {
			return nil, entity.ErrReservationNotFound
		}
	}

	opCtx, cancel := s.withDeadline(ctx)
	defer cancel()

	var cancelled *entity.Reservation
	err = s.retry(opCtx, func(c context.Context) error {
		var opErr error
		cancelled, opErr = s.repo.Inventory.CancelReservation(c, id)
		return opErr
	})
	metrics.CancellationsTotal.WithLabelValues(reserveResult(err)).Inc()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = entity.ErrTimeout
		}
		return nil, err
	}

	s.availability.Invalidate(ctx, cancelled.ScreeningID.String())
	s.publishEvent(queue.QueueReservationCancelled, cancelled)

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", cancelled.ID.String()),
		zap.String("screening_id", cancelled.ScreeningID.String()),
	)

	resp := response.ReservationToResponse(cancelled)
	return &resp, nil
}

// Availability serves the remaining seat count, preferring the cache. A
// cached value is at most one TTL stale; mutations invalidate eagerly.
func (s *inventoryService) Availability(ctx context.Context, screeningID string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, entity.ErrScreeningNotFound
	}

	if seats, ok := s.availability.Get(ctx, id.String()); ok {
		return &response.AvailabilityResponse{
			ScreeningID:    id.String(),
			RemainingSeats: seats,
		}, nil
	}

	seats, err := s.repo.Inventory.RemainingSeats(ctx, id)
	if err != nil {
		return nil, err
	}

	s.availability.Set(ctx, id.String(), seats)

	return &response.AvailabilityResponse{
		ScreeningID:    id.String(),
		RemainingSeats: seats,
	}, nil
}

func (s *inventoryService) GetCustomerReservations(ctx context.Context, customerID string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID %s: %w", customerID, err)
	}

	reservations, err := s.repo.Reservation.FindByCustomerID(ctx, customerUUID, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountByCustomerID(ctx, customerUUID)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	resp := response.NewPaginatedResponse(
		response.ReservationsToResponse(reservations),
		page.Page, page.Limit(), int(total),
	)
	return &resp, nil
}

// publishEvent is fire and forget: broker trouble never fails the
// reservation, the publisher already logged it.
func (s *inventoryService) publishEvent(queueName string, r *entity.Reservation) {
	if !s.publisher.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = s.publisher.Publish(ctx, queueName, queue.ReservationEvent{
		ReservationID: r.ID.String(),
		ScreeningID:   r.ScreeningID.String(),
		CustomerID:    r.CustomerID.String(),
		BookedSeats:   r.BookedSeats,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}
