package repository

import (
	"context"
	"fmt"

	"cinema-chain/internal/data/entity"
	"cinema-chain/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReservationRepository serves plain reads. All mutations of reservation
// rows go through InventoryRepository so the counter and the row always
// move in the same transaction.
type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Reservation, error)
	CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error)
	FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, screening_id, customer_id, booked_seats, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.ScreeningID,
		&reservation.CustomerID,
		&reservation.BookedSeats,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT id, screening_id, customer_id, booked_seats, status, created_at, updated_at
		FROM reservations
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return nil, fmt.Errorf("find reservations by customer ID %s: %w", customerID.String(), err)
	}
	defer rows.Close()

	return scanReservations(rows, r.log)
}

func (r *reservationRepository) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservations WHERE customer_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, customerID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations by customer ID",
			zap.Error(err),
			zap.String("customer_id", customerID.String()),
		)
		return 0, fmt.Errorf("count reservations by customer ID %s: %w", customerID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT id, screening_id, customer_id, booked_seats, status, created_at, updated_at
		FROM reservations
		WHERE screening_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, screeningID)
	if err != nil {
		r.log.Error("Failed to find reservations by screening ID",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find reservations by screening ID %s: %w", screeningID.String(), err)
	}
	defer rows.Close()

	return scanReservations(rows, r.log)
}

func scanReservations(rows pgx.Rows, log *zap.Logger) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.ScreeningID,
			&reservation.CustomerID,
			&reservation.BookedSeats,
			&reservation.Status,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}
