package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// InventoryRepository owns every mutation of a screening's seat counter.
// Each operation is one transaction: the counter row is locked with
// SELECT ... FOR UPDATE, the capacity rule is re-checked under the lock,
// and the counter plus the reservation row commit together. Operations on
// different screenings never contend; operations on the same screening
// serialize on the row lock.
type InventoryRepository interface {
	ReserveSeats(ctx context.Context, reservation *entity.Reservation) error
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Reservation, error)
	RemainingSeats(ctx context.Context, screeningID uuid.UUID) (int, error)
}

type inventoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInventoryRepository(db database.PgxIface, log *zap.Logger) InventoryRepository {
	return &inventoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inventory")),
	}
}

func (r *inventoryRepository) ReserveSeats(ctx context.Context, reservation *entity.Reservation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return mapStoreError(fmt.Errorf("begin reserve tx: %w", err))
	}
	defer tx.Rollback(ctx)

	// Lock the counter row. Everything after this line holds exclusivity
	// for the screening until commit or rollback.
	lockQuery := `
		SELECT start_time, remaining_seats
		FROM screenings
		WHERE id = $1
		FOR UPDATE
	`

	var screening entity.Screening
	screening.ID = reservation.ScreeningID
	err = tx.QueryRow(ctx, lockQuery, reservation.ScreeningID).Scan(
		&screening.StartTime,
		&screening.RemainingSeats,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrScreeningNotFound
	}
	if err != nil {
		return mapStoreError(fmt.Errorf("lock screening %s: %w", reservation.ScreeningID.String(), err))
	}

	// Commit-time re-check, not request-time.
	if err := screening.CheckReserve(reservation.BookedSeats, time.Now()); err != nil {
		return err
	}

	updateQuery := `
		UPDATE screenings
		SET remaining_seats = remaining_seats - $2, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, updateQuery, reservation.ScreeningID, reservation.BookedSeats); err != nil {
		return mapStoreError(fmt.Errorf("decrement seats for screening %s: %w", reservation.ScreeningID.String(), err))
	}

	insertQuery := `
		INSERT INTO reservations (id, screening_id, customer_id, booked_seats, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = tx.Exec(ctx, insertQuery,
		reservation.ID,
		reservation.ScreeningID,
		reservation.CustomerID,
		reservation.BookedSeats,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)
	if err != nil {
		return mapStoreError(fmt.Errorf("insert reservation %s: %w", reservation.ID.String(), err))
	}

	if err := tx.Commit(ctx); err != nil {
		return mapStoreError(fmt.Errorf("commit reserve %s: %w", reservation.ID.String(), err))
	}

	return nil
}

func (r *inventoryRepository) CancelReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Reservation, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, mapStoreError(fmt.Errorf("begin cancel tx: %w", err))
	}
	defer tx.Rollback(ctx)

	lockQuery := `
		SELECT id, screening_id, customer_id, booked_seats, status, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE
	`

	var reservation entity.Reservation
	err = tx.QueryRow(ctx, lockQuery, reservationID).Scan(
		&reservation.ID,
		&reservation.ScreeningID,
		&reservation.CustomerID,
		&reservation.BookedSeats,
		&reservation.Status,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, entity.ErrReservationNotFound
	}
	if err != nil {
		return nil, mapStoreError(fmt.Errorf("lock reservation %s: %w", reservationID.String(), err))
	}

	// Terminal states stay terminal. A repeated cancel moves nothing.
	if !reservation.Active() {
		return nil, entity.ErrAlreadyCancelled
	}

	updateRes := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, updateRes, reservationID, entity.ReservationStatusCancelled); err != nil {
		return nil, mapStoreError(fmt.Errorf("mark reservation %s cancelled: %w", reservationID.String(), err))
	}

	releaseQuery := `
		UPDATE screenings
		SET remaining_seats = remaining_seats + $2, updated_at = NOW()
		WHERE id = $1
	`
	if _, err := tx.Exec(ctx, releaseQuery, reservation.ScreeningID, reservation.BookedSeats); err != nil {
		return nil, mapStoreError(fmt.Errorf("release seats for screening %s: %w", reservation.ScreeningID.String(), err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, mapStoreError(fmt.Errorf("commit cancel %s: %w", reservationID.String(), err))
	}

	reservation.Status = entity.ReservationStatusCancelled
	return &reservation, nil
}

// RemainingSeats is a point-in-time read; it takes no lock and may be
// stale by one in-flight transaction.
func (r *inventoryRepository) RemainingSeats(ctx context.Context, screeningID uuid.UUID) (int, error) {
	query := `SELECT remaining_seats FROM screenings WHERE id = $1`

	var remaining int
	err := r.db.QueryRow(ctx, query, screeningID).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, entity.ErrScreeningNotFound
	}
	if err != nil {
		return 0, mapStoreError(fmt.Errorf("read remaining seats for screening %s: %w", screeningID.String(), err))
	}

	return remaining, nil
}

// mapStoreError folds driver failures into the inventory taxonomy.
// Serialization failures, deadlocks and lock timeouts become ErrConflict;
// connection-level and resource failures become ErrStoreUnavailable;
// context expiry becomes ErrTimeout. Anything else passes through wrapped.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", entity.ErrTimeout, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %v", entity.ErrConflict, err)
		}
		if len(pgErr.Code) >= 2 {
			switch pgErr.Code[:2] {
			case "08", "53", "57":
				return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
			}
		}
		return err
	}

	if pgconn.SafeToRetry(err) {
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return err
}
