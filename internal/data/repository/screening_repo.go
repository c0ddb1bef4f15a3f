package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Screening, error)
	FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error)
	FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Screening, error)
	CountUpcoming(ctx context.Context) (int64, error)
	// HasOverlap reports whether another screening in the room intersects
	// the [start, end) window. excludeID skips the screening being updated.
	HasOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, screening *entity.Screening) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (id, movie_id, room_id, start_time, remaining_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.StartTime,
		screening.RemainingSeats,
		screening.CreatedAt,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("movie_id", screening.MovieID.String()),
			zap.String("room_id", screening.RoomID.String()),
			zap.Time("start_time", screening.StartTime),
		)
		return fmt.Errorf("create screening for movie %s room %s: %w",
			screening.MovieID.String(), screening.RoomID.String(), err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, remaining_seats, created_at, updated_at
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.MovieID,
		&screening.RoomID,
		&screening.StartTime,
		&screening.RemainingSeats,
		&screening.CreatedAt,
		&screening.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening by ID %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, remaining_seats, created_at, updated_at
		FROM screenings
		WHERE movie_id = $1
		ORDER BY start_time
	`

	return r.queryMany(ctx, query, movieID)
}

func (r *screeningRepository) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, remaining_seats, created_at, updated_at
		FROM screenings
		WHERE room_id = $1
		ORDER BY start_time
	`

	return r.queryMany(ctx, query, roomID)
}

func (r *screeningRepository) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Screening, error) {
	query := `
		SELECT id, movie_id, room_id, start_time, remaining_seats, created_at, updated_at
		FROM screenings
		WHERE start_time > NOW()
		ORDER BY start_time
		LIMIT $1 OFFSET $2
	`

	return r.queryMany(ctx, query, limit, offset)
}

func (r *screeningRepository) CountUpcoming(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM screenings WHERE start_time > NOW()`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count upcoming screenings", zap.Error(err))
		return 0, fmt.Errorf("count upcoming screenings: %w", err)
	}

	return count, nil
}

func (r *screeningRepository) HasOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	// Sibling windows are [start_time, start_time + movie duration).
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM screenings s
			JOIN movies m ON m.id = s.movie_id
			WHERE s.room_id = $1
			  AND s.id <> $4
			  AND s.start_time < $3
			  AND s.start_time + (m.duration_in_minutes * INTERVAL '1 minute') > $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, roomID, start, end, excludeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check screening overlap",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("start", start),
		)
		return false, fmt.Errorf("check screening overlap in room %s: %w", roomID.String(), err)
	}

	return exists, nil
}

func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	query := `
		UPDATE screenings
		SET movie_id = $2, room_id = $3, start_time = $4, remaining_seats = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.StartTime,
		screening.RemainingSeats,
		screening.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.String("screening_id", screening.ID.String()),
		)
		return fmt.Errorf("update screening %s: %w", screening.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrScreeningNotFound
	}

	return nil
}

// Delete removes the screening and its reservations in one transaction.
func (r *screeningRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete screening tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM reservations WHERE screening_id = $1`, id); err != nil {
		r.log.Error("Failed to delete reservations for screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("cascade delete screening %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return fmt.Errorf("delete screening %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrScreeningNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete screening %s: %w", id.String(), err)
	}

	r.log.Info("Screening deleted", zap.String("screening_id", id.String()))
	return nil
}

func (r *screeningRepository) queryMany(ctx context.Context, query string, args ...any) ([]*entity.Screening, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query screenings", zap.Error(err))
		return nil, fmt.Errorf("query screenings: %w", err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.MovieID,
			&screening.RoomID,
			&screening.StartTime,
			&screening.RemainingSeats,
			&screening.CreatedAt,
			&screening.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	return screenings, nil
}
