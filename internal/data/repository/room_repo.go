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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.ScreeningRoom) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScreeningRoom, error)
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error)
	HasScreenings(ctx context.Context, roomID uuid.UUID) (bool, error)
	Update(ctx context.Context, room *entity.ScreeningRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.ScreeningRoom) error {
	query := `
		INSERT INTO screening_rooms (id, cinema_id, name, total_seats, is_3d, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.CinemaID,
		room.Name,
		room.TotalSeats,
		room.Is3D,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening room",
			zap.Error(err),
			zap.String("cinema_id", room.CinemaID.String()),
			zap.String("name", room.Name),
		)
		return fmt.Errorf("create screening room %s: %w", room.Name, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScreeningRoom, error) {
	query := `
		SELECT id, cinema_id, name, total_seats, is_3d, created_at, updated_at
		FROM screening_rooms
		WHERE id = $1
	`

	var room entity.ScreeningRoom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.CinemaID,
		&room.Name,
		&room.TotalSeats,
		&room.Is3D,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find screening room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error) {
	query := `
		SELECT id, cinema_id, name, total_seats, is_3d, created_at, updated_at
		FROM screening_rooms
		WHERE cinema_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find rooms by cinema ID",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("find rooms by cinema ID %s: %w", cinemaID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.ScreeningRoom
	for rows.Next() {
		var room entity.ScreeningRoom
		err := rows.Scan(
			&room.ID,
			&room.CinemaID,
			&room.Name,
			&room.TotalSeats,
			&room.Is3D,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) HasScreenings(ctx context.Context, roomID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM screenings WHERE room_id = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, roomID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check screenings for room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("check screenings for room %s: %w", roomID.String(), err)
	}

	return exists, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.ScreeningRoom) error {
	query := `
		UPDATE screening_rooms
		SET name = $2, total_seats = $3, is_3d = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.Name,
		room.TotalSeats,
		room.Is3D,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update screening room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update screening room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrRoomNotFound
	}

	return nil
}

// Delete removes the room with its screenings and their reservations,
// child-first in one transaction.
func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete room tx: %w", err)
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM reservations WHERE screening_id IN (
			SELECT id FROM screenings WHERE room_id = $1)`,
		`DELETE FROM screenings WHERE room_id = $1`,
	}

	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			r.log.Error("Failed cascade delete step",
				zap.Error(err),
				zap.String("room_id", id.String()),
			)
			return fmt.Errorf("cascade delete room %s: %w", id.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM screening_rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete screening room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete screening room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrRoomNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete room %s: %w", id.String(), err)
	}

	r.log.Info("Screening room deleted", zap.String("room_id", id.String()))
	return nil
}
