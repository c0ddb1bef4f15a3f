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

type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error)
	FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Cinema, error)
	CountAll(ctx context.Context, cityFilter *string) (int64, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	query := `
		INSERT INTO cinemas (id, name, address, city, zip_code, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		cinema.ID,
		cinema.Name,
		cinema.Address,
		cinema.City,
		cinema.ZipCode,
		cinema.Email,
		cinema.CreatedAt,
		cinema.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("name", cinema.Name),
		)
		return fmt.Errorf("create cinema %s: %w", cinema.Name, err)
	}

	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	query := `
		SELECT id, name, address, city, zip_code, email, created_at, updated_at
		FROM cinemas
		WHERE id = $1
	`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.City,
		&cinema.ZipCode,
		&cinema.Email,
		&cinema.CreatedAt,
		&cinema.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.String("cinema_id", id.String()),
		)
		return nil, fmt.Errorf("find cinema by ID %s: %w", id.String(), err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Cinema, error) {
	query := `
		SELECT id, name, address, city, zip_code, email, created_at, updated_at
		FROM cinemas
		WHERE ($3::text IS NULL OR city ILIKE $3)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, cityFilter)
	if err != nil {
		r.log.Error("Failed to find cinemas",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []*entity.Cinema
	for rows.Next() {
		var cinema entity.Cinema
		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.Address,
			&cinema.City,
			&cinema.ZipCode,
			&cinema.Email,
			&cinema.CreatedAt,
			&cinema.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	return cinemas, nil
}

func (r *cinemaRepository) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	query := `SELECT COUNT(*) FROM cinemas WHERE ($1::text IS NULL OR city ILIKE $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, cityFilter).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count cinemas", zap.Error(err))
		return 0, fmt.Errorf("count cinemas: %w", err)
	}

	return count, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `
		UPDATE cinemas
		SET name = $2, address = $3, city = $4, zip_code = $5, email = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		cinema.ID,
		cinema.Name,
		cinema.Address,
		cinema.City,
		cinema.ZipCode,
		cinema.Email,
		cinema.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.String("cinema_id", cinema.ID.String()),
		)
		return fmt.Errorf("update cinema %s: %w", cinema.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrCinemaNotFound
	}

	return nil
}

// Delete removes the cinema and everything it owns, child-first in one
// transaction: reservations, screenings, rooms, announcements, then the
// cinema row itself.
func (r *cinemaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete cinema tx: %w", err)
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM reservations WHERE screening_id IN (
			SELECT s.id FROM screenings s
			JOIN screening_rooms sr ON sr.id = s.room_id
			WHERE sr.cinema_id = $1)`,
		`DELETE FROM screenings WHERE room_id IN (
			SELECT id FROM screening_rooms WHERE cinema_id = $1)`,
		`DELETE FROM screening_rooms WHERE cinema_id = $1`,
		`DELETE FROM announcements WHERE cinema_id = $1`,
	}

	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			r.log.Error("Failed cascade delete step",
				zap.Error(err),
				zap.String("cinema_id", id.String()),
			)
			return fmt.Errorf("cascade delete cinema %s: %w", id.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM cinemas WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete cinema",
			zap.Error(err),
			zap.String("cinema_id", id.String()),
		)
		return fmt.Errorf("delete cinema %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrCinemaNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete cinema %s: %w", id.String(), err)
	}

	r.log.Info("Cinema deleted", zap.String("cinema_id", id.String()))
	return nil
}
