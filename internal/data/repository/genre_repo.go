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

type GenreRepository interface {
	Create(ctx context.Context, genre *entity.Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	FindAll(ctx context.Context) ([]*entity.Genre, error)
}

type genreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGenreRepository(db database.PgxIface, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *entity.Genre) error {
	query := `INSERT INTO genres (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, genre.ID, genre.Name, genre.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create genre",
			zap.Error(err),
			zap.String("name", genre.Name),
		)
		return fmt.Errorf("create genre %s: %w", genre.Name, err)
	}

	return nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres WHERE id = $1`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Name, &genre.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by ID %s: %w", id.String(), err)
	}

	return &genre, nil
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `SELECT id, name, created_at FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Name, &genre.CreatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre row: %w", err)
		}
		genres = append(genres, &genre)
	}

	return genres, nil
}
