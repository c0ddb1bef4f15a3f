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

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindAll(ctx context.Context, limit, offset int, genreID *uuid.UUID) ([]*entity.Movie, error)
	CountAll(ctx context.Context, genreID *uuid.UUID) (int64, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, description, genre_id, duration_in_minutes, release_date, poster_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.GenreID,
		movie.DurationInMinutes,
		movie.ReleaseDate,
		movie.PosterURL,
		movie.CreatedAt,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre_id, duration_in_minutes, release_date, poster_url, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.GenreID,
		&movie.DurationInMinutes,
		&movie.ReleaseDate,
		&movie.PosterURL,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, limit, offset int, genreID *uuid.UUID) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre_id, duration_in_minutes, release_date, poster_url, created_at, updated_at
		FROM movies
		WHERE ($3::uuid IS NULL OR genre_id = $3)
		ORDER BY release_date DESC, title
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, genreID)
	if err != nil {
		r.log.Error("Failed to find movies",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.GenreID,
			&movie.DurationInMinutes,
			&movie.ReleaseDate,
			&movie.PosterURL,
			&movie.CreatedAt,
			&movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context, genreID *uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM movies WHERE ($1::uuid IS NULL OR genre_id = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, genreID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, description = $3, genre_id = $4, duration_in_minutes = $5,
		    release_date = $6, poster_url = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.Description,
		movie.GenreID,
		movie.DurationInMinutes,
		movie.ReleaseDate,
		movie.PosterURL,
		movie.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID.String()),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrMovieNotFound
	}

	return nil
}

// Delete removes the movie with its screenings and their reservations,
// child-first in one transaction.
func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete movie tx: %w", err)
	}
	defer tx.Rollback(ctx)

	steps := []string{
		`DELETE FROM reservations WHERE screening_id IN (
			SELECT id FROM screenings WHERE movie_id = $1)`,
		`DELETE FROM screenings WHERE movie_id = $1`,
	}

	for _, step := range steps {
		if _, err := tx.Exec(ctx, step, id); err != nil {
			r.log.Error("Failed cascade delete step",
				zap.Error(err),
				zap.String("movie_id", id.String()),
			)
			return fmt.Errorf("cascade delete movie %s: %w", id.String(), err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return fmt.Errorf("delete movie %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrMovieNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete movie %s: %w", id.String(), err)
	}

	r.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}
