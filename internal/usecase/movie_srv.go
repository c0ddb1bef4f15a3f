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

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetMovies(ctx context.Context, page *request.PaginatedRequest, genreID *string) (*response.PaginatedResponse[response.MovieResponse], error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error

	CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genreID, err := uuid.Parse(req.GenreID)
	if err != nil {
		return nil, entity.ErrGenreNotFound
	}

	genre, err := s.repo.Genre.FindByID(ctx, genreID)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, entity.ErrGenreNotFound
	}

	releaseDate, err := time.Parse("2006-01-02", req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("invalid release date %s: %w", req.ReleaseDate, err)
	}

	now := time.Now()
	movie := &entity.Movie{
		Title:             req.Title,
		Description:       req.Description,
		GenreID:           genreID,
		DurationInMinutes: req.DurationInMinutes,
		ReleaseDate:       releaseDate,
		PosterURL:         req.PosterURL,
	}
	movie.ID = uuid.New()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created", zap.String("movie_id", movie.ID.String()))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, entity.ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovies(ctx context.Context, page *request.PaginatedRequest, genreID *string) (*response.PaginatedResponse[response.MovieResponse], error) {
	var genreFilter *uuid.UUID
	if genreID != nil && *genreID != "" {
		parsed, err := uuid.Parse(*genreID)
		if err != nil {
			return nil, entity.ErrGenreNotFound
		}
		genreFilter = &parsed
	}

	movies, err := s.repo.Movie.FindAll(ctx, page.Limit(), page.Offset(), genreFilter)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}

	total, err := s.repo.Movie.CountAll(ctx, genreFilter)
	if err != nil {
		return nil, fmt.Errorf("count movies: %w", err)
	}

	resp := response.NewPaginatedResponse(
		response.MoviesToResponse(movies),
		page.Page, page.Limit(), int(total),
	)
	return &resp, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, entity.ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, entity.ErrMovieNotFound
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.GenreID != nil {
		genreID, err := uuid.Parse(*req.GenreID)
		if err != nil {
			return nil, entity.ErrGenreNotFound
		}
		genre, err := s.repo.Genre.FindByID(ctx, genreID)
		if err != nil {
			return nil, fmt.Errorf("find genre: %w", err)
		}
		if genre == nil {
			return nil, entity.ErrGenreNotFound
		}
		movie.GenreID = genreID
	}
	if req.DurationInMinutes != nil {
		movie.DurationInMinutes = *req.DurationInMinutes
	}
	if req.ReleaseDate != nil {
		releaseDate, err := time.Parse("2006-01-02", *req.ReleaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid release date %s: %w", *req.ReleaseDate, err)
		}
		movie.ReleaseDate = releaseDate
	}
	if req.PosterURL != nil {
		movie.PosterURL = req.PosterURL
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		s.log.Error("Failed to update movie", zap.Error(err))
		return nil, fmt.Errorf("update movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return entity.ErrMovieNotFound
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return entity.ErrMovieNotFound
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err))
		return fmt.Errorf("delete movie: %w", err)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", id.String()))
	return nil
}

func (s *movieService) CreateGenre(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := &entity.Genre{Name: req.Name}
	genre.ID = uuid.New()
	genre.CreatedAt = time.Now()

	if err := s.repo.Genre.Create(ctx, genre); err != nil {
		s.log.Error("Failed to create genre", zap.Error(err))
		return nil, fmt.Errorf("create genre: %w", err)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *movieService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}
