package response

import (
	"cinema-chain/internal/data/entity"
)

type MovieResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	GenreID           string  `json:"genre_id"`
	DurationInMinutes int     `json:"duration_in_minutes"`
	ReleaseDate       string  `json:"release_date"`
	PosterURL         *string `json:"poster_url,omitempty"`
}

type GenreResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:                movie.ID.String(),
		Title:             movie.Title,
		Description:       movie.Description,
		GenreID:           movie.GenreID.String(),
		DurationInMinutes: movie.DurationInMinutes,
		ReleaseDate:       movie.ReleaseDate.Format("2006-01-02"),
		PosterURL:         movie.PosterURL,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	resp := make([]MovieResponse, 0, len(movies))
	for i := range movies {
		resp = append(resp, MovieToResponse(movies[i]))
	}
	return resp
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:   genre.ID.String(),
		Name: genre.Name,
	}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	resp := make([]GenreResponse, 0, len(genres))
	for i := range genres {
		resp = append(resp, GenreToResponse(genres[i]))
	}
	return resp
}
