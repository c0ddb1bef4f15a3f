package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/usecase"
	"cinema-chain/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /api/movies (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "success", movie)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovieByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	page := paginationFromQuery(r)

	var genreID *string
	if g := r.URL.Query().Get("genre_id"); g != "" {
		genreID = &g
	}

	movies, err := h.service.GetMovies(r.Context(), page, genreID)
	if err != nil {
		handleServiceError(h.log, w, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// UpdateMovie handles PUT /api/movies/{id} (admin)
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// DeleteMovie handles DELETE /api/movies/{id} (admin)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteMovie(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateGenre handles POST /api/genres (admin)
func (h *MovieHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	genre, err := h.service.CreateGenre(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "success", genre)
}

// GetGenres handles GET /api/genres
func (h *MovieHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list genres")
		return
	}

	utils.ResponseSuccess(w, "success", genres)
}
