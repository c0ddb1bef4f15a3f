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

type ScreeningHandler struct {
	service usecase.ScreeningService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// CreateScreening handles POST /api/screenings (admin)
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "success", screening)
}

// GetScreening handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreening(w http.ResponseWriter, r *http.Request) {
	screening, err := h.service.GetScreeningByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get screening")
		return
	}

	utils.ResponseSuccess(w, "success", screening)
}

// GetUpcoming handles GET /api/screenings
func (h *ScreeningHandler) GetUpcoming(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.GetUpcoming(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "list screenings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetByMovie handles GET /api/movies/{id}/screenings
func (h *ScreeningHandler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.GetByMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "list movie screenings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// UpdateScreening handles PUT /api/screenings/{id} (admin)
func (h *ScreeningHandler) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.UpdateScreening(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update screening")
		return
	}

	utils.ResponseSuccess(w, "success", screening)
}

// DeleteScreening handles DELETE /api/screenings/{id} (admin)
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScreening(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
