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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema")),
	}
}

// CreateCinema handles POST /api/cinemas (admin)
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "success", cinema)
}

// GetCinema handles GET /api/cinemas/{id}
func (h *CinemaHandler) GetCinema(w http.ResponseWriter, r *http.Request) {
	cinema, err := h.service.GetCinemaByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// GetCinemas handles GET /api/cinemas
func (h *CinemaHandler) GetCinemas(w http.ResponseWriter, r *http.Request) {
	page := paginationFromQuery(r)

	var city *string
	if c := r.URL.Query().Get("city"); c != "" {
		city = &c
	}

	cinemas, err := h.service.GetCinemas(r.Context(), page, city)
	if err != nil {
		handleServiceError(h.log, w, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// UpdateCinema handles PUT /api/cinemas/{id} (admin)
func (h *CinemaHandler) UpdateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.UpdateCinema(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// DeleteCinema handles DELETE /api/cinemas/{id} (admin)
func (h *CinemaHandler) DeleteCinema(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCinema(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete cinema")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateRoom handles POST /api/rooms (admin)
func (h *CinemaHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// GetCinemaRooms handles GET /api/cinemas/{id}/rooms
func (h *CinemaHandler) GetCinemaRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRoomsByCinema(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// UpdateRoom handles PUT /api/rooms/{id} (admin)
func (h *CinemaHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/rooms/{id} (admin)
func (h *CinemaHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
