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

type AnnouncementHandler struct {
	service usecase.AnnouncementService
	log     *zap.Logger
}

func NewAnnouncementHandler(service usecase.AnnouncementService, log *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		service: service,
		log:     log.With(zap.String("handler", "announcement")),
	}
}

// CreateAnnouncement handles POST /api/announcements (admin)
func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req request.AnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	announcement, err := h.service.CreateAnnouncement(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create announcement")
		return
	}

	utils.ResponseCreated(w, "success", announcement)
}

// GetCinemaAnnouncements handles GET /api/cinemas/{id}/announcements
func (h *AnnouncementHandler) GetCinemaAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.service.GetByCinema(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "list announcements")
		return
	}

	utils.ResponseSuccess(w, "success", announcements)
}

// UpdateAnnouncement handles PUT /api/announcements/{id} (admin)
func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req request.AnnouncementUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	announcement, err := h.service.UpdateAnnouncement(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update announcement")
		return
	}

	utils.ResponseSuccess(w, "success", announcement)
}

// DeleteAnnouncement handles DELETE /api/announcements/{id} (admin)
func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAnnouncement(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete announcement")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
