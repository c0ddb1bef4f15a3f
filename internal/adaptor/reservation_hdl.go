package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/usecase"
	"cinema-chain/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.InventoryService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.InventoryService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.Reserve(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// CancelReservation handles DELETE /api/reservations/{id} (protected).
// A repeat cancel confirms the terminal state instead of failing, so
// client retries after a lost response stay safe.
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	role, _ := utils.GetRoleFromContext(r.Context())

	reservation, err := h.service.Cancel(r.Context(), userID.String(), role, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrAlreadyCancelled) {
			utils.ResponseSuccess(w, "reservation already cancelled", nil)
			return
		}
		handleServiceError(h.log, w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// GetAvailability handles GET /api/screenings/{id}/availability (public)
func (h *ReservationHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	availability, err := h.service.Availability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetUserReservations handles GET /api/user/reservations (protected)
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.GetCustomerReservations(r.Context(), userID.String(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get user reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}
