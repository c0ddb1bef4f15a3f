package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/usecase"
	"cinema-chain/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Cinema       *CinemaHandler
	Movie        *MovieHandler
	Screening    *ScreeningHandler
	Reservation  *ReservationHandler
	Announcement *AnnouncementHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Cinema:       NewCinemaHandler(service.Cinema, log),
		Movie:        NewMovieHandler(service.Movie, log),
		Screening:    NewScreeningHandler(service.Screening, log),
		Reservation:  NewReservationHandler(service.Inventory, log),
		Announcement: NewAnnouncementHandler(service.Announcement, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Transient contention and timeouts become 503 so clients know to retry;
// capacity and lifecycle rejections are terminal 4xx.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrScreeningNotFound),
		errors.Is(err, entity.ErrReservationNotFound),
		errors.Is(err, entity.ErrCinemaNotFound),
		errors.Is(err, entity.ErrRoomNotFound),
		errors.Is(err, entity.ErrMovieNotFound),
		errors.Is(err, entity.ErrGenreNotFound),
		errors.Is(err, entity.ErrAnnouncementNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrInsufficientSeats):
		log.Warn(operation+" rejected - insufficient seats", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrScreeningClosed):
		log.Warn(operation+" rejected - screening closed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrScreeningOverlap),
		errors.Is(err, entity.ErrRoomHasScreenings),
		errors.Is(err, entity.ErrEmailTaken):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrConflict),
		errors.Is(err, entity.ErrTimeout),
		errors.Is(err, entity.ErrStoreUnavailable):
		log.Warn(operation+" unavailable, client should retry", zap.Error(err))
		utils.ResponseRetryLater(w, "please retry")

	case errors.Is(err, entity.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "internal server error")
	}
}

// paginationFromQuery reads page/per_page query params with defaults.
func paginationFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}
}
