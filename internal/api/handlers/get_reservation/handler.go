package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations"
)

const (
	msgInvalidCode = "некорректный код бронирования"
	msgNotFound    = "бронирование не найдено"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	reservation, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{code} - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations/{code} - Invalid code")
			handlers.RespondBadRequest(w, msgInvalidCode)

		default:
			h.logger.Error("GET /reservations/{code} - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{code} - OK: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, reservation)
}
