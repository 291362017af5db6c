package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-CourtService/internal/usecase/check_availability"
)

const (
	msgInvalidCourtID = "некорректный ID площадки"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgCourtNotFound  = "площадка не найдена"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CourtID: courtID,
		Date:    date,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: court_id=%d, error=%v", courtID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed: court_id=%d, error=%v", courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts/{id}/availability - OK: court_id=%d, busy=%d", courtID, len(result.Busy))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
