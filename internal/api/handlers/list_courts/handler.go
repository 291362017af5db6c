package list_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/courts"
)

const (
	msgInvalidComplexID = "некорректный ID комплекса"
	msgComplexNotFound  = "комплекс не найден"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/complexes/{complexId}/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	complexID, err := strconv.ParseInt(mux.Vars(r)["complexId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /complexes/{id}/courts - Invalid complex ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidComplexID)
		return
	}

	result, err := h.service.GetComplexCourts(r.Context(), complexID)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrComplexNotFound):
			h.logger.Warn("GET /complexes/{id}/courts - Complex not found: complex_id=%d", complexID)
			handlers.RespondNotFound(w, msgComplexNotFound)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("GET /complexes/{id}/courts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidComplexID)

		default:
			h.logger.Error("GET /complexes/{id}/courts - Failed: complex_id=%d, error=%v", complexID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /complexes/{id}/courts - OK: complex_id=%d, courts=%d", complexID, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
