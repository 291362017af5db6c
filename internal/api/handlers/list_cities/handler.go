package list_cities

import (
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
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

// Handle GET /api/v1/cities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListCities(r.Context())
	if err != nil {
		h.logger.Error("GET /cities - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cities - OK: cities=%d", len(result.Cities))
	handlers.RespondJSON(w, http.StatusOK, result)
}
