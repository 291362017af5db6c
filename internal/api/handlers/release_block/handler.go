package release_block

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/service/blocks"
)

const msgInvalidBlockID = "некорректный ID блока"

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/blocks/{blockId}
// Идемпотентный: повторное освобождение уже отсутствующего блока - тоже 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID := mux.Vars(r)["blockId"]

	err := h.service.Release(r.Context(), blockID)
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("DELETE /blocks/{id} - Invalid block ID")
			handlers.RespondBadRequest(w, msgInvalidBlockID)

		default:
			h.logger.Error("DELETE /blocks/{id} - Failed to release block: block_id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block released: block_id=%s", blockID)
	handlers.RespondNoContent(w)
}
