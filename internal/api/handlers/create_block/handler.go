package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	acquireBlock "github.com/m04kA/SMC-CourtService/internal/usecase/acquire_block"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgSlotNotAvailable   = "выбранный интервал уже занят"
	msgCourtNotFound      = "площадка не найдена"
	msgCourtInactive      = "площадка недоступна для бронирования"
	msgInvalidInterval    = "некорректный интервал времени"
	msgInvalidDate        = "дата в прошлом"
)

type Handler struct {
	useCase AcquireBlockUseCase
	logger  Logger
}

func NewHandler(useCase AcquireBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *acquireBlock.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /blocks - Slot busy: court_id=%d, %s-%s by %s",
				req.CourtID, req.StartTime, req.EndTime, conflictErr.Conflict.Kind)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:      http.StatusConflict,
				Message:   msgSlotNotAvailable,
				Kind:      string(conflictErr.Conflict.Kind),
				StartTime: string(conflictErr.Conflict.StartTime),
				EndTime:   string(conflictErr.Conflict.EndTime),
			})

		case errors.Is(err, acquireBlock.ErrSlotNotAvailable):
			h.logger.Warn("POST /blocks - Slot not available: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, acquireBlock.ErrCourtNotFound):
			h.logger.Warn("POST /blocks - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, acquireBlock.ErrCourtInactive):
			h.logger.Warn("POST /blocks - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, acquireBlock.ErrInvalidInterval):
			h.logger.Warn("POST /blocks - Invalid interval: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, acquireBlock.ErrInvalidDate):
			h.logger.Warn("POST /blocks - Date in the past: court_id=%d", req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, acquireBlock.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /blocks - Failed to create block: court_id=%d, error=%v", req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: block_id=%s, court_id=%d, expires_at=%s",
		result.BlockID, req.CourtID, result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
