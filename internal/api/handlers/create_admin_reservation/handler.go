package create_admin_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	finalizeReservation "github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректный формат даты или времени"
	msgMissingUserID      = "отсутствует ID администратора"
	msgSlotNotAvailable   = "выбранный интервал уже занят"
	msgCourtNotFound      = "площадка не найдена"
	msgCourtInactive      = "площадка недоступна для бронирования"
	msgInvalidInterval    = "некорректный интервал времени"
)

type Handler struct {
	useCase FinalizeReservationUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/reservations - Missing admin ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAdminReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(adminID)
	if err != nil {
		h.logger.Warn("POST /admin/reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.ExecuteAdmin(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *finalizeReservation.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /admin/reservations - Slot busy: court_id=%d, %s-%s by %s",
				req.CourtID, req.StartTime, req.EndTime, conflictErr.Conflict.Kind)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:      http.StatusConflict,
				Message:   msgSlotNotAvailable,
				Kind:      string(conflictErr.Conflict.Kind),
				StartTime: string(conflictErr.Conflict.StartTime),
				EndTime:   string(conflictErr.Conflict.EndTime),
			})

		case errors.Is(err, finalizeReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /admin/reservations - Slot not available: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, finalizeReservation.ErrCourtNotFound):
			h.logger.Warn("POST /admin/reservations - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, finalizeReservation.ErrCourtInactive):
			h.logger.Warn("POST /admin/reservations - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondConflict(w, msgCourtInactive)

		case errors.Is(err, finalizeReservation.ErrInvalidInterval):
			h.logger.Warn("POST /admin/reservations - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, finalizeReservation.ErrInvalidInput):
			h.logger.Warn("POST /admin/reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /admin/reservations - Failed: court_id=%d, admin_id=%d, error=%v",
				req.CourtID, adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/reservations - Reservation created: id=%d, code=%s, admin_id=%d",
		result.ID, result.Code, adminID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
