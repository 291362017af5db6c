package init_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	initPayment "github.com/m04kA/SMC-CourtService/internal/usecase/init_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBlockNotFound      = "временный блок не найден"
	msgBlockExpired       = "время на оформление истекло, выберите слот заново"
	msgGatewayUnavailable = "платёжный шлюз временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase InitPaymentUseCase
	logger  Logger
}

func NewHandler(useCase InitPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/init
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req InitPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/init - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &initPayment.Request{
		BlockID:     req.BlockID,
		PaidPercent: req.PaidPercent,
	})
	if err != nil {
		switch {
		case errors.Is(err, initPayment.ErrBlockNotFound):
			h.logger.Warn("POST /payments/init - Block not found: block_id=%s", req.BlockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		case errors.Is(err, initPayment.ErrBlockExpired):
			h.logger.Warn("POST /payments/init - Block expired: block_id=%s", req.BlockID)
			handlers.RespondGone(w, msgBlockExpired)

		case errors.Is(err, initPayment.ErrGatewayUnavailable):
			h.logger.Error("POST /payments/init - Gateway unavailable: block_id=%s, error=%v", req.BlockID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayUnavailable)

		case errors.Is(err, initPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/init - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments/init - Failed: block_id=%s, error=%v", req.BlockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/init - Payment initiated: payment_id=%d, block_id=%s",
		result.PaymentID, req.BlockID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
