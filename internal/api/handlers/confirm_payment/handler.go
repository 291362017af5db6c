package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CourtService/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPaymentNotFound    = "платёж не найден"
	msgPaymentRejected    = "оплата отклонена, слот освобождён"
	msgPaymentRefunded    = "оплата прошла, но бронирование создать не удалось, средства возвращены"
	msgRefundFailed       = "ошибка обработки платежа, обратитесь в поддержку"
	msgGatewayUnavailable = "платёжный шлюз временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{Token: req.Token})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/confirm - Payment not found: token=%s", req.Token)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, confirmPayment.ErrPaymentRejected):
			h.logger.Warn("POST /payments/confirm - Payment rejected: token=%s", req.Token)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRejected)

		case errors.Is(err, confirmPayment.ErrPaymentRefunded):
			h.logger.Warn("POST /payments/confirm - Payment refunded: token=%s, error=%v", req.Token, err)
			handlers.RespondConflict(w, msgPaymentRefunded)

		case errors.Is(err, confirmPayment.ErrRefundFailed):
			h.logger.Error("POST /payments/confirm - Refund failed: token=%s, error=%v", req.Token, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgRefundFailed)

		case errors.Is(err, confirmPayment.ErrGatewayUnavailable):
			h.logger.Error("POST /payments/confirm - Gateway unavailable: token=%s, error=%v", req.Token, err)
			handlers.RespondError(w, http.StatusBadGateway, msgGatewayUnavailable)

		case errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /payments/confirm - Failed: token=%s, error=%v", req.Token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/confirm - Reservation created: payment_id=%d, code=%s",
		result.PaymentID, result.Reservation.Code)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
