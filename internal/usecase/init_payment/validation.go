package init_payment

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BlockID == "" {
		return fmt.Errorf("%w: blockID is required", ErrInvalidInput)
	}

	if req.PaidPercent != domain.PartialPaymentPercent && req.PaidPercent != domain.FullPaymentPercent {
		return fmt.Errorf("%w: paidPercent must be %d or %d",
			ErrInvalidInput, domain.PartialPaymentPercent, domain.FullPaymentPercent)
	}

	return nil
}
