package finalize_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует запрос финализации из блока
func validateRequest(req *Request) error {
	if req.BlockID == "" {
		return fmt.Errorf("%w: blockID is required", ErrInvalidInput)
	}

	if err := validatePaidPercent(req.PaidPercent); err != nil {
		return err
	}

	return nil
}

// validateAdminRequest валидирует запрос административного бронирования
func validateAdminRequest(req *AdminRequest) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.AdminID <= 0 {
		return fmt.Errorf("%w: adminID must be positive", ErrInvalidInput)
	}

	if req.Customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.Customer.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	// 0 допустим: оплата на месте
	if req.PaidPercent != 0 {
		if err := validatePaidPercent(req.PaidPercent); err != nil {
			return err
		}
	}

	return nil
}

// validatePaidPercent проверяет, что процент оплаты соответствует политике:
// частичная предоплата 50% или полная оплата
func validatePaidPercent(percent int) error {
	if percent != domain.PartialPaymentPercent && percent != domain.FullPaymentPercent {
		return fmt.Errorf("%w: paidPercent must be %d or %d",
			ErrInvalidInput, domain.PartialPaymentPercent, domain.FullPaymentPercent)
	}
	return nil
}
