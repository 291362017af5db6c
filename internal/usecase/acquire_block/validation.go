package acquire_block

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.Customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if len(req.Customer.Name) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters",
			ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if req.Customer.Email == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	return nil
}
