package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByCode получает бронирование по человекочитаемому коду
// Код служит и идентификатором для клиента, и пропуском на площадку
func (s *Service) GetByCode(ctx context.Context, code string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByCode: fetching reservation code=%s", code)

	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByCode: reservation code=%s not found", code)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// Cancel отменяет бронирование с указанием причины
// Интервал освобождается, запись остаётся в истории
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by admin=%d", reservationID, req.AdminID)

	if req.CancellationReason == "" {
		return fmt.Errorf("%w: cancellationReason is required", ErrInvalidInput)
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason is too long", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Гонка с параллельной отменой: строка уже в статусе cancelled
			s.logger.Warn("Cancel: reservation id=%d already cancelled", reservationID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", reservationID)
	return nil
}
