package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
)

// UseCase use case для получения занятых интервалов площадки на дату
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	blockRepo       BlockRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	blockRepo BlockRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения занятых интервалов
// Чтение без блокировок: ответ носит информационный характер, право занять
// слот окончательно решается при создании блока
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: court=%d, date=%s", req.CourtID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование площадки
	if _, err := uc.courtRepo.GetByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("CheckAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 3. Получаем активные бронирования на дату
	reservations, err := uc.reservationRepo.ListActiveByCourtDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
	}

	// 4. Получаем живые временные блоки на дату
	blocks, err := uc.blockRepo.ListLiveByCourtDate(ctx, req.CourtID, req.Date, now)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to list blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
	}

	busy := domain.BusyIntervals(reservations, blocks, now)

	uc.logger.Info("CheckAvailability: court=%d, date=%s, busy=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), len(busy))

	slots := make([]BusySlot, 0, len(busy))
	for _, b := range busy {
		slots = append(slots, BusySlot{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Kind:      string(b.Kind),
		})
	}

	return &Response{
		CourtID: req.CourtID,
		Date:    req.Date,
		Busy:    slots,
	}, nil
}
