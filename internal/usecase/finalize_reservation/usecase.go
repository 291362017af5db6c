package finalize_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
)

// UseCase use case для финализации бронирования
// Два пути: из временного блока (после успешной оплаты) и административный
// (без блока, с проверкой конфликтов против блоков клиентов)
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	blockRepo BlockRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute финализирует бронирование из временного блока
// Идемпотентна по blockID: повторный вызов (повторная доставка webhook)
// возвращает уже созданное бронирование вместо ошибки или дубля.
// Превращение блока в бронирование и удаление блока выполняются в одной
// сериализуемой транзакции: наблюдатель не увидит интервал свободным
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeReservation: block=%s, paid_percent=%d", req.BlockID, req.PaidPercent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FinalizeReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем блок с блокировкой строки (FOR UPDATE)
		block, err := uc.blockRepo.GetByID(txCtx, req.BlockID)
		if err != nil {
			if errors.Is(err, blockRepo.ErrBlockNotFound) {
				// Блока нет: либо он уже финализирован (повторная доставка),
				// либо его никогда не было
				existing, getErr := uc.reservationRepo.GetByBlockID(txCtx, req.BlockID)
				if getErr == nil {
					uc.logger.Info("FinalizeReservation: replay for block=%s, returning reservation id=%d",
						req.BlockID, existing.ID)
					result = existing
					return nil
				}
				if !errors.Is(getErr, reservationRepo.ErrReservationNotFound) {
					uc.logger.Error("FinalizeReservation: failed to check replay for block=%s: %v", req.BlockID, getErr)
					return fmt.Errorf("%w: failed to check existing reservation: %v", ErrInternal, getErr)
				}
				uc.logger.Warn("FinalizeReservation: block=%s not found", req.BlockID)
				return ErrBlockNotFound
			}
			uc.logger.Error("FinalizeReservation: failed to get block=%s: %v", req.BlockID, err)
			return fmt.Errorf("%w: failed to get block: %v", ErrInternal, err)
		}

		// 2.2. Истёкший блок финализировать нельзя: слот уже мог занять другой
		if block.IsExpired(now) {
			uc.logger.Warn("FinalizeReservation: block=%s expired at %s", req.BlockID, block.ExpiresAt)
			return ErrBlockExpired
		}

		requested, err := domain.NewInterval(block.StartTime, block.EndTime)
		if err != nil {
			uc.logger.Error("FinalizeReservation: block=%s has invalid interval: %v", req.BlockID, err)
			return fmt.Errorf("%w: invalid block interval: %v", ErrInternal, err)
		}

		// 2.3. Повторная проверка пересечений против бронирований.
		// Блоки не проверяем: слот держит сам финализируемый блок
		reservations, err := uc.reservationRepo.ListActiveByCourtDate(txCtx, block.CourtID, block.Date)
		if err != nil {
			uc.logger.Error("FinalizeReservation: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		if conflict := domain.FindConflict(requested, reservations, nil, now); conflict != nil {
			uc.logger.Warn("FinalizeReservation: block=%s conflicts with %s %s-%s",
				req.BlockID, conflict.Kind, conflict.StartTime, conflict.EndTime)
			return &ConflictError{Conflict: *conflict}
		}

		// 2.4. Создаем бронирование из данных блока
		reservation := &domain.Reservation{
			Code:          block.ReservationCode,
			CourtID:       block.CourtID,
			Date:          block.Date,
			StartTime:     block.StartTime,
			EndTime:       block.EndTime,
			Customer:      block.Customer,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentStatusForPercent(req.PaidPercent),
			PaidPercent:   req.PaidPercent,
			TotalPrice:    block.TotalPrice,
			Commission:    domain.CommissionAmount(block.TotalPrice),
			Channel:       domain.ChannelWebDirect,
			BlockID:       &block.ID,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("FinalizeReservation: failed to create reservation for block=%s: %v", req.BlockID, err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 2.5. Блок выполнил свою роль
		if err := uc.blockRepo.Delete(txCtx, block.ID); err != nil {
			uc.logger.Error("FinalizeReservation: failed to delete block=%s: %v", req.BlockID, err)
			return fmt.Errorf("%w: failed to delete block: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FinalizeReservation: successfully created reservation id=%d, code=%s",
		result.ID, result.Code)

	return toResponse(result), nil
}

// ExecuteAdmin создает бронирование напрямую, без временного блока
// В отличие от пути с блоком, здесь конфликтом считаются и живые блоки
// клиентов: администратор не должен перехватывать слот из-под оформляемого
// заказа
func (uc *UseCase) ExecuteAdmin(ctx context.Context, req *AdminRequest) (*Response, error) {
	uc.logger.Info("FinalizeReservation(admin): court=%d, date=%s, time=%s-%s, admin=%d",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.AdminID)

	// 1. Валидация входных данных
	if err := validateAdminRequest(req); err != nil {
		uc.logger.Warn("FinalizeReservation(admin): validation failed: %v", err)
		return nil, err
	}

	requested, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("FinalizeReservation(admin): invalid interval %s-%s: %v", req.StartTime, req.EndTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	now := uc.timeProvider.Now()

	// 2. Получаем площадку
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("FinalizeReservation(admin): court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("FinalizeReservation(admin): failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsBookable() {
		uc.logger.Warn("FinalizeReservation(admin): court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	totalPrice := court.PriceFor(requested.DurationMinutes())

	var result *domain.Reservation

	// 3. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservations, err := uc.reservationRepo.ListActiveByCourtDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("FinalizeReservation(admin): failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.ListLiveByCourtDate(txCtx, req.CourtID, req.Date, now)
		if err != nil {
			uc.logger.Error("FinalizeReservation(admin): failed to list blocks: %v", err)
			return fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
		}

		if conflict := domain.FindConflict(requested, reservations, blocks, now); conflict != nil {
			uc.logger.Warn("FinalizeReservation(admin): slot %s-%s busy by %s %s-%s",
				req.StartTime, req.EndTime, conflict.Kind, conflict.StartTime, conflict.EndTime)
			return &ConflictError{Conflict: *conflict}
		}

		reservation := &domain.Reservation{
			Code:      domain.GenerateReservationCode(),
			CourtID:   req.CourtID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Customer: domain.Customer{
				Name:       req.Customer.Name,
				Email:      req.Customer.Email,
				Phone:      req.Customer.Phone,
				NationalID: req.Customer.NationalID,
			},
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentStatusForPercent(req.PaidPercent),
			PaidPercent:   req.PaidPercent,
			TotalPrice:    totalPrice,
			Commission:    domain.CommissionAmount(totalPrice),
			Channel:       domain.ChannelAdmin,
			AdminID:       &req.AdminID,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("FinalizeReservation(admin): failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("FinalizeReservation(admin): successfully created reservation id=%d, code=%s",
		result.ID, result.Code)

	return toResponse(result), nil
}
