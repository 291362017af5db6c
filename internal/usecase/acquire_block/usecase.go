package acquire_block

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
)

// UseCase use case для временного блока слота на время оформления заказа
type UseCase struct {
	courtRepo       CourtRepository
	reservationRepo ReservationRepository
	blockRepo       BlockRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	ttl             time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// ttlMinutes - время жизни блока из конфигурации
func NewUseCase(
	courtRepo CourtRepository,
	reservationRepo ReservationRepository,
	blockRepo BlockRepository,
	txManager TransactionManager,
	ttlMinutes int,
	logger Logger,
) *UseCase {
	if ttlMinutes < domain.MinBlockTTLMinutes || ttlMinutes > domain.MaxBlockTTLMinutes {
		ttlMinutes = domain.DefaultBlockTTLMinutes
	}

	return &UseCase{
		courtRepo:       courtRepo,
		reservationRepo: reservationRepo,
		blockRepo:       blockRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		ttl:             time.Duration(ttlMinutes) * time.Minute,
		logger:          logger,
	}
}

// Execute выполняет use case создания временного блока
// Проверка пересечений и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строк (FOR UPDATE): из двух конкурентных
// запросов на один слот блок получает ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AcquireBlock: court=%d, date=%s, time=%s-%s, session=%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.SessionID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AcquireBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Интервал: здесь же отсекаются пустые и перевёрнутые интервалы
	requested, err := domain.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("AcquireBlock: invalid interval %s-%s: %v", req.StartTime, req.EndTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	now := uc.timeProvider.Now()

	// 3. Дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("AcquireBlock: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем площадку
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.logger.Warn("AcquireBlock: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("AcquireBlock: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsBookable() {
		uc.logger.Warn("AcquireBlock: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	// 5. Готовим блок заранее: код бронирования генерируется уже здесь,
	// чтобы повторная доставка webhook финализации не породила второй код
	block := &domain.TemporalBlock{
		ID:              uuid.NewString(),
		CourtID:         req.CourtID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		SessionID:       req.SessionID,
		ReservationCode: domain.GenerateReservationCode(),
		Customer: domain.Customer{
			Name:       req.Customer.Name,
			Email:      req.Customer.Email,
			Phone:      req.Customer.Phone,
			NationalID: req.Customer.NationalID,
		},
		TotalPrice: court.PriceFor(requested.DurationMinutes()),
		ExpiresAt:  now.Add(uc.ttl),
	}

	// 6. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.ListActiveByCourtDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			uc.logger.Error("AcquireBlock: failed to list reservations: %v", err)
			return fmt.Errorf("%w: failed to list reservations: %v", ErrInternal, err)
		}

		// 6.2. Живые блоки на дату с блокировкой (FOR UPDATE)
		blocks, err := uc.blockRepo.ListLiveByCourtDate(txCtx, req.CourtID, req.Date, now)
		if err != nil {
			uc.logger.Error("AcquireBlock: failed to list blocks: %v", err)
			return fmt.Errorf("%w: failed to list blocks: %v", ErrInternal, err)
		}

		// 6.3. Проверяем пересечения
		if conflict := domain.FindConflict(requested, reservations, blocks, now); conflict != nil {
			uc.logger.Warn("AcquireBlock: slot %s-%s busy by %s %s-%s",
				req.StartTime, req.EndTime, conflict.Kind, conflict.StartTime, conflict.EndTime)
			return &ConflictError{Conflict: *conflict}
		}

		// 6.4. Создаем блок
		if _, err := uc.blockRepo.Create(txCtx, block); err != nil {
			uc.logger.Error("AcquireBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AcquireBlock: successfully created block id=%s, code=%s, expires_at=%s",
		block.ID, block.ReservationCode, block.ExpiresAt.Format(time.RFC3339))

	return &Response{
		BlockID:         block.ID,
		ReservationCode: block.ReservationCode,
		CourtID:         block.CourtID,
		Date:            block.Date,
		StartTime:       block.StartTime,
		EndTime:         block.EndTime,
		TotalPrice:      block.TotalPrice,
		ExpiresAt:       block.ExpiresAt,
	}, nil
}
