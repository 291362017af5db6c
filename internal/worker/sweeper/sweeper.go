package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/m04kA/SMC-CourtService/internal/domain"
)

// Sweeper фоновый уборщик просроченных временных блоков
// Гигиеническая роль: корректность не зависит от него, истёкшие блоки
// и так не учитываются при проверке пересечений. Уборщик лишь не даёт
// таблице блоков расти
type Sweeper struct {
	blockRepo    BlockRepository
	scheduler    gocron.Scheduler
	interval     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// New создает новый экземпляр уборщика
// intervalSeconds - период запуска из конфигурации
func New(blockRepo BlockRepository, intervalSeconds int, logger Logger) (*Sweeper, error) {
	if intervalSeconds <= 0 {
		intervalSeconds = domain.DefaultSweepIntervalSeconds
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("sweeper: failed to create scheduler: %w", err)
	}

	return &Sweeper{
		blockRepo:    blockRepo,
		scheduler:    scheduler,
		interval:     time.Duration(intervalSeconds) * time.Second,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// Start регистрирует задачу очистки и запускает планировщик
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(func() { s.sweep(ctx) }),
		gocron.WithName("expired-blocks-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("sweeper: failed to register job: %w", err)
	}

	s.scheduler.Start()
	s.logger.Info("Sweeper: started, interval=%s", s.interval)
	return nil
}

// Stop останавливает планировщик
func (s *Sweeper) Stop() error {
	s.logger.Info("Sweeper: stopping")
	return s.scheduler.Shutdown()
}

// sweep удаляет все блоки с истёкшим TTL
func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.blockRepo.DeleteExpired(ctx, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Sweeper: failed to delete expired blocks: %v", err)
		return
	}

	if deleted > 0 {
		s.logger.Info("Sweeper: deleted %d expired blocks", deleted)
	}
}
