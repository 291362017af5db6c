package blocks

import (
	"context"
	"errors"
	"fmt"

	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
)

// Service сервис для работы с временными блоками
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса временных блоков
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Release освобождает слот, удаляя временный блок
// Идемпотентна: отсутствие блока (уже освобождён, финализирован или
// убран уборщиком) - тот же успешный исход
func (s *Service) Release(ctx context.Context, blockID string) error {
	s.logger.Info("Release: releasing block id=%s", blockID)

	if blockID == "" {
		return fmt.Errorf("%w: blockID is required", ErrInvalidInput)
	}

	err := s.blockRepo.Delete(ctx, blockID)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Info("Release: block id=%s already gone", blockID)
			return nil
		}
		s.logger.Error("Release: failed to delete block id=%s: %v", blockID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Release: successfully released block id=%s", blockID)
	return nil
}
