package courts

import (
	"context"
	"errors"
	"fmt"

	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtService/internal/service/courts/models"
)

// Service сервис чтения справочника площадок
type Service struct {
	courtRepo CourtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса справочника
func NewService(courtRepo CourtRepository, logger Logger) *Service {
	return &Service{
		courtRepo: courtRepo,
		logger:    logger,
	}
}

// GetComplexCourts получает комплекс со списком активных площадок
func (s *Service) GetComplexCourts(ctx context.Context, complexID int64) (*models.ComplexCourtsResponse, error) {
	s.logger.Info("GetComplexCourts: fetching courts for complex=%d", complexID)

	if complexID <= 0 {
		return nil, fmt.Errorf("%w: complexID must be positive", ErrInvalidInput)
	}

	cmplx, err := s.courtRepo.GetComplexByID(ctx, complexID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrComplexNotFound) {
			s.logger.Warn("GetComplexCourts: complex id=%d not found", complexID)
			return nil, ErrComplexNotFound
		}
		s.logger.Error("GetComplexCourts: repository error for complex=%d: %v", complexID, err)
		return nil, fmt.Errorf("%w: GetComplexCourts - repository error: %v", ErrInternal, err)
	}

	courts, err := s.courtRepo.ListByComplex(ctx, complexID)
	if err != nil {
		s.logger.Error("GetComplexCourts: failed to list courts for complex=%d: %v", complexID, err)
		return nil, fmt.Errorf("%w: GetComplexCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetComplexCourts: fetched %d courts for complex=%d", len(courts), complexID)
	return models.FromDomainCourts(cmplx, courts), nil
}

// ListCities получает список городов с комплексами
func (s *Service) ListCities(ctx context.Context) (*models.CityListResponse, error) {
	s.logger.Info("ListCities: fetching cities")

	cities, err := s.courtRepo.ListCities(ctx)
	if err != nil {
		s.logger.Error("ListCities: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCities - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCities: fetched %d cities", len(cities))
	return models.FromDomainCities(cities), nil
}
