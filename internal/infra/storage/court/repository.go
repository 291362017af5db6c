package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

var courtColumns = []string{
	"id",
	"complex_id",
	"name",
	"sport",
	"hourly_price",
	"active",
}

// Repository репозиторий для чтения справочника площадок
// Справочные данные изменяются отдельным админ-контуром, поэтому
// здесь только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	crt, err := scanCourt(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return crt, nil
}

// ListByComplex получает все активные площадки комплекса
func (r *Repository) ListByComplex(ctx context.Context, complexID int64) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"complex_id": complexID}).
		Where(squirrel.Eq{"active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByComplex - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByComplex - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		crt, err := scanCourt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByComplex - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, crt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByComplex - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}

// GetComplexByID получает комплекс по ID
func (r *Repository) GetComplexByID(ctx context.Context, id int64) (*domain.Complex, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "city_id", "name", "address", "phone", "email").
		From("complexes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetComplexByID - build select query: %v", ErrBuildQuery, err)
	}

	var cmplx domain.Complex
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cmplx.ID,
		&cmplx.CityID,
		&cmplx.Name,
		&cmplx.Address,
		&cmplx.Phone,
		&cmplx.Email,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrComplexNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetComplexByID - scan complex: %v", ErrScanRow, err)
	}

	return &cmplx, nil
}

// ListComplexesByCity получает все комплексы города
func (r *Repository) ListComplexesByCity(ctx context.Context, cityID int64) ([]*domain.Complex, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "city_id", "name", "address", "phone", "email").
		From("complexes").
		Where(squirrel.Eq{"city_id": cityID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListComplexesByCity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListComplexesByCity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	complexes := make([]*domain.Complex, 0)
	for rows.Next() {
		var cmplx domain.Complex
		err := rows.Scan(
			&cmplx.ID,
			&cmplx.CityID,
			&cmplx.Name,
			&cmplx.Address,
			&cmplx.Phone,
			&cmplx.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListComplexesByCity - scan row: %v", ErrScanRow, err)
		}
		complexes = append(complexes, &cmplx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListComplexesByCity - rows error: %v", ErrScanRow, err)
	}

	return complexes, nil
}

// ListCities получает список всех городов
func (r *Repository) ListCities(ctx context.Context) ([]*domain.City, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("cities").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCities - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cities := make([]*domain.City, 0)
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(&city.ID, &city.Name); err != nil {
			return nil, fmt.Errorf("%w: ListCities - scan row: %v", ErrScanRow, err)
		}
		cities = append(cities, &city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCities - rows error: %v", ErrScanRow, err)
	}

	return cities, nil
}

// scanCourt сканирует одну строку в модель площадки
func scanCourt(scan func(dest ...interface{}) error) (*domain.Court, error) {
	var crt domain.Court

	err := scan(
		&crt.ID,
		&crt.ComplexID,
		&crt.Name,
		&crt.Sport,
		&crt.HourlyPrice,
		&crt.Active,
	)

	if err != nil {
		return nil, err
	}

	return &crt, nil
}
