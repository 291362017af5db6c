package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

// uniqueViolation код PostgreSQL для нарушения ограничения уникальности
const uniqueViolation = "23505"

var reservationColumns = []string{
	"id",
	"code",
	"court_id",
	"date",
	"start_time",
	"end_time",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_national_id",
	"status",
	"payment_status",
	"paid_percent",
	"total_price",
	"commission",
	"channel",
	"block_id",
	"admin_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Финализатор всегда вызывает Create внутри транзакции, в которой уже выполнена
// проверка пересечений - иначе возможна гонка check-then-act
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"code",
			"court_id",
			"date",
			"start_time",
			"end_time",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_national_id",
			"status",
			"payment_status",
			"paid_percent",
			"total_price",
			"commission",
			"channel",
			"block_id",
			"admin_id",
		).
		Values(
			res.Code,
			res.CourtID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.Customer.Name,
			res.Customer.Email,
			res.Customer.Phone,
			res.Customer.NationalID,
			res.Status,
			res.PaymentStatus,
			res.PaidPercent,
			res.TotalPrice,
			res.Commission,
			res.Channel,
			res.BlockID,
			res.AdminID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - code=%s: %v", ErrDuplicateCode, res.Code, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCode получает бронирование по человекочитаемому коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, "GetByCode")
}

// GetByBlockID получает бронирование, созданное из указанного временного блока
// Используется для идемпотентной финализации: повторная доставка webhook находит
// уже созданное бронирование вместо вставки второго
func (r *Repository) GetByBlockID(ctx context.Context, blockID string) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"block_id": blockID}, "GetByBlockID")
}

// ListActiveByCourtDate получает все неотменённые бронирования площадки на дату
// Внутри транзакции добавляет FOR UPDATE: проверка пересечений и последующая
// вставка должны видеть согласованный набор строк
func (r *Repository) ListActiveByCourtDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCourtDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByCourtDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel отменяет бронирование с указанием причины
// Физическое удаление не поддерживается: история бронирований сохраняется
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// getOne получает одно бронирование по условию
func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	res, err := scanReservation(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// scanReservation сканирует одну строку в модель бронирования
func scanReservation(scan func(dest ...interface{}) error) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&res.ID,
		&res.Code,
		&res.CourtID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.Customer.Name,
		&res.Customer.Email,
		&res.Customer.Phone,
		&res.Customer.NationalID,
		&res.Status,
		&res.PaymentStatus,
		&res.PaidPercent,
		&res.TotalPrice,
		&res.Commission,
		&res.Channel,
		&res.BlockID,
		&res.AdminID,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
