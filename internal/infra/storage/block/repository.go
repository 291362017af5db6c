package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"court_id",
	"date",
	"start_time",
	"end_time",
	"session_id",
	"reservation_code",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_national_id",
	"total_price",
	"created_at",
	"expires_at",
}

// Repository репозиторий для работы с временными блоками слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория временных блоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый временный блок
// Вызывается только внутри сериализуемой транзакции, в которой уже
// выполнена проверка пересечений для того же слота
func (r *Repository) Create(ctx context.Context, blk *domain.TemporalBlock) (*domain.TemporalBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("temporal_blocks").
		Columns(
			"id",
			"court_id",
			"date",
			"start_time",
			"end_time",
			"session_id",
			"reservation_code",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_national_id",
			"total_price",
			"expires_at",
		).
		Values(
			blk.ID,
			blk.CourtID,
			blk.Date,
			blk.StartTime,
			blk.EndTime,
			blk.SessionID,
			blk.ReservationCode,
			blk.Customer.Name,
			blk.Customer.Email,
			blk.Customer.Phone,
			blk.Customer.NationalID,
			blk.TotalPrice,
			blk.ExpiresAt,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blk.CreatedAt = createdAt.Time

	return blk, nil
}

// GetByID получает временный блок по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.TemporalBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("temporal_blocks").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	blk, err := scanBlock(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return blk, nil
}

// ListLiveByCourtDate получает живые (неистёкшие) блоки площадки на дату
// Истёкшие, но ещё не удалённые блоки не учитываются: слот считается
// свободным сразу после expires_at, не дожидаясь уборщика.
// Внутри транзакции добавляет FOR UPDATE
func (r *Repository) ListLiveByCourtDate(ctx context.Context, courtID int64, date time.Time, now time.Time) ([]*domain.TemporalBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("temporal_blocks").
		Where(squirrel.Eq{"court_id": courtID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.GtOrEq{"expires_at": now}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLiveByCourtDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLiveByCourtDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// Delete удаляет временный блок
// Вызывается при финализации, явном освобождении и при провале оплаты
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("temporal_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// DeleteExpired удаляет все блоки с истёкшим TTL и возвращает их количество
// Вызывается фоновым уборщиком; удаление идемпотентно
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("temporal_blocks").
		Where(squirrel.Lt{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanBlocks сканирует результаты запроса в слайс временных блоков
func (r *Repository) scanBlocks(rows *sql.Rows) ([]*domain.TemporalBlock, error) {
	blocks := make([]*domain.TemporalBlock, 0)

	for rows.Next() {
		blk, err := scanBlock(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, blk)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// scanBlock сканирует одну строку в модель временного блока
func scanBlock(scan func(dest ...interface{}) error) (*domain.TemporalBlock, error) {
	var blk domain.TemporalBlock
	var createdAt, expiresAt sql.NullTime

	err := scan(
		&blk.ID,
		&blk.CourtID,
		&blk.Date,
		&blk.StartTime,
		&blk.EndTime,
		&blk.SessionID,
		&blk.ReservationCode,
		&blk.Customer.Name,
		&blk.Customer.Email,
		&blk.Customer.Phone,
		&blk.Customer.NationalID,
		&blk.TotalPrice,
		&createdAt,
		&expiresAt,
	)

	if err != nil {
		return nil, err
	}

	blk.CreatedAt = createdAt.Time
	blk.ExpiresAt = expiresAt.Time

	return &blk, nil
}
