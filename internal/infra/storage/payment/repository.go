package payment

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

var paymentColumns = []string{
	"id",
	"block_id",
	"order_id",
	"token",
	"amount",
	"paid_percent",
	"status",
	"authorization_code",
	"transaction_date",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с транзакциями оплаты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транзакций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новую транзакцию оплаты
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"block_id",
			"order_id",
			"token",
			"amount",
			"paid_percent",
			"status",
		).
		Values(
			p.BlockID,
			p.OrderID,
			p.Token,
			p.Amount,
			p.PaidPercent,
			p.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - order_id=%s: %v", ErrDuplicateToken, p.OrderID, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByToken получает транзакцию по токену шлюза
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	p, err := scanPayment(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan payment: %v", ErrScanRow, err)
	}

	return p, nil
}

// MarkApproved выставляет статус approved и сохраняет данные ответа шлюза
func (r *Repository) MarkApproved(ctx context.Context, id int64, authCode string, txDate time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", domain.TxApproved).
		Set("authorization_code", authCode).
		Set("transaction_date", txDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkApproved - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, executor, query, args, "MarkApproved")
}

// UpdateStatus выставляет итоговый статус транзакции
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentTxStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("payments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execUpdate(ctx, executor, query, args, "UpdateStatus")
}

// execUpdate выполняет update и проверяет, что строка была затронута
func (r *Repository) execUpdate(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}

// scanPayment сканирует одну строку в модель транзакции
func scanPayment(scan func(dest ...interface{}) error) (*domain.Payment, error) {
	var p domain.Payment
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&p.ID,
		&p.BlockID,
		&p.OrderID,
		&p.Token,
		&p.Amount,
		&p.PaidPercent,
		&p.Status,
		&p.AuthorizationCode,
		&p.TransactionDate,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}
