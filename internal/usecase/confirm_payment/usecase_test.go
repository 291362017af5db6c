package confirm_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubPaymentRepo struct {
	payment       *domain.Payment
	approvedID    int64
	approvedCode  string
	statusUpdates map[int64]domain.PaymentTxStatus
}

func (s *stubPaymentRepo) GetByToken(ctx context.Context, token string) (*domain.Payment, error) {
	if s.payment == nil || s.payment.Token != token {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return s.payment, nil
}

func (s *stubPaymentRepo) MarkApproved(ctx context.Context, id int64, authCode string, txDate time.Time) error {
	s.approvedID = id
	s.approvedCode = authCode
	return nil
}

func (s *stubPaymentRepo) UpdateStatus(ctx context.Context, id int64, status domain.PaymentTxStatus) error {
	if s.statusUpdates == nil {
		s.statusUpdates = make(map[int64]domain.PaymentTxStatus)
	}
	s.statusUpdates[id] = status
	return nil
}

type stubBlockRepo struct {
	deleted   []string
	deleteErr error
}

func (s *stubBlockRepo) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubGateway struct {
	confirmResp  *paymentgateway.ConfirmTransactionResponse
	confirmErr   error
	confirmCalls int
	refundErr    error
	refundCalls  int
}

func (s *stubGateway) ConfirmTransaction(ctx context.Context, token string) (*paymentgateway.ConfirmTransactionResponse, error) {
	s.confirmCalls++
	if s.confirmErr != nil {
		return nil, s.confirmErr
	}
	return s.confirmResp, nil
}

func (s *stubGateway) RefundTransaction(ctx context.Context, token string, amount int64) (*paymentgateway.RefundResponse, error) {
	s.refundCalls++
	if s.refundErr != nil {
		return nil, s.refundErr
	}
	return &paymentgateway.RefundResponse{Type: "REVERSED", Amount: amount}, nil
}

type stubFinalizer struct {
	resp  *finalize_reservation.Response
	err   error
	calls int
}

func (s *stubFinalizer) Execute(ctx context.Context, req *finalize_reservation.Request) (*finalize_reservation.Response, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func testPayment() *domain.Payment {
	return &domain.Payment{
		ID:          11,
		BlockID:     "7c1f3a2e-0000-4000-8000-000000000001",
		OrderID:     "order-123",
		Token:       "tok-abc",
		Amount:      13500,
		PaidPercent: 50,
		Status:      domain.TxInitiated,
	}
}

func approvedResponse() *paymentgateway.ConfirmTransactionResponse {
	return &paymentgateway.ConfirmTransactionResponse{
		Status:            paymentgateway.StatusAuthorized,
		AuthorizationCode: "1213",
		ResponseCode:      0,
		Amount:            13500,
		TransactionDate:   time.Date(2026, 6, 1, 12, 3, 0, 0, time.UTC),
	}
}

func finalizedReservation() *finalize_reservation.Response {
	return &finalize_reservation.Response{
		ID:          42,
		Code:        "A1B2C3",
		PaidPercent: 50,
	}
}

func TestExecute_Approved(t *testing.T) {
	payments := &stubPaymentRepo{payment: testPayment()}
	blocks := &stubBlockRepo{}
	gateway := &stubGateway{confirmResp: approvedResponse()}
	finalizer := &stubFinalizer{resp: finalizedReservation()}

	uc := NewUseCase(payments, blocks, gateway, finalizer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.PaymentID)
	assert.Equal(t, "order-123", resp.OrderID)
	assert.Equal(t, "1213", resp.AuthorizationCode)
	require.NotNil(t, resp.Reservation)
	assert.Equal(t, "A1B2C3", resp.Reservation.Code)

	assert.Equal(t, int64(11), payments.approvedID)
	assert.Equal(t, "1213", payments.approvedCode)
	assert.Equal(t, 1, finalizer.calls)
	// Блок удаляет финализатор, а не обработчик оплаты
	assert.Empty(t, blocks.deleted)
}

func TestExecute_Rejected(t *testing.T) {
	payment := testPayment()
	payments := &stubPaymentRepo{payment: payment}
	blocks := &stubBlockRepo{}
	gateway := &stubGateway{confirmResp: &paymentgateway.ConfirmTransactionResponse{
		Status:       paymentgateway.StatusFailed,
		ResponseCode: -1,
	}}
	finalizer := &stubFinalizer{}

	uc := NewUseCase(payments, blocks, gateway, finalizer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	assert.ErrorIs(t, err, ErrPaymentRejected)
	assert.Equal(t, domain.TxFailed, payments.statusUpdates[11])
	// Слот освобождается
	assert.Equal(t, []string{payment.BlockID}, blocks.deleted)
	assert.Equal(t, 0, finalizer.calls)
}

func TestExecute_AuthorizedButNonZeroResponseCode(t *testing.T) {
	payments := &stubPaymentRepo{payment: testPayment()}
	resp := approvedResponse()
	resp.ResponseCode = -5
	gateway := &stubGateway{confirmResp: resp}

	uc := NewUseCase(payments, &stubBlockRepo{}, gateway, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	assert.ErrorIs(t, err, ErrPaymentRejected)
	assert.Equal(t, domain.TxFailed, payments.statusUpdates[11])
}

func TestExecute_GatewayUnavailable(t *testing.T) {
	payments := &stubPaymentRepo{payment: testPayment()}
	blocks := &stubBlockRepo{}
	gateway := &stubGateway{confirmErr: paymentgateway.ErrGatewayUnavailable}

	uc := NewUseCase(payments, blocks, gateway, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	// Исход неизвестен: статус не меняем, блок остаётся до повторной доставки
	assert.Empty(t, payments.statusUpdates)
	assert.Empty(t, blocks.deleted)
}

func TestExecute_FinalizeFailureTriggersRefund(t *testing.T) {
	payment := testPayment()
	payments := &stubPaymentRepo{payment: payment}
	blocks := &stubBlockRepo{}
	gateway := &stubGateway{confirmResp: approvedResponse()}
	finalizer := &stubFinalizer{err: errors.New("reservation create failed")}

	uc := NewUseCase(payments, blocks, gateway, finalizer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	assert.ErrorIs(t, err, ErrPaymentRefunded)
	assert.Equal(t, 1, gateway.refundCalls)
	assert.Equal(t, domain.TxRefunded, payments.statusUpdates[11])
	assert.Equal(t, []string{payment.BlockID}, blocks.deleted)
}

func TestExecute_RefundFailure(t *testing.T) {
	payments := &stubPaymentRepo{payment: testPayment()}
	gateway := &stubGateway{
		confirmResp: approvedResponse(),
		refundErr:   errors.New("gateway timeout"),
	}
	finalizer := &stubFinalizer{err: errors.New("reservation create failed")}

	uc := NewUseCase(payments, &stubBlockRepo{}, gateway, finalizer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	// Деньги списаны, возврат не прошёл: требуется ручное вмешательство
	assert.ErrorIs(t, err, ErrRefundFailed)
}

func TestExecute_ReplayApproved(t *testing.T) {
	payment := testPayment()
	payment.Status = domain.TxApproved
	payment.AuthorizationCode = ptr.Ptr("1213")

	payments := &stubPaymentRepo{payment: payment}
	gateway := &stubGateway{}
	finalizer := &stubFinalizer{resp: finalizedReservation()}

	uc := NewUseCase(payments, &stubBlockRepo{}, gateway, finalizer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	require.NoError(t, err)
	assert.Equal(t, "A1B2C3", resp.Reservation.Code)
	// Шлюз повторно не вызывается, финализатор сам разрешает повтор
	assert.Equal(t, 0, gateway.confirmCalls)
	assert.Equal(t, 1, finalizer.calls)
}

func TestExecute_ReplayFailed(t *testing.T) {
	payment := testPayment()
	payment.Status = domain.TxFailed

	payments := &stubPaymentRepo{payment: payment}
	gateway := &stubGateway{}

	uc := NewUseCase(payments, &stubBlockRepo{}, gateway, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	assert.ErrorIs(t, err, ErrPaymentRejected)
	assert.Equal(t, 0, gateway.confirmCalls)
}

func TestExecute_UnknownToken(t *testing.T) {
	uc := NewUseCase(&stubPaymentRepo{}, &stubBlockRepo{}, &stubGateway{}, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-unknown"})

	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestExecute_EmptyToken(t *testing.T) {
	uc := NewUseCase(&stubPaymentRepo{}, &stubBlockRepo{}, &stubGateway{}, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ReleaseBlockIgnoresMissing(t *testing.T) {
	payments := &stubPaymentRepo{payment: testPayment()}
	blocks := &stubBlockRepo{deleteErr: blockRepo.ErrBlockNotFound}
	gateway := &stubGateway{confirmResp: &paymentgateway.ConfirmTransactionResponse{
		Status: paymentgateway.StatusFailed,
	}}

	uc := NewUseCase(payments, blocks, gateway, &stubFinalizer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "tok-abc"})

	// Отсутствие блока не меняет исход: оплата всё равно отклонена
	assert.ErrorIs(t, err, ErrPaymentRejected)
}
