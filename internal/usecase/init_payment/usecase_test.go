package init_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	"github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type stubBlockRepo struct {
	block *domain.TemporalBlock
}

func (s *stubBlockRepo) GetByID(ctx context.Context, id string) (*domain.TemporalBlock, error) {
	if s.block == nil || s.block.ID != id {
		return nil, blockRepo.ErrBlockNotFound
	}
	return s.block, nil
}

type stubPaymentRepo struct {
	created *domain.Payment
}

func (s *stubPaymentRepo) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	created := *p
	created.ID = 11
	s.created = &created
	return &created, nil
}

type stubGateway struct {
	req *paymentgateway.CreateTransactionRequest
	err error
}

func (s *stubGateway) CreateTransaction(ctx context.Context, req *paymentgateway.CreateTransactionRequest) (*paymentgateway.CreateTransactionResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.req = req
	return &paymentgateway.CreateTransactionResponse{
		Token: "tok-abc",
		URL:   "https://gateway.example.com/pay",
	}, nil
}

func testBlock() *domain.TemporalBlock {
	return &domain.TemporalBlock{
		ID:         "7c1f3a2e-0000-4000-8000-000000000001",
		CourtID:    1,
		SessionID:  "session-abc",
		TotalPrice: 27000,
		ExpiresAt:  testNow.Add(3 * time.Minute),
	}
}

func newTestUseCase(blocks *stubBlockRepo, payments *stubPaymentRepo, gateway *stubGateway) *UseCase {
	uc := NewUseCase(blocks, payments, gateway, "https://smc.example.com/payments/return", nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	block := testBlock()
	payments := &stubPaymentRepo{}
	gateway := &stubGateway{}
	uc := newTestUseCase(&stubBlockRepo{block: block}, payments, gateway)

	resp, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(11), resp.PaymentID)
	assert.Equal(t, "tok-abc", resp.Token)
	assert.Equal(t, "https://gateway.example.com/pay", resp.URL)
	// Предоплата 50% от 27000
	assert.Equal(t, int64(13500), resp.Amount)
	assert.NotEmpty(t, resp.OrderID)

	require.NotNil(t, gateway.req)
	assert.Equal(t, "session-abc", gateway.req.SessionID)
	assert.Equal(t, int64(13500), gateway.req.Amount)
	assert.Equal(t, "https://smc.example.com/payments/return", gateway.req.ReturnURL)

	require.NotNil(t, payments.created)
	assert.Equal(t, block.ID, payments.created.BlockID)
	assert.Equal(t, domain.TxInitiated, payments.created.Status)
	assert.Equal(t, 50, payments.created.PaidPercent)
}

func TestExecute_FullPaymentAmount(t *testing.T) {
	block := testBlock()
	uc := newTestUseCase(&stubBlockRepo{block: block}, &stubPaymentRepo{}, &stubGateway{})

	resp, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 100})

	require.NoError(t, err)
	assert.Equal(t, int64(27000), resp.Amount)
}

func TestExecute_BlockNotFound(t *testing.T) {
	uc := newTestUseCase(&stubBlockRepo{}, &stubPaymentRepo{}, &stubGateway{})

	_, err := uc.Execute(context.Background(), &Request{BlockID: "unknown", PaidPercent: 50})

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestExecute_BlockExpired(t *testing.T) {
	block := testBlock()
	block.ExpiresAt = testNow.Add(-time.Second)
	payments := &stubPaymentRepo{}
	uc := newTestUseCase(&stubBlockRepo{block: block}, payments, &stubGateway{})

	_, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	assert.ErrorIs(t, err, ErrBlockExpired)
	assert.Nil(t, payments.created)
}

func TestExecute_GatewayUnavailable(t *testing.T) {
	block := testBlock()
	payments := &stubPaymentRepo{}
	gateway := &stubGateway{err: paymentgateway.ErrGatewayUnavailable}
	uc := newTestUseCase(&stubBlockRepo{block: block}, payments, gateway)

	_, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	assert.ErrorIs(t, err, ErrGatewayUnavailable)
	// Транзакция в шлюзе не создана, регистрировать нечего
	assert.Nil(t, payments.created)
}

func TestExecute_InvalidPaidPercent(t *testing.T) {
	uc := newTestUseCase(&stubBlockRepo{block: testBlock()}, &stubPaymentRepo{}, &stubGateway{})

	for _, percent := range []int{0, 25, 75, 150} {
		_, err := uc.Execute(context.Background(), &Request{BlockID: "some-block", PaidPercent: percent})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestExecute_EmptyBlockID(t *testing.T) {
	uc := newTestUseCase(&stubBlockRepo{}, &stubPaymentRepo{}, &stubGateway{})

	_, err := uc.Execute(context.Background(), &Request{PaidPercent: 50})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
