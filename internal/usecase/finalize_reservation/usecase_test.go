package finalize_reservation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubCourtRepo struct {
	court *domain.Court
	err   error
}

func (s *stubCourtRepo) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.court, nil
}

type stubReservationRepo struct {
	existing     *domain.Reservation
	reservations []*domain.Reservation
	created      *domain.Reservation
}

func (s *stubReservationRepo) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	created := *res
	created.ID = 42
	created.CreatedAt = testNow
	s.created = &created
	return &created, nil
}

func (s *stubReservationRepo) GetByBlockID(ctx context.Context, blockID string) (*domain.Reservation, error) {
	if s.existing == nil {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return s.existing, nil
}

func (s *stubReservationRepo) ListActiveByCourtDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Reservation, error) {
	return s.reservations, nil
}

type stubBlockRepo struct {
	block   *domain.TemporalBlock
	blocks  []*domain.TemporalBlock
	deleted []string
}

func (s *stubBlockRepo) GetByID(ctx context.Context, id string) (*domain.TemporalBlock, error) {
	if s.block == nil || s.block.ID != id {
		return nil, blockRepo.ErrBlockNotFound
	}
	return s.block, nil
}

func (s *stubBlockRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubBlockRepo) ListLiveByCourtDate(ctx context.Context, courtID int64, date time.Time, now time.Time) ([]*domain.TemporalBlock, error) {
	return s.blocks, nil
}

func testBlock() *domain.TemporalBlock {
	return &domain.TemporalBlock{
		ID:              "7c1f3a2e-0000-4000-8000-000000000001",
		CourtID:         1,
		Date:            time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:30",
		SessionID:       "session-abc",
		ReservationCode: "A1B2C3",
		Customer: domain.Customer{
			Name:  "Juan Perez",
			Email: "juan@example.com",
		},
		TotalPrice: 27000,
		ExpiresAt:  testNow.Add(3 * time.Minute),
	}
}

func newTestUseCase(courts *stubCourtRepo, reservations *stubReservationRepo, blocks *stubBlockRepo) *UseCase {
	uc := NewUseCase(courts, reservations, blocks, stubTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_Success(t *testing.T) {
	block := testBlock()
	reservations := &stubReservationRepo{}
	blocks := &stubBlockRepo{block: block}
	uc := newTestUseCase(&stubCourtRepo{}, reservations, blocks)

	resp, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "A1B2C3", resp.Code)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPartiallyPaid), resp.PaymentStatus)
	assert.Equal(t, 50, resp.PaidPercent)
	assert.Equal(t, int64(27000), resp.TotalPrice)
	assert.Equal(t, domain.CommissionAmount(27000), resp.Commission)
	assert.Equal(t, string(domain.ChannelWebDirect), resp.Channel)

	// Блок выполнил свою роль
	assert.Equal(t, []string{block.ID}, blocks.deleted)

	require.NotNil(t, reservations.created)
	require.NotNil(t, reservations.created.BlockID)
	assert.Equal(t, block.ID, *reservations.created.BlockID)
}

func TestExecute_FullPayment(t *testing.T) {
	block := testBlock()
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, &stubBlockRepo{block: block})

	resp, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 100})

	require.NoError(t, err)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
}

func TestExecute_ReplayReturnsExistingReservation(t *testing.T) {
	existing := &domain.Reservation{
		ID:            42,
		Code:          "A1B2C3",
		CourtID:       1,
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPartiallyPaid,
		PaidPercent:   50,
	}
	reservations := &stubReservationRepo{existing: existing}
	blocks := &stubBlockRepo{}
	uc := newTestUseCase(&stubCourtRepo{}, reservations, blocks)

	resp, err := uc.Execute(context.Background(), &Request{BlockID: "gone-block-id", PaidPercent: 50})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "A1B2C3", resp.Code)
	// Повторная доставка не создаёт второго бронирования
	assert.Nil(t, reservations.created)
	assert.Empty(t, blocks.deleted)
}

func TestExecute_BlockNotFound(t *testing.T) {
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, &stubBlockRepo{})

	_, err := uc.Execute(context.Background(), &Request{BlockID: "unknown", PaidPercent: 50})

	assert.ErrorIs(t, err, ErrBlockNotFound)
}

func TestExecute_BlockExpired(t *testing.T) {
	block := testBlock()
	block.ExpiresAt = testNow.Add(-time.Second)
	blocks := &stubBlockRepo{block: block}
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, blocks)

	_, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	assert.ErrorIs(t, err, ErrBlockExpired)
	assert.Empty(t, blocks.deleted)
}

func TestExecute_ConflictWithReservation(t *testing.T) {
	block := testBlock()
	reservations := &stubReservationRepo{reservations: []*domain.Reservation{
		{StartTime: "10:00", EndTime: "11:00", Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(&stubCourtRepo{}, reservations, &stubBlockRepo{block: block})

	_, err := uc.Execute(context.Background(), &Request{BlockID: block.ID, PaidPercent: 50})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, reservations.created)
}

func TestExecute_InvalidPaidPercent(t *testing.T) {
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, &stubBlockRepo{})

	for _, percent := range []int{0, 25, 75, 101} {
		_, err := uc.Execute(context.Background(), &Request{BlockID: "some-block", PaidPercent: percent})
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func adminRequest() *AdminRequest {
	return &AdminRequest{
		CourtID:   1,
		Date:      time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Customer: CustomerData{
			Name:  "Maria Lopez",
			Email: "maria@example.com",
		},
		AdminID:     7,
		PaidPercent: 0,
	}
}

func TestExecuteAdmin_Success(t *testing.T) {
	court := &domain.Court{ID: 1, HourlyPrice: 18000, Active: true}
	reservations := &stubReservationRepo{}
	uc := newTestUseCase(&stubCourtRepo{court: court}, reservations, &stubBlockRepo{})

	resp, err := uc.ExecuteAdmin(context.Background(), adminRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.ChannelAdmin), resp.Channel)
	// Оплата на месте
	assert.Equal(t, string(domain.PaymentUnpaid), resp.PaymentStatus)
	assert.Equal(t, int64(18000), resp.TotalPrice)
	assert.Len(t, resp.Code, domain.ReservationCodeLength)

	require.NotNil(t, reservations.created)
	require.NotNil(t, reservations.created.AdminID)
	assert.Equal(t, int64(7), *reservations.created.AdminID)
	assert.Nil(t, reservations.created.BlockID)
}

func TestExecuteAdmin_BlockedByLiveBlock(t *testing.T) {
	court := &domain.Court{ID: 1, HourlyPrice: 18000, Active: true}
	blocks := &stubBlockRepo{blocks: []*domain.TemporalBlock{
		{StartTime: "10:30", EndTime: "11:30", ExpiresAt: testNow.Add(3 * time.Minute)},
	}}
	uc := newTestUseCase(&stubCourtRepo{court: court}, &stubReservationRepo{}, blocks)

	_, err := uc.ExecuteAdmin(context.Background(), adminRequest())

	require.Error(t, err)
	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	// Администратор не перехватывает слот из-под оформляемого заказа
	assert.Equal(t, domain.KindTemporalBlock, conflictErr.Conflict.Kind)
}

func TestExecuteAdmin_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&stubCourtRepo{err: courtRepo.ErrCourtNotFound}, &stubReservationRepo{}, &stubBlockRepo{})

	_, err := uc.ExecuteAdmin(context.Background(), adminRequest())

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecuteAdmin_CourtInactive(t *testing.T) {
	court := &domain.Court{ID: 1, HourlyPrice: 18000, Active: false}
	uc := newTestUseCase(&stubCourtRepo{court: court}, &stubReservationRepo{}, &stubBlockRepo{})

	_, err := uc.ExecuteAdmin(context.Background(), adminRequest())

	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestExecuteAdmin_InvalidAdminID(t *testing.T) {
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, &stubBlockRepo{})

	req := adminRequest()
	req.AdminID = 0

	_, err := uc.ExecuteAdmin(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecuteAdmin_CustomerNameTooLong(t *testing.T) {
	uc := newTestUseCase(&stubCourtRepo{}, &stubReservationRepo{}, &stubBlockRepo{})

	req := adminRequest()
	req.Customer.Name = strings.Repeat("x", domain.MaxCustomerNameLength+1)

	_, err := uc.ExecuteAdmin(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
