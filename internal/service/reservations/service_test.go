package reservations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CourtService/internal/service/reservations/models"
	"github.com/m04kA/SMC-CourtService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubReservationRepo struct {
	reservation *domain.Reservation
	cancelErr   error
	cancelled   []int64
}

func (s *stubReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if s.reservation == nil || s.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return s.reservation, nil
}

func (s *stubReservationRepo) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	if s.reservation == nil || s.reservation.Code != code {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return s.reservation, nil
}

func (s *stubReservationRepo) Cancel(ctx context.Context, id int64, reason string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        42,
		Code:      "A1B2C3",
		CourtID:   1,
		StartTime: "10:00",
		EndTime:   "11:30",
		Customer: domain.Customer{
			Name:  "Juan Perez",
			Email: "juan@example.com",
			Phone: ptr.Ptr("+56 9 1234 5678"),
		},
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPartiallyPaid,
		PaidPercent:   50,
		TotalPrice:    27000,
		Channel:       domain.ChannelWebDirect,
	}
}

func TestGetByCode_Success(t *testing.T) {
	svc := NewService(&stubReservationRepo{reservation: testReservation()}, nopLogger{})

	resp, err := svc.GetByCode(context.Background(), "A1B2C3")

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "A1B2C3", resp.Code)
	// Половина оплачена, половину доплачивают на месте
	assert.Equal(t, int64(13500), resp.RemainingAmount)
}

func TestGetByCode_NotFound(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, nopLogger{})

	_, err := svc.GetByCode(context.Background(), "ZZZZZZ")

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByCode_EmptyCode(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, nopLogger{})

	_, err := svc.GetByCode(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success(t *testing.T) {
	repo := &stubReservationRepo{reservation: testReservation()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		AdminID:            7,
		CancellationReason: "клиент попросил перенос",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{42}, repo.cancelled)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	reservation := testReservation()
	reservation.Status = domain.StatusCancelled
	svc := NewService(&stubReservationRepo{reservation: reservation}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		AdminID:            7,
		CancellationReason: "повторная отмена",
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&stubReservationRepo{}, nopLogger{})

	err := svc.Cancel(context.Background(), 99, &models.CancelReservationRequest{
		AdminID:            7,
		CancellationReason: "нет такого",
	})

	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCancel_MissingReason(t *testing.T) {
	svc := NewService(&stubReservationRepo{reservation: testReservation()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{AdminID: 7})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := NewService(&stubReservationRepo{reservation: testReservation()}, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		AdminID:            7,
		CancellationReason: strings.Repeat("a", domain.MaxCancellationReasonLength+1),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_RaceWithParallelCancel(t *testing.T) {
	repo := &stubReservationRepo{
		reservation: testReservation(),
		cancelErr:   reservationRepo.ErrReservationNotFound,
	}
	svc := NewService(repo, nopLogger{})

	// Строка уже переведена в cancelled параллельным запросом
	err := svc.Cancel(context.Background(), 42, &models.CancelReservationRequest{
		AdminID:            7,
		CancellationReason: "гонка отмен",
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}
