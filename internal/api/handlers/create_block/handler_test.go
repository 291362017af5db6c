package create_block

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtService/internal/domain"
	acquireBlock "github.com/m04kA/SMC-CourtService/internal/usecase/acquire_block"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *acquireBlock.Response
	err  error
	req  *acquireBlock.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *acquireBlock.Request) (*acquireBlock.Response, error) {
	s.req = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func requestBody(t *testing.T) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(CreateBlockRequest{
		CourtID:   1,
		Date:      "2026-06-02",
		StartTime: "10:00",
		EndTime:   "11:30",
		SessionID: "session-abc",
		Customer: CustomerRequest{
			Name:  "Juan Perez",
			Email: "juan@example.com",
		},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestHandle_Created(t *testing.T) {
	expires := time.Date(2026, 6, 1, 12, 5, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &acquireBlock.Response{
		BlockID:         "7c1f3a2e-0000-4000-8000-000000000001",
		ReservationCode: "A1B2C3",
		CourtID:         1,
		Date:            time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		EndTime:         "11:30",
		TotalPrice:      27000,
		ExpiresAt:       expires,
	}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocks", requestBody(t)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A1B2C3", resp.ReservationCode)
	assert.Equal(t, "2026-06-02", resp.Date)
	assert.Equal(t, expires.Format(time.RFC3339), resp.ExpiresAt)

	require.NotNil(t, uc.req)
	assert.Equal(t, int64(1), uc.req.CourtID)
	assert.Equal(t, "session-abc", uc.req.SessionID)
}

func TestHandle_ConflictWithDetails(t *testing.T) {
	uc := &stubUseCase{err: &acquireBlock.ConflictError{Conflict: domain.Conflict{
		Kind:      domain.KindReservation,
		StartTime: "10:30",
		EndTime:   "11:30",
	}}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocks", requestBody(t)))

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "reservation", resp.Kind)
	assert.Equal(t, "10:30", resp.StartTime)
	assert.Equal(t, "11:30", resp.EndTime)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"court not found", acquireBlock.ErrCourtNotFound, http.StatusNotFound},
		{"court inactive", acquireBlock.ErrCourtInactive, http.StatusConflict},
		{"invalid interval", acquireBlock.ErrInvalidInterval, http.StatusBadRequest},
		{"past date", acquireBlock.ErrInvalidDate, http.StatusBadRequest},
		{"invalid input", acquireBlock.ErrInvalidInput, http.StatusBadRequest},
		{"internal", acquireBlock.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocks", requestBody(t)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocks", bytes.NewBufferString("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	body, err := json.Marshal(CreateBlockRequest{
		CourtID:   1,
		Date:      "02-06-2026",
		StartTime: "10:00",
		EndTime:   "11:30",
	})
	require.NoError(t, err)

	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/blocks", bytes.NewBuffer(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
