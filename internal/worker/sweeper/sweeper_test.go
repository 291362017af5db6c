package sweeper

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubBlockRepo struct {
	deleted int64
	err     error
	calls   int
	gotNow  time.Time
}

func (s *stubBlockRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.calls++
	s.gotNow = now
	return s.deleted, s.err
}

func TestSweep_DeletesExpiredBlocks(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &stubBlockRepo{deleted: 3}

	s, err := New(repo, 60, nopLogger{})
	require.NoError(t, err)
	s.timeProvider = &fixedTimeProvider{now: now}

	s.sweep(context.Background())

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, now, repo.gotNow)
}

func TestSweep_RepositoryErrorDoesNotPanic(t *testing.T) {
	repo := &stubBlockRepo{err: errors.New("connection reset")}

	s, err := New(repo, 60, nopLogger{})
	require.NoError(t, err)

	s.sweep(context.Background())

	assert.Equal(t, 1, repo.calls)
}

func TestNew_DefaultsInvalidInterval(t *testing.T) {
	s, err := New(&stubBlockRepo{}, 0, nopLogger{})

	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, s.interval)
}

func TestStartStop(t *testing.T) {
	s, err := New(&stubBlockRepo{}, 60, nopLogger{})
	require.NoError(t, err)

	require.NoError(t, s.Start(context.Background()))
	assert.NoError(t, s.Stop())
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }
