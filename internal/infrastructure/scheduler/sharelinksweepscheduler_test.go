package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/shared/logger"
)

type fakeSweeper struct {
	calls atomic.Int32
	count int64
	err   error
}

func (f *fakeSweeper) Execute(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	return f.count, f.err
}

func TestNewShareLinkSweepScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewShareLinkSweepScheduler(&fakeSweeper{}, "every tuesday", logger.NewLogger())
	assert.Error(t, err)
}

func TestNewShareLinkSweepScheduler_DefaultSchedule(t *testing.T) {
	s, err := NewShareLinkSweepScheduler(&fakeSweeper{}, "", logger.NewLogger())
	require.NoError(t, err)
	assert.Equal(t, DefaultSweepSchedule, s.schedule)
}

func TestSweep_ReturnsCount(t *testing.T) {
	sweeper := &fakeSweeper{count: 3}
	s, err := NewShareLinkSweepScheduler(sweeper, "@hourly", logger.NewLogger())
	require.NoError(t, err)

	assert.Equal(t, int64(3), s.Sweep(context.Background()))
	assert.Equal(t, int32(1), sweeper.calls.Load())
}

func TestSweep_ErrorIsSwallowed(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	s, err := NewShareLinkSweepScheduler(sweeper, "@hourly", logger.NewLogger())
	require.NoError(t, err)

	assert.Equal(t, int64(0), s.Sweep(context.Background()))
}

func TestStart_SweepsImmediatelyAndStops(t *testing.T) {
	sweeper := &fakeSweeper{}
	s, err := NewShareLinkSweepScheduler(sweeper, "@hourly", logger.NewLogger())
	require.NoError(t, err)

	s.Start(context.Background())
	s.Stop()
	s.Stop()

	assert.Equal(t, int32(1), sweeper.calls.Load())
}
