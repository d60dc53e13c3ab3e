package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/niggl1/appsindico/internal/shared/logger"
)

// DefaultSweepSchedule runs the sweep every fifteen minutes.
const DefaultSweepSchedule = "*/15 * * * *"

// ExpiredSweeper deactivates share links whose expiry has passed and
// reports how many were touched.
type ExpiredSweeper interface {
	Execute(ctx context.Context) (int64, error)
}

// ShareLinkSweepScheduler runs the expiry sweep on a cron schedule in UTC.
// Overlapping runs are skipped.
type ShareLinkSweepScheduler struct {
	sweeper  ExpiredSweeper
	logger   logger.Interface
	cron     *cron.Cron
	schedule string
	timeout  time.Duration

	mu       sync.Mutex
	ctx      context.Context
	stopOnce sync.Once
}

// NewShareLinkSweepScheduler fails on an invalid cron expression.
func NewShareLinkSweepScheduler(sweeper ExpiredSweeper, schedule string, logger logger.Interface) (*ShareLinkSweepScheduler, error) {
	if schedule == "" {
		schedule = DefaultSweepSchedule
	}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &ShareLinkSweepScheduler{
		sweeper:  sweeper,
		logger:   logger,
		cron:     c,
		schedule: schedule,
		timeout:  time.Minute,
		ctx:      context.Background(),
	}

	if _, err := c.AddFunc(schedule, s.runJob); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start runs one sweep immediately, then hands over to cron.
func (s *ShareLinkSweepScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	s.logger.Infow("starting share link sweep scheduler", "schedule", s.schedule)

	s.Sweep(ctx)
	s.cron.Start()
}

// Stop waits for a running sweep to finish.
func (s *ShareLinkSweepScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping share link sweep scheduler")
		<-s.cron.Stop().Done()
		s.logger.Infow("share link sweep scheduler stopped")
	})
}

func (s *ShareLinkSweepScheduler) runJob() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	s.Sweep(ctx)
}

// Sweep executes a single pass and returns the number of links deactivated.
func (s *ShareLinkSweepScheduler) Sweep(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	startTime := time.Now()

	count, err := s.sweeper.Execute(ctx)
	if err != nil {
		s.logger.Errorw("share link sweep failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return 0
	}

	if count > 0 {
		s.logger.Infow("share link sweep finished",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no expired share links to sweep",
			"duration", time.Since(startTime),
		)
	}
	return count
}
