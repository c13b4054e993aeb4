// Package scheduler runs the periodic invoice sweep on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Sweeper is the job the scheduler drives.
type Sweeper interface {
	CheckAllPendingInvoices(ctx context.Context) (int, error)
}

// Scheduler triggers sweeps. A sweep still running when the next tick
// arrives causes that tick to be skipped.
type Scheduler struct {
	cron    *cron.Cron
	sweeper Sweeper
	timeout time.Duration
	ctx     context.Context
	cancel  context.CancelFunc
	log     zerolog.Logger
}

// New parses spec (standard 5-field or descriptors like "@every 1m").
// timeout bounds one sweep; zero means no bound.
func New(spec string, sweeper Sweeper, timeout time.Duration, log zerolog.Logger) (*Scheduler, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		sweeper: sweeper,
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
		log:     log.With().Str("component", "scheduler").Logger(),
	}

	cronLog := cronLogger{log: s.log}
	s.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		cancel()
		return nil, fmt.Errorf("parsing schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start begins scheduling in the background.
func (s *Scheduler) Start() {
	s.log.Info().Msg("sweep scheduler started")
	s.cron.Start()
}

// Stop cancels an in-flight sweep and waits for it to return or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	s.cancel()
	select {
	case <-s.cron.Stop().Done():
		s.log.Info().Msg("sweep scheduler stopped")
	case <-ctx.Done():
		s.log.Warn().Msg("sweep scheduler stop timed out")
	}
}

// RunOnce performs one sweep immediately on the caller's goroutine.
func (s *Scheduler) RunOnce(ctx context.Context) (int, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.sweeper.CheckAllPendingInvoices(ctx)
}

func (s *Scheduler) run() {
	start := time.Now()
	active, err := s.RunOnce(s.ctx)
	if err != nil {
		s.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("sweep failed")
		return
	}
	s.log.Info().Int("active", active).Dur("elapsed", time.Since(start)).Msg("sweep finished")
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
