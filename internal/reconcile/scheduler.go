package reconcile

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/intrana/discovery-backend/internal/adapter"
	"github.com/intrana/discovery-backend/internal/logger"
)

// Scheduler runs the launch reconcile on a fixed interval
// It is a long-running background task with a Start/Stop lifecycle
//
//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler.go -package=mocks -mock_names=Scheduler=MockScheduler
type Scheduler interface {
	// Start begins the scheduler's main loop
	// This is a blocking call that runs until the context is canceled
	Start(ctx context.Context) error

	// Stop gracefully stops the scheduler
	// This should wait for any in-progress cycle to complete
	Stop(ctx context.Context) error

	// Name returns the scheduler's name for logging and identification
	Name() string
}

type scheduler struct {
	engine    Engine
	interval  time.Duration
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewScheduler creates a scheduler that invokes the engine's launch
// reconcile every interval. Cycle errors are logged, never fatal.
func NewScheduler(engine Engine, interval time.Duration, clock adapter.Clock) Scheduler {
	return &scheduler{
		engine:    engine,
		interval:  interval,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the scheduler's name
func (s *scheduler) Name() string {
	return "launch-reconcile-scheduler"
}

// Start begins the scheduler's main loop
func (s *scheduler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting launch reconcile scheduler",
		zap.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Launch reconcile scheduler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Launch reconcile scheduler stop requested")
			return nil
		default:
			s.runCycle(ctx)

			// Use context-aware sleep so we can be interrupted
			if !s.sleep(ctx, s.interval) {
				continue // Loop once more to pick up the stop reason
			}
		}
	}
}

// Stop gracefully stops the scheduler with timeout support
func (s *scheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping launch reconcile scheduler")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Launch reconcile scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Launch reconcile scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runCycle runs a single launch reconcile cycle
func (s *scheduler) runCycle(ctx context.Context) {
	result, err := s.engine.ReconcileLaunchedCollections(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}
		return
	}

	if result.Launched > 0 || result.Orphaned > 0 {
		logger.InfoCtx(ctx, "Scheduled launch reconcile applied changes",
			zap.Int("launched", result.Launched),
			zap.Int("orphaned", result.Orphaned),
			zap.Int64("cursor", result.CursorAfter),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted
func (s *scheduler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
