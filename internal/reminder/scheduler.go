// ABOUTME: Periodic tick loop driving reminder generation.
// ABOUTME: Start/Stop are idempotent; no tick runs after Stop returns.
package reminder

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultPeriod is the wall-clock interval between ticks.
const DefaultPeriod = 60 * time.Second

// ErrStopped is returned when starting a scheduler that was already stopped.
var ErrStopped = errors.New("reminder: scheduler stopped")

// TickFunc handles one tick. It must not call Stop.
type TickFunc func(now time.Time)

// Scheduler calls a TickFunc once per period on its own goroutine.
type Scheduler struct {
	mu      sync.Mutex
	period  time.Duration
	tick    TickFunc
	clock   func() time.Time
	logger  *log.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides time.Now for the timestamps passed to ticks.
func WithClock(clock func() time.Time) Option {
	return func(s *Scheduler) { s.clock = clock }
}

// WithLogger sets the scheduler's logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScheduler creates a stopped scheduler. A non-positive period means
// DefaultPeriod.
func NewScheduler(period time.Duration, tick TickFunc, opts ...Option) *Scheduler {
	if period <= 0 {
		period = DefaultPeriod
	}
	s := &Scheduler{
		period: period,
		tick:   tick,
		clock:  time.Now,
		logger: log.New(io.Discard),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Period returns the tick interval.
func (s *Scheduler) Period() time.Duration {
	return s.period
}

// Start launches the tick loop. The loop also ends when ctx is cancelled.
// Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	if s.started {
		return nil
	}
	s.started = true
	s.logger.Info("reminder scheduler started", "period", s.period)
	go s.loop(ctx)
	return nil
}

// Stop ends the loop and waits for an in-flight tick to finish. Safe to
// call more than once, and before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	started := s.started
	s.mu.Unlock()

	if started {
		<-s.doneCh
		s.logger.Info("reminder scheduler stopped")
	}
}

// Done is closed when the loop has exited.
func (s *Scheduler) Done() <-chan struct{} {
	return s.doneCh
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			// A tick and a stop can be ready together; stop wins.
			select {
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			default:
			}
			s.tick(s.clock())
		}
	}
}
