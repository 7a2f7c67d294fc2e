// ABOUTME: Tests for the reminder scheduler lifecycle.
// ABOUTME: Uses short periods to verify ticking, idempotent stop, and quiescence.
package reminder

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerTicks(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(5*time.Millisecond, func(time.Time) { ticks.Add(1) })
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for ticks.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for ticks, got %d", ticks.Load())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSchedulerPassesClockTime(t *testing.T) {
	fixed := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	got := make(chan time.Time, 1)
	s := NewScheduler(5*time.Millisecond, func(now time.Time) {
		select {
		case got <- now:
		default:
		}
	}, WithClock(func() time.Time { return fixed }))
	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	select {
	case now := <-got:
		assert.True(t, now.Equal(fixed))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
	}
}

func TestSchedulerNoTicksAfterStop(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(time.Millisecond, func(time.Time) { ticks.Add(1) })
	require.NoError(t, s.Start(context.Background()))
	time.Sleep(20 * time.Millisecond)

	s.Stop()
	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())
}

func TestSchedulerStopIdempotent(t *testing.T) {
	s := NewScheduler(time.Millisecond, func(time.Time) {})
	require.NoError(t, s.Start(context.Background()))

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
	select {
	case <-s.Done():
	default:
		t.Fatal("expected loop to have exited")
	}
}

func TestSchedulerStopBeforeStart(t *testing.T) {
	s := NewScheduler(time.Millisecond, func(time.Time) {})
	s.Stop()
	assert.ErrorIs(t, s.Start(context.Background()), ErrStopped)
}

func TestSchedulerStartTwice(t *testing.T) {
	var ticks atomic.Int64
	s := NewScheduler(time.Millisecond, func(time.Time) { ticks.Add(1) })
	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestSchedulerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewScheduler(time.Millisecond, func(time.Time) {})
	require.NoError(t, s.Start(ctx))
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit on context cancel")
	}
	s.Stop()
}

func TestDefaultPeriod(t *testing.T) {
	s := NewScheduler(0, func(time.Time) {})
	assert.Equal(t, 60*time.Second, s.Period())
}
