package persistence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mcoot/pocketcasino/internal/dependencies/clock"
	"github.com/mcoot/pocketcasino/internal/model"
)

// DefaultDebounce is the idle window before a scheduled save is written
const DefaultDebounce = time.Second

// Saver batches saves: each Schedule restarts the idle window, and only the
// latest snapshot is written once the window passes without another call.
type Saver struct {
	adapter *Adapter
	clock   clock.Clock
	delay   time.Duration
	logger  *slog.Logger

	// writeMu serializes writes so an older snapshot never lands after a newer one
	writeMu sync.Mutex

	mu      sync.Mutex
	timer   clock.Timer
	pending *model.Progression
	closed  bool
}

// NewSaver creates a debounced saver. A non-positive delay uses DefaultDebounce.
func NewSaver(adapter *Adapter, clk clock.Clock, delay time.Duration, logger *slog.Logger) *Saver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Saver{
		adapter: adapter,
		clock:   clk,
		delay:   delay,
		logger:  logger,
	}
}

// Delay returns the idle window
func (s *Saver) Delay() time.Duration {
	return s.delay
}

// Schedule queues snapshot for writing after the idle window. The caller
// must not mutate snapshot afterwards.
func (s *Saver) Schedule(snapshot *model.Progression) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = snapshot
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(s.delay, s.fire)
}

// Pending reports whether a scheduled save has not been written yet
func (s *Saver) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

func (s *Saver) fire() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	snapshot := s.take()
	if snapshot == nil {
		return
	}
	if err := s.adapter.Save(context.Background(), snapshot); err != nil {
		s.logger.Error("failed to save state", slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("saved state", slog.Int64("coins", snapshot.Coins))
}

// take cancels the timer and returns the pending snapshot, if any
func (s *Saver) take() *model.Progression {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	snapshot := s.pending
	s.pending = nil
	return snapshot
}

// Flush cancels the idle window and writes the pending snapshot now.
// It is a no-op when nothing is pending.
func (s *Saver) Flush(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	snapshot := s.take()
	if snapshot == nil {
		return nil
	}
	return s.adapter.Save(ctx, snapshot)
}

// SaveNow discards any pending snapshot and writes snapshot immediately
func (s *Saver) SaveNow(ctx context.Context, snapshot *model.Progression) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.take()
	return s.adapter.Save(ctx, snapshot)
}

// Close flushes anything pending and stops accepting new schedules
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return s.Flush(ctx)
}
