// Package autosave debounces draft saves. Each Touch replaces the pending
// payload and restarts the quiet period; when it elapses the latest payload
// is saved. A save that starts while another is in flight cancels it, so
// the last write wins and nothing queues up.
package autosave

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// DefaultDelay is the quiet period used when New is given zero.
const DefaultDelay = 2 * time.Second

// SaveFunc persists one payload. It must return promptly once ctx is done.
type SaveFunc func(ctx context.Context, payload json.RawMessage) error

type Saver struct {
	save   SaveFunc
	delay  time.Duration
	logger *slog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending json.RawMessage
	cancel  context.CancelFunc
	gen     uint64
	closed  bool
	lastErr error

	wg sync.WaitGroup
}

func New(save SaveFunc, delay time.Duration, logger *slog.Logger) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Saver{save: save, delay: delay, logger: logger}
}

// Touch records payload as the latest state and restarts the quiet period.
// It is a no-op after Close.
func (s *Saver) Touch(payload json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.pending = payload
	if s.timer == nil {
		s.timer = time.AfterFunc(s.delay, s.fire)
		return
	}
	s.timer.Reset(s.delay)
}

// Flush saves the pending payload now, superseding any save in flight.
// It returns nil when nothing is pending.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	payload := s.pending
	s.pending = nil
	if payload == nil || s.closed {
		s.mu.Unlock()
		return nil
	}
	runCtx, gen := s.begin(ctx)
	s.mu.Unlock()

	return s.run(runCtx, gen, payload)
}

// Close stops the timer and waits for the save in flight. A payload
// touched but not yet saved is dropped; call Flush first to keep it.
func (s *Saver) Close() error {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = nil
	s.mu.Unlock()

	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Saver) fire() {
	s.mu.Lock()
	payload := s.pending
	s.pending = nil
	if payload == nil || s.closed {
		s.mu.Unlock()
		return
	}
	ctx, gen := s.begin(context.Background())
	s.mu.Unlock()

	if err := s.run(ctx, gen, payload); err != nil {
		s.logger.Warn("autosave failed", slog.Any("error", err))
	}
}

// begin cancels the save in flight and registers a new one. mu is held.
func (s *Saver) begin(parent context.Context) (context.Context, uint64) {
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.gen++
	s.cancel = cancel
	s.wg.Add(1)
	return ctx, s.gen
}

func (s *Saver) run(ctx context.Context, gen uint64, payload json.RawMessage) error {
	defer s.wg.Done()
	err := s.save(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == gen {
		s.cancel()
		s.cancel = nil
	}
	if errors.Is(err, context.Canceled) && s.gen != gen {
		// superseded by a newer save
		return nil
	}
	s.lastErr = err
	return err
}
