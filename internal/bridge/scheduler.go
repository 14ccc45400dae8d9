package bridge

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/keywire/keywire/internal/log"
	"github.com/keywire/keywire/keyboard"
)

// Sink transmits a single octet to the serial side. Transmission is
// best-effort; a failure is logged and the scheduler keeps ticking.
type Sink interface {
	Transmit(b byte) error
}

// Scheduler re-emits the currently held key at a fixed cadence. Each tick it
// reads the key state, and while a key is held it transmits the translated
// byte whenever the repeat phase is zero. The phase restarts when the held
// key changes, so a fresh keypress fires on the next tick rather than after
// a full repeat interval.
type Scheduler struct {
	state     *keyboard.State
	sink      Sink
	logger    *slog.Logger
	rawLogger log.RawLogger

	tickInterval time.Duration
	tickMax      uint32
	tick         atomic.Uint32

	// prev is the key observed on the previous tick; only the tick loop
	// touches it.
	prev keyboard.KeyCode

	emitted  atomic.Uint64
	sinkErrs atomic.Uint64
}

func newScheduler(cfg Config, state *keyboard.State, sink Sink, logger *slog.Logger, rawLogger log.RawLogger) *Scheduler {
	return &Scheduler{
		state:        state,
		sink:         sink,
		logger:       logger,
		rawLogger:    rawLogger,
		tickInterval: cfg.TickInterval,
		tickMax:      cfg.ticksPerRepeat(),
	}
}

// ResetPhase zeroes the repeat phase so the next tick fires immediately.
// Safe to call from the report-ingestion goroutine.
func (s *Scheduler) ResetPhase() {
	s.tick.Store(0)
}

// Run drives the tick loop until ctx is cancelled. Ticks are never skipped
// or coalesced beyond what the sink's transmit latency imposes.
func (s *Scheduler) Run(ctx context.Context) error {
	t := time.NewTicker(s.tickInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step performs one scheduler tick.
func (s *Scheduler) step(ctx context.Context) {
	key, mods := s.state.Held()

	if key == keyboard.KeyNone {
		s.prev = key
		s.tick.Store(0)
		return
	}

	// A key change is normally caught by the ingestion callback resetting
	// the phase; re-checking here also recovers a reset that raced with
	// the counter store below.
	if key != s.prev {
		s.tick.Store(0)
	}
	s.prev = key

	n := s.tick.Load()
	if n == 0 {
		if b, ok := keyboard.Translate(key, mods); ok {
			s.emit(ctx, b)
		}
	}

	// An unmapped key still advances the phase.
	n++
	if n >= s.tickMax {
		n = 0
	}
	s.tick.Store(n)
}

func (s *Scheduler) emit(ctx context.Context, b byte) {
	if err := s.sink.Transmit(b); err != nil {
		s.sinkErrs.Add(1)
		s.logger.Warn("transmit failed", "byte", b, "error", err)
		return
	}
	s.emitted.Add(1)
	s.rawLogger.Log(log.DirOut, []byte{b})
	s.logger.Log(ctx, log.LevelTrace, "auto-repeat send", "byte", b)
}
