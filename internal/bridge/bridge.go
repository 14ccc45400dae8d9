// Package bridge wires the report-ingestion side of the keyboard bridge to
// the repeat scheduler and the serial sink.
package bridge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keywire/keywire/internal/log"
	"github.com/keywire/keywire/keyboard"
)

// Bridge owns the key state and the repeat scheduler. Raw reports arrive via
// OnReport from whatever source the command wired up; the scheduler runs on
// its own tick loop and transmits through the sink.
type Bridge struct {
	state     *keyboard.State
	sched     *Scheduler
	logger    *slog.Logger
	rawLogger log.RawLogger
}

// New builds a bridge around the given sink. The key-change hook of the
// state tracker resets the scheduler phase, so a newly pressed key is
// emitted on the next tick instead of waiting out the repeat interval.
func New(cfg Config, sink Sink, logger *slog.Logger, rawLogger log.RawLogger) *Bridge {
	b := &Bridge{
		logger:    logger,
		rawLogger: rawLogger,
	}
	b.state = keyboard.NewState(func(keyboard.KeyCode) {
		b.sched.ResetPhase()
	})
	b.sched = newScheduler(cfg, b.state, sink, logger, rawLogger)
	return b
}

// OnReport ingests one raw boot report. Short reports are dropped and
// counted; everything else overwrites the held key and modifiers as a unit.
// Never blocks on I/O and never fails the caller.
func (b *Bridge) OnReport(raw []byte) {
	b.rawLogger.Log(log.DirIn, raw)
	if !b.state.Apply(raw) {
		b.logger.Debug("dropped short report", "len", len(raw))
		return
	}
	key, mods := b.state.Held()
	b.logger.Debug("report applied",
		"key", fmt.Sprintf("0x%02X", uint8(key)),
		"modifiers", fmt.Sprintf("0x%02X", uint8(mods)))
}

// Run drives the repeat scheduler until ctx is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	return b.sched.Run(ctx)
}

// Stats is a snapshot of the bridge counters.
type Stats struct {
	ReportsAccepted uint64
	ReportsDropped  uint64
	BytesEmitted    uint64
	TransmitErrors  uint64
}

// Stats returns a point-in-time snapshot of the counters.
func (b *Bridge) Stats() Stats {
	accepted, dropped := b.state.Counters()
	return Stats{
		ReportsAccepted: accepted,
		ReportsDropped:  dropped,
		BytesEmitted:    b.sched.emitted.Load(),
		TransmitErrors:  b.sched.sinkErrs.Load(),
	}
}
