package bridge

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/keywire/keywire/internal/log"
	"github.com/keywire/keywire/keyboard"
	"github.com/stretchr/testify/assert"
)

type captureSink struct {
	bytes []byte
	err   error
}

func (s *captureSink) Transmit(b byte) error {
	if s.err != nil {
		return s.err
	}
	s.bytes = append(s.bytes, b)
	return nil
}

func testConfig() Config {
	return Config{TickInterval: 10 * time.Millisecond, Interval: 500 * time.Millisecond}
}

func testBridge(sink Sink) *Bridge {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(testConfig(), sink, logger, log.NewRaw(nil))
}

func report(mods keyboard.Modifiers, key keyboard.KeyCode) []byte {
	return []byte{byte(mods), 0x00, byte(key), 0x00, 0x00, 0x00, 0x00, 0x00}
}

// steps drives the scheduler synchronously, one call per tick.
func steps(b *Bridge, n int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		b.sched.step(ctx)
	}
}

func TestRepeatCadence(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	// One report, held for 2000ms of ticks: emissions at 0, 500, 1000
	// and 1500ms.
	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 200)

	assert.Equal(t, []byte("aaaa"), sink.bytes)
	assert.Equal(t, uint64(4), b.Stats().BytesEmitted)
}

func TestKeyChangeFiresImmediately(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 20) // 200ms into the repeat interval
	assert.Equal(t, []byte("a"), sink.bytes)

	// New key mid-interval: the next tick emits, no 500ms wait.
	b.OnReport(report(0, keyboard.KeyB))
	steps(b, 1)
	assert.Equal(t, []byte("ab"), sink.bytes)
}

func TestReleaseStopsEmission(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 1)
	assert.Equal(t, []byte("a"), sink.bytes)

	b.OnReport(report(0, keyboard.KeyNone))
	steps(b, 150)
	assert.Equal(t, []byte("a"), sink.bytes)

	// Pressing again fires on the next tick.
	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 1)
	assert.Equal(t, []byte("aa"), sink.bytes)
}

func TestModifiersApplyToRepeats(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 50)
	// Shift arrives without a key change: the phase keeps running and the
	// next repeat uses the new modifiers.
	b.OnReport(report(keyboard.ModLeftShift, keyboard.KeyA))
	steps(b, 50)

	assert.Equal(t, []byte("aA"), sink.bytes)
}

func TestUnmappedKeyAdvancesPhase(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	b.OnReport(report(0, 0x39)) // CapsLock, unmapped
	steps(b, 5)

	assert.Empty(t, sink.bytes)
	assert.Equal(t, uint32(5), b.sched.tick.Load())
}

func TestSinkErrorDoesNotStopScheduler(t *testing.T) {
	sink := &captureSink{err: errors.New("uart write failed")}
	b := testBridge(sink)

	b.OnReport(report(0, keyboard.KeyA))
	steps(b, 100)

	stats := b.Stats()
	assert.Equal(t, uint64(0), stats.BytesEmitted)
	assert.Equal(t, uint64(2), stats.TransmitErrors) // attempts at tick 0 and 50

	// A recovered sink picks the cadence back up.
	sink.err = nil
	steps(b, 100)
	assert.Equal(t, []byte("aa"), sink.bytes)
}

func TestRunStopsOnCancel(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := Config{TickInterval: time.Millisecond, Interval: 10 * time.Millisecond}
	b := New(cfg, &captureSink{}, logger, log.NewRaw(nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on cancel")
	}
}

func TestConfigValidate(t *testing.T) {
	type testCase struct {
		name    string
		cfg     Config
		wantErr bool
	}

	testCases := []testCase{
		{name: "defaults", cfg: testConfig()},
		{name: "equal intervals", cfg: Config{TickInterval: 10 * time.Millisecond, Interval: 10 * time.Millisecond}},
		{name: "zero tick", cfg: Config{TickInterval: 0, Interval: 500 * time.Millisecond}, wantErr: true},
		{name: "zero interval", cfg: Config{TickInterval: 10 * time.Millisecond, Interval: 0}, wantErr: true},
		{name: "not a multiple", cfg: Config{TickInterval: 7 * time.Millisecond, Interval: 500 * time.Millisecond}, wantErr: true},
		{name: "negative interval", cfg: Config{TickInterval: 10 * time.Millisecond, Interval: -500 * time.Millisecond}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestShortReportsAreCounted(t *testing.T) {
	sink := &captureSink{}
	b := testBridge(sink)

	b.OnReport([]byte{0x02})
	b.OnReport(report(0, keyboard.KeyA))

	stats := b.Stats()
	assert.Equal(t, uint64(1), stats.ReportsAccepted)
	assert.Equal(t, uint64(1), stats.ReportsDropped)
}
