package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"golang.org/x/term"

	"github.com/keywire/keywire/internal/bridge"
	"github.com/keywire/keywire/internal/log"
	"github.com/keywire/keywire/internal/serial"
	"github.com/keywire/keywire/internal/source"
)

// Bridge runs the HID-keyboard-to-serial bridge.
type Bridge struct {
	Input  source.Config `embed:"" prefix:"input."`
	Output serial.Config `embed:"" prefix:"output."`
	Repeat bridge.Config `embed:"" prefix:"repeat."`
}

// Run is called by Kong when the bridge command is executed.
func (b *Bridge) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return b.StartBridge(ctx, logger, rawLogger)
}

// StartBridge wires source -> tracker and scheduler -> sink and runs both
// until ctx is cancelled or the input drains.
func (b *Bridge) StartBridge(ctx context.Context, logger *slog.Logger, rawLogger log.RawLogger) error {
	if err := b.Repeat.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("Starting keywire bridge",
		"os", runtime.GOOS, "arch", runtime.GOARCH, "cpus", runtime.NumCPU(),
		"tick", b.Repeat.TickInterval, "repeat", b.Repeat.Interval)

	sink, err := b.openSink(logger)
	if err != nil {
		return err
	}
	defer func() { _ = sink.Close() }()

	br := bridge.New(b.Repeat, sink, logger, rawLogger)

	src, err := b.openSource(logger)
	if err != nil {
		return err
	}

	srcErrCh := make(chan error, 1)
	go func() { srcErrCh <- src.Run(ctx, br.OnReport) }()

	schedErrCh := make(chan error, 1)
	go func() { schedErrCh <- br.Run(ctx) }()

	var runErr error
	var srcDone, schedDone bool
	select {
	case <-ctx.Done():
	case runErr = <-srcErrCh:
		srcDone = true
		if runErr == nil {
			logger.Info("input drained, shutting down")
		}
	case runErr = <-schedErrCh:
		schedDone = true
	}

	cancel()
	_ = src.Close()
	if !srcDone {
		<-srcErrCh
	}
	if !schedDone {
		<-schedErrCh
	}

	stats := br.Stats()
	logger.Info("bridge stopped",
		"reports", stats.ReportsAccepted,
		"dropped", stats.ReportsDropped,
		"bytes", stats.BytesEmitted,
		"transmit_errors", stats.TransmitErrors)
	return runErr
}

func (b *Bridge) openSink(logger *slog.Logger) (*serial.Port, error) {
	switch {
	case b.Output.Stdout:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Warn("stdout is a terminal; decoded control bytes will be written raw")
		}
		return serial.NewWriterPort(os.Stdout), nil
	case b.Output.Device != "":
		port, err := serial.Open(b.Output.Device, b.Output.Baud)
		if err != nil {
			return nil, err
		}
		logger.Info("serial device opened", "device", b.Output.Device, "baud", b.Output.Baud)
		return port, nil
	default:
		return nil, errors.New("no output configured: set --output.device or --output.stdout")
	}
}

func (b *Bridge) openSource(logger *slog.Logger) (source.Source, error) {
	switch {
	case b.Input.Device != "" && b.Input.Listen != "":
		return nil, errors.New("--input.device and --input.listen are mutually exclusive")
	case b.Input.Device != "":
		return source.OpenDevice(b.Input.Device, logger)
	case b.Input.Listen != "":
		return source.NewTCP(b.Input.Listen, logger), nil
	default:
		return nil, errors.New("no input configured: set --input.device or --input.listen")
	}
}
