// Package serial provides the byte sink of the bridge: a serial device
// configured for raw output, or any io.Writer for development.
package serial

import (
	"errors"
	"io"
	"sync"
)

// ErrUnsupported is returned by Open on platforms without termios support.
var ErrUnsupported = errors.New("serial output is not supported on this platform")

// Config holds the output side of the bridge.
type Config struct {
	Device string `help:"Serial device to transmit decoded bytes on (e.g. /dev/ttyUSB0)" env:"KEYWIRE_OUTPUT_DEVICE"`
	Baud   int    `help:"Serial baud rate" default:"115200" env:"KEYWIRE_OUTPUT_BAUD"`
	Stdout bool   `help:"Write decoded bytes to stdout instead of a serial device" env:"KEYWIRE_OUTPUT_STDOUT"`
}

// Port transmits single octets to an underlying writer. Writes are
// serialized; there is no framing and no acknowledgement.
type Port struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterPort wraps an arbitrary writer as a Port. Used for the stdout
// sink and in tests.
func NewWriterPort(w io.Writer) *Port {
	return &Port{w: w}
}

// Transmit writes one byte to the port.
func (p *Port) Transmit(b byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.w.Write([]byte{b})
	return err
}

// Close closes the underlying writer when it is closable.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
