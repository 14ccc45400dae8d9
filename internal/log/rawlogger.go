package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// Direction tags a raw log entry with the side of the bridge it crossed.
type Direction int

const (
	// DirIn marks a raw HID report arriving from the keyboard side.
	DirIn Direction = iota
	// DirOut marks a byte transmitted to the serial side.
	DirOut
)

func (d Direction) String() string {
	if d == DirIn {
		return "KBD->"
	}
	return "->SER"
}

// RawLogger handles raw report/byte logging with optional file output.
type RawLogger interface {
	Log(dir Direction, data []byte)
}

// rawLogger implements RawLogger with thread-safe output.
type rawLogger struct {
	w  io.Writer
	mu sync.Mutex
}

// NewRaw creates a new RawLogger. If writer is nil, returns a no-op logger.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w}
}

// Log emits a single-line raw dump with timestamp, direction and hex bytes.
func (r *rawLogger) Log(dir Direction, data []byte) {
	if r.w == nil || len(data) == 0 {
		return
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		if i > 0 {
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s %s %d bytes: %s\n",
		time.Now().Format("2006/01/02 15:04:05"),
		dir,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
