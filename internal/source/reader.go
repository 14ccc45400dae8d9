package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/keywire/keywire/keyboard"
)

// Reader frames fixed-size boot reports out of a byte stream. Device nodes
// in boot-protocol mode yield exactly one report per read; pipes and files
// are simply chunked into report-sized frames.
type Reader struct {
	r      io.ReadCloser
	logger *slog.Logger
}

// NewReader wraps an open stream as a report source.
func NewReader(r io.ReadCloser, logger *slog.Logger) *Reader {
	return &Reader{r: r, logger: logger}
}

// Run reads reports until the stream ends, the context is cancelled, or a
// read fails. A trailing short chunk is still delivered; the tracker decides
// whether it is usable.
func (s *Reader) Run(ctx context.Context, fn func(raw []byte)) error {
	buf := make([]byte, keyboard.ReportSize)
	for {
		if ctx.Err() != nil {
			return nil
		}
		n, err := io.ReadFull(s.r, buf)
		switch {
		case err == nil:
			fn(buf)
		case errors.Is(err, io.ErrUnexpectedEOF):
			fn(buf[:n])
			return nil
		case errors.Is(err, io.EOF):
			return nil
		default:
			if ctx.Err() != nil || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return fmt.Errorf("read report: %w", err)
		}
	}
}

// Close closes the underlying stream, unblocking a pending read.
func (s *Reader) Close() error {
	return s.r.Close()
}
