//go:build !linux

package source

import (
	"fmt"
	"log/slog"
	"os"
)

// OpenDevice opens a device node or file as a report source. HID device
// metadata is only available on Linux.
func OpenDevice(path string, logger *slog.Logger) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device: %w", err)
	}
	logger.Info("input device opened", "path", path)
	return NewReader(f, logger), nil
}
