//go:build linux

package source

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// OpenDevice opens a device node or file as a report source. For hidraw
// nodes the kernel-reported device name and IDs are logged.
func OpenDevice(path string, logger *slog.Logger) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input device: %w", err)
	}

	fd := int(f.Fd())
	if name, err := unix.IoctlHIDGetRawName(fd); err == nil {
		logger.Info("input device opened", "path", path, "name", strings.TrimRight(name, "\x00"))
	} else {
		logger.Info("input device opened", "path", path)
	}
	if info, err := unix.IoctlHIDGetRawInfo(fd); err == nil {
		logger.Debug("input device ids",
			"bustype", info.Bustype,
			"vendor", fmt.Sprintf("0x%04X", uint16(info.Vendor)),
			"product", fmt.Sprintf("0x%04X", uint16(info.Product)))
	}

	return NewReader(f, logger), nil
}
