// Package source delivers raw HID keyboard reports to the bridge. Reports
// can come from a device node (hidraw on Linux), any readable file or pipe,
// or a TCP listener accepting raw report streams.
package source

import "context"

// Config selects where raw reports come from.
type Config struct {
	Device string `help:"Device node or file to read boot reports from (e.g. /dev/hidraw0)" env:"KEYWIRE_INPUT_DEVICE"`
	Listen string `help:"TCP address to accept raw report streams on instead of a device node" env:"KEYWIRE_INPUT_LISTEN"`
}

// Source pushes raw reports into a callback until the context is done or
// the input drains. Run returns nil on clean shutdown or end of input.
type Source interface {
	Run(ctx context.Context, fn func(raw []byte)) error
	Close() error
}
