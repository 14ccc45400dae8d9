//go:build !linux

package serial

// Open is only implemented on Linux; elsewhere use the stdout sink or a
// writer port.
func Open(path string, baud int) (*Port, error) {
	return nil, ErrUnsupported
}
