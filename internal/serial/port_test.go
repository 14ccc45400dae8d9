package serial_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/keywire/keywire/internal/serial"
	"github.com/stretchr/testify/assert"
)

type errWriter struct{ err error }

func (w errWriter) Write([]byte) (int, error) { return 0, w.err }

type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestWriterPortTransmitsSingleBytes(t *testing.T) {
	var buf bytes.Buffer
	p := serial.NewWriterPort(&buf)

	assert.NoError(t, p.Transmit('a'))
	assert.NoError(t, p.Transmit(0x01))
	assert.NoError(t, p.Transmit('\n'))

	assert.Equal(t, []byte{'a', 0x01, '\n'}, buf.Bytes())
}

func TestWriterPortPropagatesErrors(t *testing.T) {
	wantErr := errors.New("device gone")
	p := serial.NewWriterPort(errWriter{err: wantErr})
	assert.ErrorIs(t, p.Transmit('x'), wantErr)
}

func TestPortCloseClosesWriter(t *testing.T) {
	rec := &closeRecorder{}
	p := serial.NewWriterPort(rec)
	assert.NoError(t, p.Close())
	assert.True(t, rec.closed)

	// Plain writers without Close are fine too.
	p = serial.NewWriterPort(&bytes.Buffer{})
	assert.NoError(t, p.Close())
}
