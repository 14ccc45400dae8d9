package log_test

import (
	"bytes"
	"testing"

	"github.com/keywire/keywire/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestRawLoggerHexDump(t *testing.T) {
	var buf bytes.Buffer
	rl := log.NewRaw(&buf)

	rl.Log(log.DirIn, []byte{0x00, 0x00, 0x04, 0xAB})
	line := buf.String()
	assert.Contains(t, line, "KBD->")
	assert.Contains(t, line, "4 bytes")
	assert.Contains(t, line, "00 00 04 ab")

	buf.Reset()
	rl.Log(log.DirOut, []byte{'a'})
	assert.Contains(t, buf.String(), "->SER")
	assert.Contains(t, buf.String(), "61")
}

func TestRawLoggerNoOp(t *testing.T) {
	rl := log.NewRaw(nil)
	// Must not panic.
	rl.Log(log.DirIn, []byte{0x01, 0x02})

	var buf bytes.Buffer
	rl = log.NewRaw(&buf)
	rl.Log(log.DirOut, nil)
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelTrace, log.ParseLevel("trace"))
	assert.Equal(t, log.ParseLevel("info"), log.ParseLevel(""))
	assert.Equal(t, log.ParseLevel("info"), log.ParseLevel("bogus"))
}
