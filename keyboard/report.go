package keyboard

import "io"

// Boot-protocol keyboard report layout (8 bytes):
//
//	Byte 0: Modifiers
//	Byte 1: Reserved
//	Bytes 2-7: Up to six simultaneously held usage codes
const (
	ReportSize = 8

	// A report is usable once it carries the modifier byte and the first
	// key slot; trailing slots are optional.
	reportMinLen = 3
)

// Report is the decoded portion of a boot-protocol keyboard report. Only the
// first key slot is consulted; rollover beyond one key is out of scope.
type Report struct {
	Modifiers Modifiers
	Key       KeyCode
}

// UnmarshalBinary decodes a raw boot report. Reports shorter than three
// bytes are rejected with io.ErrUnexpectedEOF. A report with Key == KeyNone
// is a valid release report, not an error.
func (r *Report) UnmarshalBinary(data []byte) error {
	if len(data) < reportMinLen {
		return io.ErrUnexpectedEOF
	}
	r.Modifiers = Modifiers(data[0])
	r.Key = KeyCode(data[2])
	return nil
}
