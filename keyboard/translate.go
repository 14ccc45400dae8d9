// Package keyboard decodes USB HID boot-protocol keyboard reports and maps
// held keys to ASCII bytes.
package keyboard

// ASCII lookup tables for the mapped usage range 0x04-0x38. Index 0
// corresponds to KeyA (0x04). Usage 0x32 (non-US hash) has no ASCII value on
// a US layout and maps to space in both tables.
const (
	plainTable = "abcdefghijklmnopqrstuvwxyz1234567890\n\x1b\b\t -=[]\\ ;'`,./"
	shiftTable = "ABCDEFGHIJKLMNOPQRSTUVWXYZ!@#$%^&*()\n\x1b\b\t _+{}| :\"~<>?"
)

// letterCount is the number of usages covered by the Ctrl override (A-Z).
const letterCount = 26

// Translate maps a HID keyboard usage code and modifier byte to a single
// ASCII byte. The second return value is false when the usage is outside the
// mapped range, including KeyNone.
//
// With either Ctrl held, A-Z produce the control characters 0x01-0x1A
// regardless of Shift. Otherwise Shift selects between the plain and shifted
// layout tables.
func Translate(code KeyCode, mods Modifiers) (byte, bool) {
	if code < FirstMapped || code > LastMapped {
		return 0, false
	}
	idx := int(code - FirstMapped)
	if mods.Ctrl() && idx < letterCount {
		return byte(idx + 1), true
	}
	if mods.Shift() {
		return shiftTable[idx], true
	}
	return plainTable[idx], true
}
