package keyboard

// KeyCode is a USB HID usage code from the Keyboard/Keypad usage page.
type KeyCode uint8

// Modifiers is the modifier byte of a boot-protocol keyboard report.
type Modifiers uint8

// Modifier key bitmasks
const (
	ModLeftCtrl   Modifiers = 0x01
	ModLeftShift  Modifiers = 0x02
	ModLeftAlt    Modifiers = 0x04
	ModLeftGUI    Modifiers = 0x08 // Windows/Command key
	ModRightCtrl  Modifiers = 0x10
	ModRightShift Modifiers = 0x20
	ModRightAlt   Modifiers = 0x40
	ModRightGUI   Modifiers = 0x80
)

// Ctrl reports whether either Ctrl key is held.
func (m Modifiers) Ctrl() bool {
	return m&(ModLeftCtrl|ModRightCtrl) != 0
}

// Shift reports whether either Shift key is held.
func (m Modifiers) Shift() bool {
	return m&(ModLeftShift|ModRightShift) != 0
}

// HID Usage codes for keyboard keys (USB HID Keyboard/Keypad usage page)
const (
	// No key held
	KeyNone KeyCode = 0x00

	// Letters A-Z
	KeyA KeyCode = 0x04
	KeyB KeyCode = 0x05
	KeyC KeyCode = 0x06
	KeyD KeyCode = 0x07
	KeyE KeyCode = 0x08
	KeyF KeyCode = 0x09
	KeyG KeyCode = 0x0A
	KeyH KeyCode = 0x0B
	KeyI KeyCode = 0x0C
	KeyJ KeyCode = 0x0D
	KeyK KeyCode = 0x0E
	KeyL KeyCode = 0x0F
	KeyM KeyCode = 0x10
	KeyN KeyCode = 0x11
	KeyO KeyCode = 0x12
	KeyP KeyCode = 0x13
	KeyQ KeyCode = 0x14
	KeyR KeyCode = 0x15
	KeyS KeyCode = 0x16
	KeyT KeyCode = 0x17
	KeyU KeyCode = 0x18
	KeyV KeyCode = 0x19
	KeyW KeyCode = 0x1A
	KeyX KeyCode = 0x1B
	KeyY KeyCode = 0x1C
	KeyZ KeyCode = 0x1D

	// Numbers 1-0 (top row)
	Key1 KeyCode = 0x1E
	Key2 KeyCode = 0x1F
	Key3 KeyCode = 0x20
	Key4 KeyCode = 0x21
	Key5 KeyCode = 0x22
	Key6 KeyCode = 0x23
	Key7 KeyCode = 0x24
	Key8 KeyCode = 0x25
	Key9 KeyCode = 0x26
	Key0 KeyCode = 0x27

	// Special keys
	KeyEnter      KeyCode = 0x28
	KeyEscape     KeyCode = 0x29
	KeyBackspace  KeyCode = 0x2A
	KeyTab        KeyCode = 0x2B
	KeySpace      KeyCode = 0x2C
	KeyMinus      KeyCode = 0x2D // - and _
	KeyEqual      KeyCode = 0x2E // = and +
	KeyLeftBrace  KeyCode = 0x2F // [ and {
	KeyRightBrace KeyCode = 0x30 // ] and }
	KeyBackslash  KeyCode = 0x31 // \ and |
	KeyNonUSHash  KeyCode = 0x32 // Non-US # and ~
	KeySemicolon  KeyCode = 0x33 // ; and :
	KeyApostrophe KeyCode = 0x34 // ' and "
	KeyGrave      KeyCode = 0x35 // ` and ~
	KeyComma      KeyCode = 0x36 // , and <
	KeyDot        KeyCode = 0x37 // . and >
	KeySlash      KeyCode = 0x38 // / and ?
)

// Bounds of the usage range the translator maps to ASCII.
const (
	FirstMapped = KeyA     // 0x04
	LastMapped  = KeySlash // 0x38
)
