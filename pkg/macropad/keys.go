package macropad

// Modifier is the boot-keyboard modifier bitmask as stored by the firmware.
type Modifier byte

const (
	ModNone   Modifier = 0x00
	ModLCtrl  Modifier = 0x01
	ModLShift Modifier = 0x02
	ModLAlt   Modifier = 0x04
	ModLGui   Modifier = 0x08
	ModRCtrl  Modifier = 0x10
	ModRShift Modifier = 0x20
	ModRAlt   Modifier = 0x40
	ModRGui   Modifier = 0x80
)

// leftModifierMask covers the only modifiers the firmware stores for mouse
// assignments; right-side bits are not representable there.
const leftModifierMask = ModLCtrl | ModLShift | ModLAlt | ModLGui

// KeyCode is a USB HID keyboard usage code (usage page 0x07).
type KeyCode byte

const (
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

	// Number row 1-0
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
	KeyEsc        KeyCode = 0x29
	KeyBackspace  KeyCode = 0x2A
	KeyTab        KeyCode = 0x2B
	KeySpace      KeyCode = 0x2C
	KeyMinus      KeyCode = 0x2D
	KeyEqual      KeyCode = 0x2E
	KeyLeftBrace  KeyCode = 0x2F
	KeyRightBrace KeyCode = 0x30
	KeyBackslash  KeyCode = 0x31
	KeySemicolon  KeyCode = 0x33
	KeyApostrophe KeyCode = 0x34
	KeyGrave      KeyCode = 0x35
	KeyComma      KeyCode = 0x36
	KeyDot        KeyCode = 0x37
	KeySlash      KeyCode = 0x38
	KeyCapsLock   KeyCode = 0x39

	// Function keys
	KeyF1  KeyCode = 0x3A
	KeyF2  KeyCode = 0x3B
	KeyF3  KeyCode = 0x3C
	KeyF4  KeyCode = 0x3D
	KeyF5  KeyCode = 0x3E
	KeyF6  KeyCode = 0x3F
	KeyF7  KeyCode = 0x40
	KeyF8  KeyCode = 0x41
	KeyF9  KeyCode = 0x42
	KeyF10 KeyCode = 0x43
	KeyF11 KeyCode = 0x44
	KeyF12 KeyCode = 0x45

	// Control and navigation keys
	KeyPrintScreen KeyCode = 0x46
	KeyScrollLock  KeyCode = 0x47
	KeyPause       KeyCode = 0x48
	KeyInsert      KeyCode = 0x49
	KeyHome        KeyCode = 0x4A
	KeyPageUp      KeyCode = 0x4B
	KeyDelete      KeyCode = 0x4C
	KeyEnd         KeyCode = 0x4D
	KeyPageDown    KeyCode = 0x4E

	// Arrow keys
	KeyRight KeyCode = 0x4F
	KeyLeft  KeyCode = 0x50
	KeyDown  KeyCode = 0x51
	KeyUp    KeyCode = 0x52
)

var modifierNames = map[string]Modifier{
	"LCTRL":  ModLCtrl,
	"LSHIFT": ModLShift,
	"LALT":   ModLAlt,
	"LGUI":   ModLGui,
	"RCTRL":  ModRCtrl,
	"RSHIFT": ModRShift,
	"RALT":   ModRAlt,
	"RGUI":   ModRGui,
}

var keyNames = map[string]KeyCode{
	"NONE": KeyNone,

	"A": KeyA, "B": KeyB, "C": KeyC, "D": KeyD, "E": KeyE, "F": KeyF,
	"G": KeyG, "H": KeyH, "I": KeyI, "J": KeyJ, "K": KeyK, "L": KeyL,
	"M": KeyM, "N": KeyN, "O": KeyO, "P": KeyP, "Q": KeyQ, "R": KeyR,
	"S": KeyS, "T": KeyT, "U": KeyU, "V": KeyV, "W": KeyW, "X": KeyX,
	"Y": KeyY, "Z": KeyZ,

	"1": Key1, "2": Key2, "3": Key3, "4": Key4, "5": Key5,
	"6": Key6, "7": Key7, "8": Key8, "9": Key9, "0": Key0,

	"ENTER":      KeyEnter,
	"ESC":        KeyEsc,
	"BACKSPACE":  KeyBackspace,
	"TAB":        KeyTab,
	"SPACE":      KeySpace,
	"MINUS":      KeyMinus,
	"EQUAL":      KeyEqual,
	"LEFTBRACE":  KeyLeftBrace,
	"RIGHTBRACE": KeyRightBrace,
	"BACKSLASH":  KeyBackslash,
	"SEMICOLON":  KeySemicolon,
	"APOSTROPHE": KeyApostrophe,
	"GRAVE":      KeyGrave,
	"COMMA":      KeyComma,
	"DOT":        KeyDot,
	"SLASH":      KeySlash,
	"CAPSLOCK":   KeyCapsLock,

	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4,
	"F5": KeyF5, "F6": KeyF6, "F7": KeyF7, "F8": KeyF8,
	"F9": KeyF9, "F10": KeyF10, "F11": KeyF11, "F12": KeyF12,

	"PRINTSCREEN": KeyPrintScreen,
	"SCROLLLOCK":  KeyScrollLock,
	"PAUSE":       KeyPause,
	"INSERT":      KeyInsert,
	"HOME":        KeyHome,
	"PAGEUP":      KeyPageUp,
	"DELETE":      KeyDelete,
	"END":         KeyEnd,
	"PAGEDOWN":    KeyPageDown,

	"RIGHT": KeyRight,
	"LEFT":  KeyLeft,
	"DOWN":  KeyDown,
	"UP":    KeyUp,
}
