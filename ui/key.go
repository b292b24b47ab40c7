package ui

import "fmt"

// Key is a physical key code. The code space follows the common virtual
// key layout: letters and digits share their ASCII uppercase values,
// everything else has a fixed slot below KeyMax.
type Key byte

const (
	KeyNone        Key = 0
	KeyBackspace   Key = 8
	KeyTab         Key = 9
	KeyEnter       Key = 13
	KeyShift       Key = 16
	KeyControl     Key = 17
	KeyAlt         Key = 18
	KeyPause       Key = 19
	KeyCapsLock    Key = 20
	KeyEscape      Key = 27
	KeySpace       Key = 32
	KeyPageUp      Key = 33
	KeyPageDown    Key = 34
	KeyEnd         Key = 35
	KeyHome        Key = 36
	KeyLeftArrow   Key = 37
	KeyUpArrow     Key = 38
	KeyRightArrow  Key = 39
	KeyDownArrow   Key = 40
	KeyPrintScreen Key = 44
	KeyInsert      Key = 45
	KeyDelete      Key = 46

	Key0 Key = 48
	Key1 Key = 49
	Key2 Key = 50
	Key3 Key = 51
	Key4 Key = 52
	Key5 Key = 53
	Key6 Key = 54
	Key7 Key = 55
	Key8 Key = 56
	Key9 Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90

	KeyLeftCommand  Key = 91
	KeyRightCommand Key = 92
	KeyApplication  Key = 93

	KeyNumpad0  Key = 96
	KeyNumpad1  Key = 97
	KeyNumpad2  Key = 98
	KeyNumpad3  Key = 99
	KeyNumpad4  Key = 100
	KeyNumpad5  Key = 101
	KeyNumpad6  Key = 102
	KeyNumpad7  Key = 103
	KeyNumpad8  Key = 104
	KeyNumpad9  Key = 105
	KeyMultiply Key = 106
	KeyAdd      Key = 107
	KeySubtract Key = 109
	KeyDecimal  Key = 110
	KeyDivide   Key = 111

	KeyF1  Key = 112
	KeyF2  Key = 113
	KeyF3  Key = 114
	KeyF4  Key = 115
	KeyF5  Key = 116
	KeyF6  Key = 117
	KeyF7  Key = 118
	KeyF8  Key = 119
	KeyF9  Key = 120
	KeyF10 Key = 121
	KeyF11 Key = 122
	KeyF12 Key = 123

	KeyNumLock    Key = 144
	KeyScrollLock Key = 145

	KeyLeftShift    Key = 160
	KeyRightShift   Key = 161
	KeyLeftControl  Key = 162
	KeyRightControl Key = 163
	KeyLeftAlt      Key = 164
	KeyRightAlt     Key = 165

	KeySemicolon    Key = 186 // ; and :
	KeyEquals       Key = 187 // = and +
	KeyComma        Key = 188 // , and <
	KeyMinus        Key = 189 // - and _
	KeyPeriod       Key = 190 // . and >
	KeySlash        Key = 191 // / and ?
	KeyTilde        Key = 192 // ` and ~
	KeyLeftBracket  Key = 219 // [ and {
	KeyBackslash    Key = 220 // \ and |
	KeyRightBracket Key = 221 // ] and }
	KeyApostrophe   Key = 222 // ' and "

	KeyMax = KeyApostrophe
)

// KeyStateCount sizes per-keycode state tables.
const KeyStateCount = int(KeyMax) + 1

// TrackedKeys is the fixed set of keys the input sampler watches.
var TrackedKeys = [97]Key{
	KeyTab, KeyBackspace, KeyShift, KeyEnter, KeyControl, KeyAlt,
	KeyPause, KeyCapsLock, KeyEscape, KeySpace, KeyPageUp, KeyPageDown,
	KeyEnd, KeyHome, KeyLeftArrow, KeyUpArrow, KeyRightArrow, KeyDownArrow,
	KeyPrintScreen, KeyInsert, KeyDelete,
	Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9,
	KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK,
	KeyL, KeyM, KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV,
	KeyW, KeyX, KeyY, KeyZ,
	KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9,
	KeyF10, KeyF11, KeyF12,
	KeyNumLock, KeyScrollLock,
	KeyNumpad0, KeyNumpad1, KeyNumpad2, KeyNumpad3, KeyNumpad4,
	KeyNumpad5, KeyNumpad6, KeyNumpad7, KeyNumpad8, KeyNumpad9,
	KeyMultiply, KeyAdd, KeySubtract, KeyDecimal, KeyDivide,
	KeySemicolon, KeyEquals, KeyComma, KeyMinus, KeyPeriod, KeySlash,
	KeyTilde, KeyLeftBracket, KeyBackslash, KeyRightBracket, KeyApostrophe,
}

// Modifiers is the set of modifier keys and latches held during an
// input sample.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModCommand
	ModNumLock
	ModScrollLock
	ModCapsLock
)

// Char maps a key plus modifier state to the character it types, or 0
// when the key does not produce one. Shift and caps lock toggle letter
// case against each other; shift selects the symbol row on digits and
// punctuation; the numpad digits require num lock.
func (k Key) Char(mods Modifiers) byte {
	shift := mods&ModShift != 0
	caps := mods&ModCapsLock != 0

	if k >= KeyA && k <= KeyZ {
		if shift != caps {
			return byte(k)
		}
		return byte(k) + 32
	}

	if k >= Key0 && k <= Key9 {
		if shift {
			return ")!@#$%^&*("[k-Key0]
		}
		return byte(k)
	}

	if k >= KeySemicolon && k <= KeyTilde {
		if shift {
			return ":+<_>?~"[k-KeySemicolon]
		}
		return ";=,-./`"[k-KeySemicolon]
	}
	if k >= KeyLeftBracket && k <= KeyApostrophe {
		if shift {
			return "{|}\""[k-KeyLeftBracket]
		}
		return "[\\]'"[k-KeyLeftBracket]
	}

	if k >= KeyNumpad0 && k <= KeyNumpad9 {
		if mods&ModNumLock != 0 {
			return byte(k-KeyNumpad0) + '0'
		}
		return 0
	}
	if k >= KeyMultiply && k <= KeyDivide {
		return "*+ -./"[k-KeyMultiply]
	}

	switch k {
	case KeySpace:
		return ' '
	case KeyTab:
		return '\t'
	case KeyBackspace:
		return '\b'
	case KeyEnter:
		return '\n'
	case KeyEscape:
		return 0x1b
	}
	return 0
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune(k))
	case k >= Key0 && k <= Key9:
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	switch k {
	case KeyBackspace:
		return "Backspace"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyShift:
		return "Shift"
	case KeyControl:
		return "Control"
	case KeyAlt:
		return "Alt"
	case KeyEscape:
		return "Escape"
	case KeySpace:
		return "Space"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyEnd:
		return "End"
	case KeyHome:
		return "Home"
	case KeyLeftArrow:
		return "Left"
	case KeyUpArrow:
		return "Up"
	case KeyRightArrow:
		return "Right"
	case KeyDownArrow:
		return "Down"
	case KeyInsert:
		return "Insert"
	case KeyDelete:
		return "Delete"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
