//go:build linux

package console

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"

	"github.com/arborui/arbor/ui"
)

// EvdevKeyboard samples true key down/up state from a Linux input
// event device. Unlike the terminal byte stream it observes releases,
// so key-held repeat follows the FSM instead of terminal autorepeat.
// Reading /dev/input usually requires membership in the input group.
type EvdevKeyboard struct {
	f       *os.File
	down    [ui.KeyStateCount]bool
	latches ui.Modifiers
}

// evdev event types and codes used below.
const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

// inputEvent mirrors struct input_event on 64-bit Linux.
type inputEvent struct {
	Sec   int64
	Usec  int64
	Type  uint16
	Code  uint16
	Value int32
}

// OpenEvdevKeyboard opens the given event device, e.g.
// /dev/input/event3.
func OpenEvdevKeyboard(path string) (*EvdevKeyboard, error) {
	f, err := os.OpenFile(path, os.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	return &EvdevKeyboard{f: f}, nil
}

// FindEvdevKeyboard opens the first event device that looks like a
// keyboard.
func FindEvdevKeyboard() (*EvdevKeyboard, error) {
	paths, err := filepath.Glob("/dev/input/by-path/*-event-kbd")
	if err != nil || len(paths) == 0 {
		return nil, trace.NotFound("no keyboard event device found")
	}
	return OpenEvdevKeyboard(paths[0])
}

// Close releases the event device.
func (k *EvdevKeyboard) Close() error {
	return trace.Wrap(k.f.Close())
}

// Sample drains pending events and reports the accumulated key state.
func (k *EvdevKeyboard) Sample(state *ui.KeyState) error {
	const eventSize = int(unsafe.Sizeof(inputEvent{}))
	buf := make([]byte, eventSize*64)
	for {
		n, err := k.f.Read(buf)
		if err != nil {
			if pathErr, ok := err.(*os.PathError); ok && pathErr.Err == unix.EAGAIN {
				break
			}
			return trace.Wrap(err, "reading keyboard events")
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			k.apply(decodeEvent(buf[off : off+eventSize]))
		}
		if n < len(buf) {
			break
		}
	}

	state.Down = k.down
	state.Modifiers = k.modifiers()
	return nil
}

func decodeEvent(raw []byte) inputEvent {
	return inputEvent{
		Sec:   int64(binary.LittleEndian.Uint64(raw[0:])),
		Usec:  int64(binary.LittleEndian.Uint64(raw[8:])),
		Type:  binary.LittleEndian.Uint16(raw[16:]),
		Code:  binary.LittleEndian.Uint16(raw[18:]),
		Value: int32(binary.LittleEndian.Uint32(raw[20:])),
	}
}

func (k *EvdevKeyboard) apply(ev inputEvent) {
	if ev.Type != evKey || int(ev.Code) >= len(scancodeKeys) {
		return
	}
	key := scancodeKeys[ev.Code]
	if key == ui.KeyNone {
		return
	}
	switch ev.Value {
	case keyPressed:
		k.down[key] = true
		switch key {
		case ui.KeyCapsLock:
			k.latches ^= ui.ModCapsLock
		case ui.KeyNumLock:
			k.latches ^= ui.ModNumLock
		case ui.KeyScrollLock:
			k.latches ^= ui.ModScrollLock
		}
	case keyReleased:
		k.down[key] = false
	case keyRepeated:
		// the FSM owns repeat; the physical state is unchanged
	}
}

func (k *EvdevKeyboard) modifiers() ui.Modifiers {
	mods := k.latches
	if k.down[ui.KeyLeftShift] || k.down[ui.KeyRightShift] || k.down[ui.KeyShift] {
		mods |= ui.ModShift
	}
	if k.down[ui.KeyLeftControl] || k.down[ui.KeyRightControl] || k.down[ui.KeyControl] {
		mods |= ui.ModControl
	}
	if k.down[ui.KeyLeftAlt] || k.down[ui.KeyRightAlt] || k.down[ui.KeyAlt] {
		mods |= ui.ModAlt
	}
	if k.down[ui.KeyLeftCommand] || k.down[ui.KeyRightCommand] {
		mods |= ui.ModCommand
	}
	return mods
}

// scancodeKeys maps Linux KEY_* scancodes to key codes. 127 is
// KEY_COMPOSE, the highest code the toolkit tracks.
var scancodeKeys = [128]ui.Key{
	1:   ui.KeyEscape,
	2:   ui.Key1,
	3:   ui.Key2,
	4:   ui.Key3,
	5:   ui.Key4,
	6:   ui.Key5,
	7:   ui.Key6,
	8:   ui.Key7,
	9:   ui.Key8,
	10:  ui.Key9,
	11:  ui.Key0,
	12:  ui.KeyMinus,
	13:  ui.KeyEquals,
	14:  ui.KeyBackspace,
	15:  ui.KeyTab,
	16:  ui.KeyQ,
	17:  ui.KeyW,
	18:  ui.KeyE,
	19:  ui.KeyR,
	20:  ui.KeyT,
	21:  ui.KeyY,
	22:  ui.KeyU,
	23:  ui.KeyI,
	24:  ui.KeyO,
	25:  ui.KeyP,
	26:  ui.KeyLeftBracket,
	27:  ui.KeyRightBracket,
	28:  ui.KeyEnter,
	29:  ui.KeyLeftControl,
	30:  ui.KeyA,
	31:  ui.KeyS,
	32:  ui.KeyD,
	33:  ui.KeyF,
	34:  ui.KeyG,
	35:  ui.KeyH,
	36:  ui.KeyJ,
	37:  ui.KeyK,
	38:  ui.KeyL,
	39:  ui.KeySemicolon,
	40:  ui.KeyApostrophe,
	41:  ui.KeyTilde,
	42:  ui.KeyLeftShift,
	43:  ui.KeyBackslash,
	44:  ui.KeyZ,
	45:  ui.KeyX,
	46:  ui.KeyC,
	47:  ui.KeyV,
	48:  ui.KeyB,
	49:  ui.KeyN,
	50:  ui.KeyM,
	51:  ui.KeyComma,
	52:  ui.KeyPeriod,
	53:  ui.KeySlash,
	54:  ui.KeyRightShift,
	55:  ui.KeyMultiply,
	56:  ui.KeyLeftAlt,
	57:  ui.KeySpace,
	58:  ui.KeyCapsLock,
	59:  ui.KeyF1,
	60:  ui.KeyF2,
	61:  ui.KeyF3,
	62:  ui.KeyF4,
	63:  ui.KeyF5,
	64:  ui.KeyF6,
	65:  ui.KeyF7,
	66:  ui.KeyF8,
	67:  ui.KeyF9,
	68:  ui.KeyF10,
	69:  ui.KeyNumLock,
	70:  ui.KeyScrollLock,
	71:  ui.KeyNumpad7,
	72:  ui.KeyNumpad8,
	73:  ui.KeyNumpad9,
	74:  ui.KeySubtract,
	75:  ui.KeyNumpad4,
	76:  ui.KeyNumpad5,
	77:  ui.KeyNumpad6,
	78:  ui.KeyAdd,
	79:  ui.KeyNumpad1,
	80:  ui.KeyNumpad2,
	81:  ui.KeyNumpad3,
	82:  ui.KeyNumpad0,
	83:  ui.KeyDecimal,
	87:  ui.KeyF11,
	88:  ui.KeyF12,
	96:  ui.KeyEnter,
	97:  ui.KeyRightControl,
	98:  ui.KeyDivide,
	99:  ui.KeyPrintScreen,
	100: ui.KeyRightAlt,
	102: ui.KeyHome,
	103: ui.KeyUpArrow,
	104: ui.KeyPageUp,
	105: ui.KeyLeftArrow,
	106: ui.KeyRightArrow,
	107: ui.KeyEnd,
	108: ui.KeyDownArrow,
	109: ui.KeyPageDown,
	110: ui.KeyInsert,
	111: ui.KeyDelete,
	119: ui.KeyPause,
	125: ui.KeyLeftCommand,
	126: ui.KeyRightCommand,
	127: ui.KeyApplication,
}
