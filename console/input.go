package console

import (
	"os"

	"github.com/gdamore/tcell/v2/terminfo"
	_ "github.com/gdamore/tcell/v2/terminfo/base" // common terminal database
	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"

	"github.com/arborui/arbor/ui"
)

// TerminalInput samples the keyboard from the terminal byte stream.
// A tty reports key presses, never releases, so every decoded key is
// down for exactly one sample: the input FSM turns that into a key
// down followed by a key up, and terminal autorepeat supplies repeats.
//
// Special-key escape sequences are looked up in the terminfo entry for
// $TERM when one is available, with a plain CSI decoder as fallback.
type TerminalInput struct {
	f       *os.File
	seqs    map[string]ui.Key
	pending []byte
	buf     [256]byte
}

// NewTerminalInput builds a sampler reading from f, usually the
// terminal returned by NewTerminal.
func NewTerminalInput(f *os.File) *TerminalInput {
	t := &TerminalInput{f: f, seqs: make(map[string]ui.Key)}
	t.prepareKeys()
	return t
}

// prepareKeys fills the escape-sequence table from terminfo, falling
// back to the common CSI and SS3 sequences when $TERM is unknown.
func (t *TerminalInput) prepareKeys() {
	if ti, err := terminfo.LookupTerminfo(os.Getenv("TERM")); err == nil {
		t.addSeq(ti.KeyUp, ui.KeyUpArrow)
		t.addSeq(ti.KeyDown, ui.KeyDownArrow)
		t.addSeq(ti.KeyRight, ui.KeyRightArrow)
		t.addSeq(ti.KeyLeft, ui.KeyLeftArrow)
		t.addSeq(ti.KeyHome, ui.KeyHome)
		t.addSeq(ti.KeyEnd, ui.KeyEnd)
		t.addSeq(ti.KeyPgUp, ui.KeyPageUp)
		t.addSeq(ti.KeyPgDn, ui.KeyPageDown)
		t.addSeq(ti.KeyInsert, ui.KeyInsert)
		t.addSeq(ti.KeyDelete, ui.KeyDelete)
		t.addSeq(ti.KeyBackspace, ui.KeyBackspace)
		for i, seq := range []string{
			ti.KeyF1, ti.KeyF2, ti.KeyF3, ti.KeyF4, ti.KeyF5, ti.KeyF6,
			ti.KeyF7, ti.KeyF8, ti.KeyF9, ti.KeyF10, ti.KeyF11, ti.KeyF12,
		} {
			t.addSeq(seq, ui.KeyF1+ui.Key(i))
		}
	}
	// common sequences, also covering terminals that disagree with
	// their terminfo entry
	for seq, key := range map[string]ui.Key{
		"\x1b[A":  ui.KeyUpArrow,
		"\x1b[B":  ui.KeyDownArrow,
		"\x1b[C":  ui.KeyRightArrow,
		"\x1b[D":  ui.KeyLeftArrow,
		"\x1b[H":  ui.KeyHome,
		"\x1b[F":  ui.KeyEnd,
		"\x1bOA":  ui.KeyUpArrow,
		"\x1bOB":  ui.KeyDownArrow,
		"\x1bOC":  ui.KeyRightArrow,
		"\x1bOD":  ui.KeyLeftArrow,
		"\x1bOH":  ui.KeyHome,
		"\x1bOF":  ui.KeyEnd,
		"\x1b[1~": ui.KeyHome,
		"\x1b[2~": ui.KeyInsert,
		"\x1b[3~": ui.KeyDelete,
		"\x1b[4~": ui.KeyEnd,
		"\x1b[5~": ui.KeyPageUp,
		"\x1b[6~": ui.KeyPageDown,
	} {
		if _, ok := t.seqs[seq]; !ok {
			t.seqs[seq] = key
		}
	}
}

func (t *TerminalInput) addSeq(seq string, key ui.Key) {
	if seq != "" {
		t.seqs[seq] = key
	}
}

// Sample drains pending terminal input without blocking and reports
// every decoded key as down, with inferred shift/control modifiers.
func (t *TerminalInput) Sample(state *ui.KeyState) error {
	*state = ui.KeyState{}

	for {
		fds := []unix.PollFd{{Fd: int32(t.f.Fd()), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return trace.Wrap(err, "polling terminal input")
		}
		if n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			break
		}
		read, err := t.f.Read(t.buf[:])
		if err != nil {
			return trace.Wrap(err, "reading terminal input")
		}
		if read == 0 {
			break
		}
		t.pending = append(t.pending, t.buf[:read]...)
	}

	t.decode(state)
	return nil
}

// decode consumes complete key encodings from the pending buffer.
func (t *TerminalInput) decode(state *ui.KeyState) {
	buf := t.pending
	for len(buf) > 0 {
		if buf[0] == 0x1b {
			consumed, ok := t.decodeEscape(buf, state)
			if !ok {
				// incomplete sequence; wait for more bytes
				break
			}
			buf = buf[consumed:]
			continue
		}
		t.decodeByte(buf[0], state)
		buf = buf[1:]
	}
	t.pending = append(t.pending[:0], buf...)
}

// decodeEscape consumes one escape-prefixed encoding. It reports false
// when the sequence is still incomplete.
func (t *TerminalInput) decodeEscape(buf []byte, state *ui.KeyState) (int, bool) {
	// lone escape
	if len(buf) == 1 {
		press(state, ui.KeyEscape)
		return 1, true
	}

	// longest-match against the terminfo table
	bestLen := 0
	var bestKey ui.Key
	for seq, key := range t.seqs {
		if len(seq) > bestLen && len(buf) >= len(seq) && string(buf[:len(seq)]) == seq {
			bestLen = len(seq)
			bestKey = key
		}
	}
	if bestLen > 0 {
		press(state, bestKey)
		return bestLen, true
	}

	if buf[1] == '[' {
		return t.decodeCSI(buf, state)
	}

	// alt-modified byte
	press(state, ui.KeyAlt)
	state.Modifiers |= ui.ModAlt
	t.decodeByte(buf[1], state)
	return 2, true
}

// decodeCSI handles CSI sequences missing from the terminfo table,
// including the "1;2A"-style modifier form.
func (t *TerminalInput) decodeCSI(buf []byte, state *ui.KeyState) (int, bool) {
	end := 2
	for end < len(buf) && buf[end] >= 0x20 && buf[end] <= 0x3f {
		end++
	}
	if end >= len(buf) {
		return 0, false
	}
	final := buf[end]
	end++

	// CSI 1;m X — modifier in the second parameter
	seq := buf[2 : end-1]
	var mod byte
	for i := 0; i < len(seq); i++ {
		if seq[i] == ';' && i+1 < len(seq) {
			mod = seq[i+1] - '1'
		}
	}
	if mod&1 != 0 {
		state.Modifiers |= ui.ModShift
		press(state, ui.KeyShift)
	}
	if mod&2 != 0 {
		state.Modifiers |= ui.ModAlt
		press(state, ui.KeyAlt)
	}
	if mod&4 != 0 {
		state.Modifiers |= ui.ModControl
		press(state, ui.KeyControl)
	}

	switch final {
	case 'A':
		press(state, ui.KeyUpArrow)
	case 'B':
		press(state, ui.KeyDownArrow)
	case 'C':
		press(state, ui.KeyRightArrow)
	case 'D':
		press(state, ui.KeyLeftArrow)
	case 'H':
		press(state, ui.KeyHome)
	case 'F':
		press(state, ui.KeyEnd)
	case '~':
		if len(seq) > 0 {
			switch seq[0] {
			case '1', '7':
				press(state, ui.KeyHome)
			case '2':
				press(state, ui.KeyInsert)
			case '3':
				press(state, ui.KeyDelete)
			case '4', '8':
				press(state, ui.KeyEnd)
			case '5':
				press(state, ui.KeyPageUp)
			case '6':
				press(state, ui.KeyPageDown)
			}
		}
	}
	return end, true
}

// decodeByte maps a single byte outside escape sequences.
func (t *TerminalInput) decodeByte(b byte, state *ui.KeyState) {
	switch {
	case b == 0x7f || b == 0x08:
		press(state, ui.KeyBackspace)
	case b == '\t':
		press(state, ui.KeyTab)
	case b == '\r' || b == '\n':
		press(state, ui.KeyEnter)
	case b < 0x1b && b >= 0x01:
		// Ctrl+letter
		state.Modifiers |= ui.ModControl
		press(state, ui.KeyControl)
		press(state, ui.KeyA+ui.Key(b-0x01))
	case b >= 32 && b <= 126:
		key, shifted := keyForChar(b)
		if key == ui.KeyNone {
			return
		}
		if shifted {
			state.Modifiers |= ui.ModShift
			press(state, ui.KeyShift)
		}
		press(state, key)
	}
}

func press(state *ui.KeyState, key ui.Key) {
	state.Down[key] = true
}

// keyForChar is the inverse of ui.Key.Char for the printable range.
func keyForChar(b byte) (ui.Key, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return ui.KeyA + ui.Key(b-'a'), false
	case b >= 'A' && b <= 'Z':
		return ui.KeyA + ui.Key(b-'A'), true
	case b >= '0' && b <= '9':
		return ui.Key(b), false
	case b == ' ':
		return ui.KeySpace, false
	}
	if key, ok := symbolKeys[b]; ok {
		return key, false
	}
	if key, ok := shiftedSymbolKeys[b]; ok {
		return key, true
	}
	return ui.KeyNone, false
}

var symbolKeys = map[byte]ui.Key{
	';':  ui.KeySemicolon,
	'=':  ui.KeyEquals,
	',':  ui.KeyComma,
	'-':  ui.KeyMinus,
	'.':  ui.KeyPeriod,
	'/':  ui.KeySlash,
	'`':  ui.KeyTilde,
	'[':  ui.KeyLeftBracket,
	'\\': ui.KeyBackslash,
	']':  ui.KeyRightBracket,
	'\'': ui.KeyApostrophe,
}

var shiftedSymbolKeys = map[byte]ui.Key{
	')': ui.Key0, '!': ui.Key1, '@': ui.Key2, '#': ui.Key3,
	'$': ui.Key4, '%': ui.Key5, '^': ui.Key6, '&': ui.Key7,
	'*': ui.Key8, '(': ui.Key9,
	':': ui.KeySemicolon, '+': ui.KeyEquals, '<': ui.KeyComma,
	'_': ui.KeyMinus, '>': ui.KeyPeriod, '?': ui.KeySlash,
	'~': ui.KeyTilde, '{': ui.KeyLeftBracket, '|': ui.KeyBackslash,
	'}': ui.KeyRightBracket, '"': ui.KeyApostrophe,
}
