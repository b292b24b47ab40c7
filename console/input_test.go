package console

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborui/arbor/ui"
)

func decodeBytes(t *testing.T, input string) *ui.KeyState {
	t.Helper()
	in := NewTerminalInput(nil)
	in.pending = []byte(input)
	state := &ui.KeyState{}
	in.decode(state)
	require.Empty(t, in.pending, "decoder left bytes behind for %q", input)
	return state
}

func TestDecodePrintable(t *testing.T) {
	tests := []struct {
		input string
		key   ui.Key
		shift bool
	}{
		{"a", ui.KeyA, false},
		{"Z", ui.KeyZ, true},
		{"5", ui.Key5, false},
		{"%", ui.Key5, true},
		{" ", ui.KeySpace, false},
		{";", ui.KeySemicolon, false},
		{":", ui.KeySemicolon, true},
		{"[", ui.KeyLeftBracket, false},
		{"{", ui.KeyLeftBracket, true},
		{"_", ui.KeyMinus, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			state := decodeBytes(t, tt.input)
			require.True(t, state.Down[tt.key])
			require.Equal(t, tt.shift, state.Modifiers&ui.ModShift != 0)
		})
	}
}

func TestDecodeControlBytes(t *testing.T) {
	state := decodeBytes(t, "\r")
	require.True(t, state.Down[ui.KeyEnter])

	state = decodeBytes(t, "\x7f")
	require.True(t, state.Down[ui.KeyBackspace])

	state = decodeBytes(t, "\t")
	require.True(t, state.Down[ui.KeyTab])

	// Ctrl+C arrives as 0x03
	state = decodeBytes(t, "\x03")
	require.True(t, state.Down[ui.KeyC])
	require.True(t, state.Modifiers&ui.ModControl != 0)
}

func TestDecodeEscapeSequences(t *testing.T) {
	tests := []struct {
		input string
		key   ui.Key
	}{
		{"\x1b[A", ui.KeyUpArrow},
		{"\x1b[B", ui.KeyDownArrow},
		{"\x1b[C", ui.KeyRightArrow},
		{"\x1b[D", ui.KeyLeftArrow},
		{"\x1b[H", ui.KeyHome},
		{"\x1b[F", ui.KeyEnd},
		{"\x1b[5~", ui.KeyPageUp},
		{"\x1b[6~", ui.KeyPageDown},
		{"\x1b[3~", ui.KeyDelete},
		{"\x1bOA", ui.KeyUpArrow},
	}
	for _, tt := range tests {
		t.Run(tt.input[1:], func(t *testing.T) {
			state := decodeBytes(t, tt.input)
			require.True(t, state.Down[tt.key], "expected %v down", tt.key)
		})
	}
}

func TestDecodeModifiedArrow(t *testing.T) {
	// shift+up in the CSI 1;2A form
	state := decodeBytes(t, "\x1b[1;2A")
	require.True(t, state.Down[ui.KeyUpArrow])
	require.True(t, state.Modifiers&ui.ModShift != 0)

	// ctrl+right is 1;5C
	state = decodeBytes(t, "\x1b[1;5C")
	require.True(t, state.Down[ui.KeyRightArrow])
	require.True(t, state.Modifiers&ui.ModControl != 0)
}

func TestDecodeLoneEscape(t *testing.T) {
	state := decodeBytes(t, "\x1b")
	require.True(t, state.Down[ui.KeyEscape])
}

func TestDecodeMultipleKeys(t *testing.T) {
	state := decodeBytes(t, "hi\x1b[A")
	require.True(t, state.Down[ui.KeyH])
	require.True(t, state.Down[ui.KeyI])
	require.True(t, state.Down[ui.KeyUpArrow])
}

func TestDecodeKeepsIncompleteSequence(t *testing.T) {
	in := NewTerminalInput(nil)
	in.pending = []byte("\x1b[")
	state := &ui.KeyState{}
	in.decode(state)
	require.Equal(t, []byte("\x1b["), in.pending, "incomplete CSI must wait for more bytes")

	// completing the sequence decodes it
	in.pending = append(in.pending, 'A')
	in.decode(state)
	require.True(t, state.Down[ui.KeyUpArrow])
	require.Empty(t, in.pending)
}
