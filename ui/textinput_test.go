package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestInput returns an active, focused single-line input driven
// through a real application.
func newTestInput(t *testing.T, capacity int) (*Application, *TextInput) {
	t.Helper()
	app, _, _, _ := newTestApp(t, Extent{W: 80, H: 24})
	input := NewTextInput(nil, DefaultTheme(), capacity)
	require.NoError(t, app.Add(input.Control()))
	require.NoError(t, app.Tick())

	down := Event{Type: EventKeyDown, Key: KeyEnter}
	require.NoError(t, app.dispatchEvent(&down))
	require.True(t, input.Control().Active())
	return app, input
}

func typeChars(t *testing.T, app *Application, s string) {
	t.Helper()
	for i := 0; i < len(s); i++ {
		ch := s[i]
		var mods Modifiers
		if ch >= 'A' && ch <= 'Z' {
			mods = ModShift
		}
		key := Key(ch)
		if ch >= 'a' && ch <= 'z' {
			key = Key(ch - 32)
		}
		pressKey(t, app, key, mods)
	}
}

func TestTextInputInsertAndSelect(t *testing.T) {
	// type abc, select it backwards, replace with X
	app, input := newTestInput(t, 20)

	typeChars(t, app, "abc")
	require.Equal(t, "abc", input.Text())
	require.Equal(t, 3, input.CursorPosition())

	for i := 0; i < 3; i++ {
		pressKey(t, app, KeyLeftArrow, ModShift)
	}
	start, end := input.Selection()
	require.Equal(t, 0, start)
	require.Equal(t, 3, end)

	typeChars(t, app, "X")
	require.Equal(t, "X", input.Text())
	require.Equal(t, 1, input.CursorPosition())
}

func TestTextInputWordJumpDelete(t *testing.T) {
	// ctrl+backspace eats "world", then "hello "
	app, input := newTestInput(t, 40)
	typeChars(t, app, "hello world")
	require.Equal(t, "hello world", input.Text())

	pressKey(t, app, KeyBackspace, ModControl)
	require.Equal(t, "hello ", input.Text())

	pressKey(t, app, KeyBackspace, ModControl)
	require.Equal(t, "", input.Text())
}

func TestTextInputBackspaceAndDelete(t *testing.T) {
	app, input := newTestInput(t, 40)
	typeChars(t, app, "abcd")

	pressKey(t, app, KeyBackspace, 0)
	require.Equal(t, "abc", input.Text())
	require.Equal(t, 3, input.CursorPosition())

	pressKey(t, app, KeyHome, 0)
	pressKey(t, app, KeyDelete, 0)
	require.Equal(t, "bc", input.Text())
	require.Equal(t, 0, input.CursorPosition())

	// deleting at the edges is silently absorbed
	pressKey(t, app, KeyBackspace, 0)
	require.Equal(t, "bc", input.Text())
	pressKey(t, app, KeyEnd, 0)
	pressKey(t, app, KeyDelete, 0)
	require.Equal(t, "bc", input.Text())
}

func TestTextInputCapacityBeeps(t *testing.T) {
	app, input := newTestInput(t, 3)
	console := app.console.(*fakeConsole)

	typeChars(t, app, "abc")
	require.Equal(t, "abc", input.Text())
	require.Zero(t, console.beeps)

	typeChars(t, app, "d")
	require.Equal(t, "abc", input.Text(), "input at capacity ignores typing")
	require.Equal(t, 1, console.beeps)
}

func TestTextInputSelectionShrinksThroughOrigin(t *testing.T) {
	app, input := newTestInput(t, 20)
	typeChars(t, app, "abcde")
	pressKey(t, app, KeyHome, 0)
	pressKey(t, app, KeyRightArrow, 0)
	pressKey(t, app, KeyRightArrow, 0) // cursor 2, no selection

	pressKey(t, app, KeyRightArrow, ModShift) // select 2..3
	start, end := input.Selection()
	require.Equal(t, 2, start)
	require.Equal(t, 3, end)

	pressKey(t, app, KeyLeftArrow, ModShift) // back to empty
	pressKey(t, app, KeyLeftArrow, ModShift) // cross the origin: 1..2
	start, end = input.Selection()
	require.Equal(t, 1, start)
	require.Equal(t, 2, end)

	// unshifted motion collapses
	pressKey(t, app, KeyRightArrow, 0)
	start, end = input.Selection()
	require.Equal(t, start, end)
}

func TestTextInputClipboard(t *testing.T) {
	app, input := newTestInput(t, 10)
	clip := app.clipboard.(*fakeClipboard)
	typeChars(t, app, "hello")

	pressKey(t, app, KeyA, ModControl)
	start, end := input.Selection()
	require.Equal(t, 0, start)
	require.Equal(t, 5, end)

	pressKey(t, app, KeyC, ModControl)
	require.Equal(t, "hello", clip.text)
	require.Equal(t, "hello", input.Text())

	pressKey(t, app, KeyX, ModControl)
	require.Equal(t, "hello", clip.text)
	require.Equal(t, "", input.Text())

	pressKey(t, app, KeyV, ModControl)
	require.Equal(t, "hello", input.Text())

	// pasting truncates at capacity
	pressKey(t, app, KeyV, ModControl)
	require.Equal(t, "hellohello", input.Text())
	pressKey(t, app, KeyV, ModControl)
	require.Equal(t, "hellohello", input.Text())
}

func TestTextInputClipboardErrorPropagates(t *testing.T) {
	app, input := newTestInput(t, 10)
	typeChars(t, app, "hi")
	app.clipboard.(*fakeClipboard).err = ErrInvalidState

	pressKey(t, app, KeyA, ModControl)
	ev := Event{Type: EventKeyDown, Key: KeyC, Modifiers: ModControl}
	require.ErrorIs(t, app.dispatchEvent(&ev), ErrInvalidState)
	require.Equal(t, "hi", input.Text())
}

func TestTextInputSubmit(t *testing.T) {
	app, input := newTestInput(t, 20)
	var submitted []string
	input.OnSubmit = func(text string) error {
		submitted = append(submitted, text)
		return nil
	}
	typeChars(t, app, "done")

	// single-line enter commits like escape
	pressKey(t, app, KeyEnter, 0)
	require.False(t, input.Control().Active())
	require.Equal(t, []string{"done"}, submitted)

	// reactivate and leave with escape
	pressKey(t, app, KeyEnter, 0)
	require.True(t, input.Control().Active())
	pressKey(t, app, KeyEscape, 0)
	require.False(t, input.Control().Active())
	require.Equal(t, []string{"done", "done"}, submitted)
}

func TestTextInputOnChange(t *testing.T) {
	app, input := newTestInput(t, 20)
	changes := 0
	input.OnChange = func(string) error {
		changes++
		return nil
	}
	typeChars(t, app, "ab")
	require.Equal(t, 2, changes)
	pressKey(t, app, KeyBackspace, 0)
	require.Equal(t, 3, changes)
	// pure cursor motion is not a change
	pressKey(t, app, KeyHome, 0)
	require.Equal(t, 3, changes)
	_ = input
}

func TestTextInputSingleLineRender(t *testing.T) {
	app, input := newTestInput(t, 30)
	typeChars(t, app, "secret")
	require.NoError(t, app.Tick())
	require.Equal(t, "secret", strings.TrimRight(input.Control().image.Row(0), " "))

	input.SetType(TextInputPassword)
	require.NoError(t, app.Tick())
	require.Equal(t, "******", strings.TrimRight(input.Control().image.Row(0), " "))
}

func TestTextInputPlaceholder(t *testing.T) {
	app, _, _, _ := newTestApp(t, Extent{W: 40, H: 5})
	input := NewTextInput(nil, DefaultTheme(), 10)
	input.SetPlaceholder("type here")
	require.NoError(t, app.Add(input.Control()))
	require.NoError(t, app.Tick())
	require.Equal(t, "type here", strings.TrimRight(input.Control().image.Row(0), " "))
}

func TestTextInputSingleLineScroll(t *testing.T) {
	app, input := newTestInput(t, 40)
	input.Control().Transform().LocalExtent = Extent{W: 5, H: 1}
	input.Control().Transform().MarkDirty()
	require.NoError(t, app.Tick())

	typeChars(t, app, "abcdefgh")
	// the scroll follows the cursor past the right edge
	require.Equal(t, 8, input.CursorPosition())
	require.Positive(t, input.scroll)

	pressKey(t, app, KeyHome, 0)
	require.Zero(t, input.scroll)
}

func TestTextInputMultiline(t *testing.T) {
	app, _, _, _ := newTestApp(t, Extent{W: 40, H: 10})
	input := NewTextInput(nil, DefaultTheme(), 200)
	input.Control().Transform().LocalExtent = Extent{W: 6, H: 3}
	require.NoError(t, app.Add(input.Control()))
	require.NoError(t, app.Tick())

	down := Event{Type: EventKeyDown, Key: KeyEnter}
	require.NoError(t, app.dispatchEvent(&down))
	require.True(t, input.Control().Active())

	// multi-line enter inserts a newline instead of committing
	typeChars(t, app, "one")
	pressKey(t, app, KeyEnter, 0)
	typeChars(t, app, "two")
	require.Equal(t, "one\ntwo", input.Text())
	require.True(t, input.Control().Active())

	// up moves a wrapped line, clamping the column
	require.Equal(t, 7, input.CursorPosition())
	pressKey(t, app, KeyUpArrow, 0)
	require.Equal(t, Offset{X: 3, Y: 0}, input.cursorOffset)

	// home/end work on the current line
	pressKey(t, app, KeyEnd, 0)
	require.Equal(t, 3, input.CursorPosition())
	pressKey(t, app, KeyHome, 0)
	require.Equal(t, 0, input.CursorPosition())
}

func TestTextInputSetTextStripsNewlines(t *testing.T) {
	app, input := newTestInput(t, 40)
	input.SetText("a\nb")
	require.Equal(t, "a b", input.Text(), "single-line storage never holds a newline")
	_ = app
}
