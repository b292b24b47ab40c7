package ui

import (
	"strings"

	"github.com/gravitational/trace"
)

// TextInputType selects how a text input renders its content.
type TextInputType int

const (
	// TextInputNormal shows the text as typed.
	TextInputNormal TextInputType = iota
	// TextInputPassword masks every character with '*'.
	TextInputPassword
)

// TextInput is a focusable text editor. It is single-line when its
// resolved height is one cell and multi-line otherwise; multi-line
// inputs word-wrap for both rendering and cursor geometry. While
// active the widget consumes all key events: cursor motion with
// optional shift selection, Ctrl word jumps, clipboard copy/cut/paste,
// insert/overwrite, and capacity-limited typing.
type TextInput struct {
	ctl         *Control
	theme       *Theme
	text        string
	capacity    int
	placeholder string
	inputType   TextInputType

	inserting      bool // overwrite cursor
	cursorPosition int  // byte index
	cursorOffset   Offset
	scroll         int

	selectionOrigin int
	selectionStart  int
	selectionEnd    int

	// OnChange fires after every text mutation.
	OnChange func(text string) error
	// OnSubmit fires when the input deactivates.
	OnSubmit func(text string) error
}

// NewTextInput creates a text input under parent holding at most
// capacity bytes.
func NewTextInput(parent *Transform, theme *Theme, capacity int) *TextInput {
	t := &TextInput{theme: theme, capacity: capacity}
	t.ctl = newControl(KindTextInput, parent, t)
	t.ctl.focusable = true
	t.ctl.transform.LocalExtent = Extent{W: 20, H: 1}
	return t
}

// Control returns the input's control.
func (t *TextInput) Control() *Control { return t.ctl }

// Text returns the stored text.
func (t *TextInput) Text() string { return t.text }

// SetText replaces the text, truncated to capacity, and collapses the
// selection and cursor to the start.
func (t *TextInput) SetText(text string) {
	text = t.sanitize(Sanitize(text))
	if len(text) > t.capacity {
		text = text[:t.capacity]
	}
	t.text = text
	t.cursorPosition = 0
	t.cursorOffset = Offset{}
	t.scroll = 0
	t.collapseSelection()
	t.ctl.MarkDirty()
}

// Capacity returns the byte capacity.
func (t *TextInput) Capacity() int { return t.capacity }

// SetCapacity changes the capacity, truncating the text if needed.
func (t *TextInput) SetCapacity(capacity int) {
	t.capacity = capacity
	if len(t.text) > capacity {
		t.text = t.text[:capacity]
		t.cursorPosition = min(t.cursorPosition, capacity)
		t.collapseSelection()
	}
	t.ctl.MarkDirty()
}

// Placeholder returns the placeholder text.
func (t *TextInput) Placeholder() string { return t.placeholder }

// SetPlaceholder sets the text rendered when the input is empty and
// not active.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.placeholder = Sanitize(placeholder)
	t.ctl.MarkDirty()
}

// SetType selects normal or password rendering.
func (t *TextInput) SetType(inputType TextInputType) {
	t.inputType = inputType
	t.ctl.MarkDirty()
}

// SetInserting toggles the overwrite cursor.
func (t *TextInput) SetInserting(inserting bool) {
	t.inserting = inserting
	t.ctl.MarkDirty()
}

// CursorPosition returns the byte index of the cursor.
func (t *TextInput) CursorPosition() int { return t.cursorPosition }

// Selection returns the ordered selection range; start == end means no
// selection.
func (t *TextInput) Selection() (start, end int) {
	return t.selectionStart, t.selectionEnd
}

// multiline reports whether the resolved extent spans several rows.
func (t *TextInput) multiline() bool {
	return t.ctl.transform.GlobalRect().Extent.H > 1
}

// sanitize strips newlines for single-line inputs so storage never
// holds a line break the renderer cannot place.
func (t *TextInput) sanitize(s string) string {
	if t.multiline() {
		return s
	}
	return strings.ReplaceAll(s, "\n", " ")
}

func (t *TextInput) hasSelection() bool { return t.selectionStart != t.selectionEnd }

func (t *TextInput) collapseSelection() {
	t.selectionStart = t.cursorPosition
	t.selectionEnd = t.cursorPosition
}

// selectedText returns the selected bytes, or "".
func (t *TextInput) selectedText() string {
	return t.text[t.selectionStart:t.selectionEnd]
}

// removeSelection deletes the selected range and moves the cursor to
// its start.
func (t *TextInput) removeSelection() {
	if !t.hasSelection() {
		return
	}
	t.text = t.text[:t.selectionStart] + t.text[t.selectionEnd:]
	t.cursorPosition = t.selectionStart
	t.collapseSelection()
}

// insertText inserts s at the cursor, truncated to the remaining
// capacity, and advances the cursor past it.
func (t *TextInput) insertText(s string) {
	if remaining := t.capacity - len(t.text); len(s) > remaining {
		s = s[:max(remaining, 0)]
	}
	if s == "" {
		return
	}
	t.text = t.text[:t.cursorPosition] + s + t.text[t.cursorPosition:]
	t.cursorPosition += len(s)
}

func (t *TextInput) fireChange() error {
	if t.OnChange != nil {
		return trace.Wrap(t.OnChange(t.text))
	}
	return nil
}

// deactivate leaves the active state and fires OnSubmit.
func (t *TextInput) deactivate() error {
	t.ctl.state &^= StateActive
	t.ctl.state |= StateDirty
	if t.OnSubmit != nil {
		return trace.Wrap(t.OnSubmit(t.text))
	}
	return nil
}

func (t *TextInput) handle(ev *Event) error {
	c := t.ctl
	switch ev.Type {
	case EventKeyDown, EventKeyHeld:
		if !c.Focused() {
			break
		}
		if !c.Active() {
			if ev.Key == KeyEnter || ev.Key == KeySpace {
				c.state |= StateActive | StateDirty
			}
			break
		}
		return t.handleActiveKey(ev)
	case EventRefresh:
		return t.refresh()
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

func (t *TextInput) handleActiveKey(ev *Event) error {
	c := t.ctl
	extent := c.transform.GlobalRect().Extent
	multiline := t.multiline()
	ctrl := ev.Modifiers&ModControl != 0

	cursorMoved := false
	updateCursorOffset := false

	switch ev.Key {
	case KeyEscape:
		return t.deactivate()

	case KeyBackspace:
		if t.cursorPosition > 0 && !t.hasSelection() && ctrl {
			t.selectionEnd = t.cursorPosition
			t.selectionStart = seekClassLeft(t.text, t.cursorPosition)
		}
		switch {
		case t.hasSelection():
			t.removeSelection()
		case t.cursorPosition > 0:
			t.text = t.text[:t.cursorPosition-1] + t.text[t.cursorPosition:]
			t.cursorPosition--
		default:
			return nil
		}
		c.state |= StateDirty
		updateCursorOffset = true
		if err := t.fireChange(); err != nil {
			return err
		}

	case KeyDelete:
		if t.cursorPosition < len(t.text) && !t.hasSelection() && ctrl {
			t.selectionStart = t.cursorPosition
			t.selectionEnd = seekClassRight(t.text, t.cursorPosition)
		}
		switch {
		case t.hasSelection():
			t.removeSelection()
		case t.cursorPosition < len(t.text):
			t.text = t.text[:t.cursorPosition] + t.text[t.cursorPosition+1:]
		default:
			return nil
		}
		c.state |= StateDirty
		updateCursorOffset = true
		if err := t.fireChange(); err != nil {
			return err
		}

	case KeyLeftArrow:
		if t.cursorPosition > 0 {
			if ctrl {
				t.cursorPosition = seekClassLeft(t.text, t.cursorPosition)
			} else {
				t.cursorPosition--
			}
			c.state |= StateDirty
			cursorMoved = true
			updateCursorOffset = true
		}

	case KeyRightArrow:
		if t.cursorPosition < len(t.text) {
			if ctrl {
				t.cursorPosition = seekClassRight(t.text, t.cursorPosition)
			} else {
				t.cursorPosition++
			}
			c.state |= StateDirty
			cursorMoved = true
			updateCursorOffset = true
		}

	case KeyUpArrow:
		if t.cursorPosition > 0 {
			if multiline {
				t.cursorUp(extent.W)
			} else {
				t.cursorPosition = 0
			}
			c.state |= StateDirty
			cursorMoved = true
		}

	case KeyDownArrow:
		if t.cursorPosition < len(t.text) {
			if multiline {
				t.cursorDown(extent.W)
			} else {
				t.cursorPosition = len(t.text)
			}
			c.state |= StateDirty
			cursorMoved = true
		}

	case KeyHome:
		if multiline && !ctrl {
			_, offsets := wrapWithOffsets(t.text, extent.W)
			if len(offsets) > 0 {
				row := min(t.cursorOffset.Y, len(offsets)-1)
				t.cursorPosition = offsets[row]
			}
			t.cursorOffset.X = 0
		} else {
			t.cursorPosition = 0
			updateCursorOffset = true
		}
		if ctrl {
			t.cursorOffset = Offset{}
		}
		c.state |= StateDirty
		cursorMoved = true

	case KeyEnd:
		if multiline {
			lines, offsets := wrapWithOffsets(t.text, extent.W)
			switch {
			case len(lines) == 0:
			case ctrl || t.cursorOffset.Y >= len(lines)-1:
				t.cursorPosition = len(t.text)
				t.cursorOffset.Y = len(lines) - 1
				t.cursorOffset.X = len(lines[len(lines)-1])
			default:
				row := t.cursorOffset.Y
				lineSize := len(lines[row])
				t.cursorPosition = offsets[row] + lineSize - 1
				t.cursorOffset.X = lineSize - 1
			}
		} else {
			t.cursorPosition = len(t.text)
			updateCursorOffset = true
		}
		c.state |= StateDirty
		cursorMoved = true

	default:
		if ev.Key == KeyEnter && !multiline {
			return t.deactivate()
		}

		if ctrl {
			handled, err := t.handleClipboardKey(ev)
			if err != nil {
				return err
			}
			if handled {
				updateCursorOffset = true
				break
			}
		}

		ch := ev.Key.Char(ev.Modifiers)
		if !isSafeChar(ch) && (!multiline || ch != '\n') {
			break
		}
		if len(t.text) >= t.capacity {
			if ev.App != nil {
				ev.App.Beep()
			}
			break
		}
		t.removeSelection()
		t.insertText(string(ch))
		c.state |= StateDirty
		updateCursorOffset = true
		if err := t.fireChange(); err != nil {
			return err
		}
	}

	t.updateSelection(cursorMoved, ev.Modifiers&ModShift != 0)
	t.followCursor(extent, multiline, updateCursorOffset)
	return nil
}

// handleClipboardKey covers the Ctrl chords: copy, cut, paste, select
// all. It reports whether the key was one of them.
func (t *TextInput) handleClipboardKey(ev *Event) (bool, error) {
	c := t.ctl
	clip := func() Clipboard {
		if ev.App != nil {
			return ev.App.Clipboard()
		}
		return nil
	}
	switch ev.Key {
	case KeyC:
		if !t.hasSelection() {
			return true, nil
		}
		cb := clip()
		if cb == nil {
			return true, trace.NotImplemented("no clipboard available")
		}
		return true, trace.Wrap(cb.SetText(t.selectedText()))

	case KeyX:
		if !t.hasSelection() {
			return true, nil
		}
		cb := clip()
		if cb == nil {
			return true, trace.NotImplemented("no clipboard available")
		}
		if err := cb.SetText(t.selectedText()); err != nil {
			return true, trace.Wrap(err)
		}
		t.removeSelection()
		c.state |= StateDirty
		return true, t.fireChange()

	case KeyV:
		cb := clip()
		if cb == nil {
			return true, trace.NotImplemented("no clipboard available")
		}
		pasted, err := cb.GetText()
		if err != nil {
			return true, trace.Wrap(err)
		}
		t.removeSelection()
		t.insertText(t.sanitize(Sanitize(pasted)))
		c.state |= StateDirty
		return true, t.fireChange()

	case KeyA:
		t.selectionOrigin = 0
		t.selectionStart = 0
		t.selectionEnd = len(t.text)
		t.cursorPosition = len(t.text)
		c.state |= StateDirty
		return true, nil
	}
	return false, nil
}

// cursorUp moves the cursor one wrapped line up, clamping the column.
func (t *TextInput) cursorUp(width int) {
	if t.cursorOffset.Y == 0 {
		t.cursorPosition = 0
		t.cursorOffset.X = 0
		return
	}
	t.cursorOffset.Y--
	lines, offsets := wrapWithOffsets(t.text, width)
	if t.cursorOffset.Y >= len(lines) {
		return
	}
	lineSize := len(lines[t.cursorOffset.Y])
	t.cursorPosition = offsets[t.cursorOffset.Y] + min(max(lineSize-1, 0), t.cursorOffset.X)
}

// cursorDown moves the cursor one wrapped line down, clamping the
// column; from the last line it jumps to the end of the text.
func (t *TextInput) cursorDown(width int) {
	lines, offsets := wrapWithOffsets(t.text, width)
	if len(lines) == 0 {
		return
	}
	if t.cursorOffset.Y >= len(lines)-1 {
		t.cursorPosition = len(t.text)
		t.cursorOffset.X = len(lines[len(lines)-1])
		return
	}
	t.cursorOffset.Y++
	lineSize := len(lines[t.cursorOffset.Y])
	if lineSize == 0 {
		t.cursorPosition = offsets[t.cursorOffset.Y]
		return
	}
	adjust := 1
	if t.cursorOffset.Y == len(lines)-1 {
		adjust = 0
	}
	t.cursorPosition = offsets[t.cursorOffset.Y] + min(lineSize-adjust, t.cursorOffset.X)
}

// updateSelection maintains the selection after cursor motion: shift
// extends from the origin, anything else collapses to the cursor.
func (t *TextInput) updateSelection(cursorMoved, shift bool) {
	if cursorMoved {
		if shift {
			if !t.hasSelection() {
				t.selectionOrigin = t.selectionStart
			}
			if t.cursorPosition <= t.selectionOrigin {
				t.selectionStart = t.cursorPosition
				t.selectionEnd = t.selectionOrigin
			}
			if t.cursorPosition >= t.selectionOrigin {
				t.selectionStart = t.selectionOrigin
				t.selectionEnd = t.cursorPosition
			}
		} else {
			t.collapseSelection()
		}
		return
	}
	if !t.hasSelection() && t.selectionStart != t.cursorPosition {
		// cursor moved due to a modification
		t.collapseSelection()
	}
}

// followCursor clamps the scroll so the cursor stays in view: rows in
// multi-line inputs, bytes in single-line ones.
func (t *TextInput) followCursor(extent Extent, multiline, updateCursorOffset bool) {
	if multiline {
		_, offsets := wrapWithOffsets(t.text, extent.W)
		cursor := CursorOffset(t.cursorPosition, offsets)
		if updateCursorOffset {
			t.cursorOffset = cursor
		}
		t.scroll = clampScroll(t.scroll, cursor.Y, extent.H)
		return
	}
	t.scroll = clampScroll(t.scroll, t.cursorPosition, extent.W)
}

func (t *TextInput) refresh() error {
	c := t.ctl
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}
	active := c.Active()
	px := t.theme.statePixel(c.state)
	if err := c.image.Clear(px); err != nil {
		return trace.Wrap(err)
	}

	// pick what to render: placeholder when idle and empty, masked
	// text for passwords, the text otherwise
	text := t.text
	if !active && text == "" {
		text = t.placeholder
	} else if t.inputType == TextInputPassword {
		text = strings.Repeat("*", len(text))
	}

	if t.multiline() {
		return t.refreshMultiline(text, extent, active, px)
	}
	return t.refreshSingleline(text, extent, active, px)
}

func (t *TextInput) refreshSingleline(text string, extent Extent, active bool, px Pixel) error {
	c := t.ctl
	offset := t.scroll
	if active {
		if t.cursorPosition-offset == extent.W {
			offset++
		}
	} else {
		offset = 0
	}
	length := min(extent.W, len(text)-offset)
	if length > 0 {
		c.image.DrawString(Offset{}, safeCopy(text[offset:offset+length], length), px.Color)
	}

	if !active {
		return nil
	}

	// selection overdraw
	if t.hasSelection() && t.selectionEnd > offset && t.selectionStart < offset+length {
		start := max(t.selectionStart, offset)
		end := min(t.selectionEnd, offset+length)
		c.image.DrawString(
			Offset{X: start - offset},
			safeCopy(text[start:end], end-start),
			t.theme.Pixel(PixelActiveSelected).Color,
		)
	}

	t.drawCursor(Offset{X: t.cursorPosition - offset}, text)
	return nil
}

func (t *TextInput) refreshMultiline(text string, extent Extent, active bool, px Pixel) error {
	c := t.ctl
	lines, offsets := wrapWithOffsets(text, extent.W)
	cursor := CursorOffset(t.cursorPosition, offsets)
	scroll := t.scroll
	if !active {
		scroll = 0
	}
	cursor.Y -= scroll

	selected := t.theme.Pixel(PixelActiveSelected)
	for row := 0; row < extent.H && scroll+row < len(lines); row++ {
		line := trimLineBreak(lines[scroll+row])
		lineBegin := offsets[scroll+row]
		lineEnd := lineBegin + len(line)

		color := px.Color
		if t.hasSelection() && lineBegin >= t.selectionStart && lineEnd <= t.selectionEnd {
			color = selected.Color
		}
		c.image.DrawString(Offset{Y: row}, safeCopy(line, extent.W), color)

		// partial selection overdraw
		if t.hasSelection() &&
			((t.selectionStart >= lineBegin && t.selectionStart <= lineEnd) ||
				(t.selectionEnd >= lineBegin && t.selectionEnd <= lineEnd)) {
			start := max(t.selectionStart, lineBegin)
			end := min(t.selectionEnd, lineEnd)
			if end > start {
				c.image.DrawString(
					Offset{X: start - lineBegin, Y: row},
					safeCopy(text[start:end], end-start),
					selected.Color,
				)
			}
		}
	}

	if !active {
		return nil
	}
	t.drawCursor(cursor, text)
	return nil
}

// drawCursor places the cursor cell, absorbing the out-of-view case:
// a cursor sitting exactly past a full line has no cell to land on.
func (t *TextInput) drawCursor(off Offset, text string) {
	if !t.ctl.image.inBounds(off) {
		return
	}
	t.ctl.image.Set(off, t.cursorPixel(text))
}

// cursorPixel is the theme cursor cell; in overwrite mode it shows the
// character under the cursor.
func (t *TextInput) cursorPixel(text string) Pixel {
	px := t.theme.Pixel(PixelCursor)
	if t.inserting && t.cursorPosition < len(text) && isSafeChar(text[t.cursorPosition]) {
		px.Char = text[t.cursorPosition]
	}
	return px
}
