package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// WrapText greedily wraps text to the given width. An explicit newline
// always ends its line and is kept at the end of that line; when a line
// reaches width it breaks after the last whitespace seen on the line,
// keeping that whitespace at the end of the line it closes, or
// hard-breaks at the column when there is none. A trailing newline
// yields one extra empty line. Concatenating the returned lines
// reproduces the input byte for byte.
func WrapText(text string, width int) []string {
	if len(text) == 0 || width <= 0 {
		return nil
	}
	var lines []string
	lastSpace := 0
	lastLine := 0
	for i := 0; i < len(text); i++ {
		switch {
		case text[i] == '\n':
			lines = append(lines, text[lastLine:i+1])
			lastLine = i + 1
			lastSpace = lastLine
		case i-lastLine >= width:
			if lastSpace != lastLine {
				// the break whitespace ends the current line
				lines = append(lines, text[lastLine:lastSpace+1])
				lastLine = lastSpace + 1
				i = lastSpace
			} else {
				lines = append(lines, text[lastLine:i])
				lastLine = i
			}
			lastSpace = lastLine
		case isWhitespace(text[i]):
			lastSpace = i
		}
	}
	if lastLine < len(text) {
		lines = append(lines, text[lastLine:])
	}
	if text[len(text)-1] == '\n' {
		lines = append(lines, "")
	}
	return lines
}

// LineOffsets returns the cumulative byte index at which each wrapped
// line begins.
func LineOffsets(lines []string) []int {
	offsets := make([]int, len(lines))
	total := 0
	for i, line := range lines {
		offsets[i] = total
		total += len(line)
	}
	return offsets
}

// wrapWithOffsets wraps text and returns the lines with their offset
// table in one call.
func wrapWithOffsets(text string, width int) ([]string, []int) {
	lines := WrapText(text, width)
	return lines, LineOffsets(lines)
}

// CursorOffset maps a byte index into (column, row) against the line
// offset table: the row is the last line whose offset does not exceed
// the index, and the column is the remainder.
func CursorOffset(cursor int, offsets []int) Offset {
	if len(offsets) == 0 {
		return Offset{}
	}
	row := len(offsets) - 1
	for i := 1; i < len(offsets); i++ {
		if offsets[i] > cursor {
			row = i - 1
			break
		}
	}
	return Offset{X: cursor - offsets[row], Y: row}
}

// isSafeChar reports whether b renders as itself in a cell. Everything
// outside printable ASCII is displayed as a space.
func isSafeChar(b byte) bool { return b >= 32 && b <= 126 }

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// safeCopy returns up to width bytes of s with unsafe bytes replaced by
// spaces. The stored text is never modified; only display copies are.
func safeCopy(s string, width int) string {
	if width < len(s) {
		s = s[:width]
	}
	out := []byte(s)
	for i, b := range out {
		if !isSafeChar(b) {
			out[i] = ' '
		}
	}
	return string(out)
}

// Sanitize folds an arbitrary Unicode string into the one-byte ASCII
// cell model. Printable ASCII and newlines pass through, other ASCII
// bytes become one space, and anything else becomes as many spaces as
// the terminal columns it would have occupied, so pasted text keeps
// its visual width.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 {
			if isSafeChar(byte(r)) || r == '\n' {
				b.WriteByte(byte(r))
			} else {
				b.WriteByte(' ')
			}
			continue
		}
		for i := 0; i < runewidth.RuneWidth(r); i++ {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// charClass partitions bytes for word-boundary seeks.
type charClass int

const (
	classNone charClass = iota
	classLetter
	classNumber
	classWhitespace
	classSymbol
)

func classOf(b byte) charClass {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z':
		return classLetter
	case b >= '0' && b <= '9':
		return classNumber
	case isWhitespace(b):
		return classWhitespace
	case b >= 33 && b <= 126:
		return classSymbol
	}
	return classNone
}

// seekClassLeft returns the index of the start of the character-class
// run ending just before cursor. A whitespace run merges with the run
// before it, so deleting backward over "hello " removes the whole
// word and its trailing space.
func seekClassLeft(text string, cursor int) int {
	i := cursor
	if i <= 0 {
		return 0
	}
	if cls := classOf(text[i-1]); cls == classWhitespace {
		for i > 0 && classOf(text[i-1]) == classWhitespace {
			i--
		}
	}
	if i == 0 {
		return 0
	}
	cls := classOf(text[i-1])
	for i > 0 && classOf(text[i-1]) == cls {
		i--
	}
	return i
}

// seekClassRight is the forward counterpart of seekClassLeft: it
// returns the index just past the character-class run starting at
// cursor, absorbing a following whitespace run.
func seekClassRight(text string, cursor int) int {
	i := cursor
	if i >= len(text) {
		return len(text)
	}
	if classOf(text[i]) == classWhitespace {
		for i < len(text) && classOf(text[i]) == classWhitespace {
			i++
		}
		if i >= len(text) {
			return len(text)
		}
		cls := classOf(text[i])
		for i < len(text) && classOf(text[i]) == cls {
			i++
		}
		return i
	}
	cls := classOf(text[i])
	for i < len(text) && classOf(text[i]) == cls {
		i++
	}
	for i < len(text) && classOf(text[i]) == classWhitespace {
		i++
	}
	return i
}
