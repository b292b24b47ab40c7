package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"zero width", "abc", 0, nil},
		{"fits", "abc", 10, []string{"abc"}},
		{"hard break", "abcdef", 3, []string{"abc", "def"}},
		{"break at space", "aa bbbb", 6, []string{"aa ", "bbbb"}},
		{"break keeps double spaces", "a  bcd", 3, []string{"a  ", "bcd"}},
		{"newline kept on line", "ab\ncd", 10, []string{"ab\n", "cd"}},
		{"trailing newline adds empty line", "ab\n", 10, []string{"ab\n", ""}},
		{"only newline", "\n", 10, []string{"\n", ""}},
		// a space exactly on the width boundary cannot end its line
		// without exceeding the width, so it starts the next line
		{"space on the boundary", "hello world", 5, []string{"hello", " worl", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WrapText(tt.text, tt.width))
		})
	}
}

func TestWrapTextReproducesInput(t *testing.T) {
	inputs := []string{
		"hello world this is a test",
		"one\ntwo\nthree",
		"nowhitespaceatallinthisinput",
		"a b c d e f g h i j k l m n o p",
		"trailing newline\n",
		"  leading and  double  spaces",
	}
	for _, text := range inputs {
		for width := 1; width <= 12; width++ {
			lines := WrapText(text, width)
			require.Equal(t, text, strings.Join(lines, ""),
				"width %d must reproduce input", width)
			for _, line := range lines {
				require.LessOrEqual(t, len(trimLineBreak(line)), width,
					"line %q exceeds width %d", line, width)
			}
		}
	}
}

func TestLineOffsets(t *testing.T) {
	lines := []string{"ab\n", "cdef", "g"}
	require.Equal(t, []int{0, 3, 7}, LineOffsets(lines))
	require.Empty(t, LineOffsets(nil))
}

func TestCursorOffset(t *testing.T) {
	// "hello world" wrapped at 6: "hello ", "world"
	lines, offsets := wrapWithOffsets("hello world", 6)
	require.Equal(t, []string{"hello ", "world"}, lines)
	require.Equal(t, []int{0, 6}, offsets)

	tests := []struct {
		cursor int
		want   Offset
	}{
		{0, Offset{0, 0}},
		{4, Offset{4, 0}},
		{5, Offset{5, 0}},
		{6, Offset{0, 1}},
		{8, Offset{2, 1}},
		{11, Offset{5, 1}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CursorOffset(tt.cursor, offsets), "cursor %d", tt.cursor)
	}

	require.Equal(t, Offset{}, CursorOffset(3, nil))
}

func TestCursorOffsetWithinTable(t *testing.T) {
	text := "the quick brown fox\njumps over the lazy dog"
	lines, offsets := wrapWithOffsets(text, 7)
	for i := 0; i <= len(text); i++ {
		off := CursorOffset(i, offsets)
		require.GreaterOrEqual(t, off.Y, 0)
		require.Less(t, off.Y, len(lines))
		require.LessOrEqual(t, offsets[off.Y], i)
		require.LessOrEqual(t, i, offsets[off.Y]+len(lines[off.Y]))
	}
}

func TestSafeCopy(t *testing.T) {
	require.Equal(t, "ab c", safeCopy("ab\x01c", 10))
	require.Equal(t, "ab", safeCopy("abcdef", 2))
	require.Equal(t, "x x", safeCopy("x\tx", 5))
}

func TestSanitize(t *testing.T) {
	require.Equal(t, "plain ascii", Sanitize("plain ascii"))
	// non-ASCII runes become spaces matching their display width
	require.Equal(t, "a b", Sanitize("aéb"), "narrow rune folds to one space")
	require.Equal(t, "a  b", Sanitize("a世b"), "wide rune folds to two spaces")
	require.Equal(t, "ab", Sanitize("a​b"), "zero-width rune vanishes")
}

func TestSeekClassLeft(t *testing.T) {
	tests := []struct {
		text   string
		cursor int
		want   int
	}{
		{"hello world", 11, 6}, // back over the word only
		{"hello ", 6, 0},       // whitespace merges with the word before it
		{"hello", 5, 0},
		{"foo++bar", 8, 5},
		{"foo++", 5, 3},
		{"abc123", 6, 3}, // digits are their own class
		{"x", 0, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, seekClassLeft(tt.text, tt.cursor),
			"seekClassLeft(%q, %d)", tt.text, tt.cursor)
	}
}

func TestSeekClassRight(t *testing.T) {
	tests := []struct {
		text   string
		cursor int
		want   int
	}{
		{"hello world", 0, 6}, // over the word and its trailing space
		{" world", 0, 6},      // whitespace merges with the word after it
		{"hello", 0, 5},
		{"++foo", 0, 2},
		{"abc123", 0, 3},
		{"x", 1, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, seekClassRight(tt.text, tt.cursor),
			"seekClassRight(%q, %d)", tt.text, tt.cursor)
	}
}
