package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.Equal(t, byte(' '), theme.Char(CharEmpty))
	require.Equal(t, byte('^'), theme.Char(CharUp))
	require.Equal(t, byte('v'), theme.Char(CharDown))
	require.Equal(t, byte('X'), theme.Char(CharCheckboxChecked))
	require.Equal(t, byte('O'), theme.Char(CharRadioboxChecked))
	require.Equal(t, byte('['), theme.Char(CharCheckboxLeft))
	require.Equal(t, byte('('), theme.Char(CharRadioboxLeft))
	require.Equal(t, byte('#'), theme.Char(CharScrollVBar))

	normal := theme.Pixel(PixelNormal)
	require.Equal(t, ColorBlack, normal.Color.Foreground())
	require.Equal(t, ColorBrightBlack, normal.Color.Background())

	bar := theme.Pixel(PixelProgressBar)
	require.Equal(t, ColorBrightGreen, bar.Color.Background())

	// every pixel slot carries a drawable character
	for id := PixelID(0); id < pixelIDCount; id++ {
		require.NotEqual(t, byte(0), theme.Pixel(id).Char, "pixel %d", id)
	}
}

func TestThemeStatePixel(t *testing.T) {
	theme := DefaultTheme()
	require.Equal(t, theme.Pixel(PixelNormal), theme.statePixel(0))
	require.Equal(t, theme.Pixel(PixelFocused), theme.statePixel(StateFocused))
	require.Equal(t, theme.Pixel(PixelActive), theme.statePixel(StateActive|StateFocused))
}

func TestParseTheme(t *testing.T) {
	src := `
characters:
  checkbox-checked: "*"
  up: "+"
pixels:
  progress-bar:
    fg: black
    bg: bright-cyan
  cursor:
    char: "_"
`
	theme, err := ParseTheme(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, byte('*'), theme.Char(CharCheckboxChecked))
	require.Equal(t, byte('+'), theme.Char(CharUp))
	// untouched slots keep the defaults
	require.Equal(t, byte('v'), theme.Char(CharDown))

	bar := theme.Pixel(PixelProgressBar)
	require.Equal(t, ColorBlack, bar.Color.Foreground())
	require.Equal(t, ColorBrightCyan, bar.Color.Background())

	cursor := theme.Pixel(PixelCursor)
	require.Equal(t, byte('_'), cursor.Char)
	require.Equal(t, DefaultTheme().Pixel(PixelCursor).Color, cursor.Color)
}

func TestParseThemeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown character slot", "characters:\n  nonsense: \"x\"\n"},
		{"multi-byte character", "characters:\n  up: \"ab\"\n"},
		{"unknown pixel slot", "pixels:\n  nonsense:\n    fg: red\n"},
		{"unknown color", "pixels:\n  normal:\n    fg: mauve\n"},
		{"not yaml", "{{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTheme(strings.NewReader(tt.src))
			require.Error(t, err)
		})
	}
}
