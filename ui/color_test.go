package ui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorPairRoundTrip(t *testing.T) {
	for fg := ColorBlack; fg <= ColorBrightWhite; fg++ {
		for bg := ColorBlack; bg <= ColorBrightWhite; bg++ {
			pair := NewColorPair(fg, bg)
			require.Equal(t, fg, pair.Foreground())
			require.Equal(t, bg, pair.Background())
		}
	}
}

func TestDefaultColorPair(t *testing.T) {
	pair := DefaultColorPair()
	require.Equal(t, ColorBrightWhite, pair.Foreground())
	require.Equal(t, ColorBlack, pair.Background())
}

func TestColorSequences(t *testing.T) {
	for c := ColorBlack; c <= ColorBrightWhite; c++ {
		fg := foregroundSeq(c)
		bg := backgroundSeq(c)
		require.Len(t, fg, colorSeqLen)
		require.Len(t, bg, colorSeqLen)
		code := 30 + int(c)
		if c >= ColorBrightBlack {
			code = 90 + int(c-ColorBrightBlack)
		}
		require.Equal(t, fmt.Sprintf("\x1b[%03dm", code), fg)
		require.Equal(t, fmt.Sprintf("\x1b[%03dm", code+10), bg)
	}
	require.Equal(t, "\x1b[000m", resetSeq)
}

func TestPattern(t *testing.T) {
	_, err := NewPattern()
	require.Error(t, err)

	_, err = NewPattern(Pixel{Char: 0})
	require.ErrorIs(t, err, ErrInvalidPixel)

	p, err := PatternFromString("-=", DefaultColorPair())
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())
	require.Equal(t, byte('-'), p.At(0).Char)
	require.Equal(t, byte('='), p.At(1).Char)
	require.Equal(t, byte('-'), p.At(2).Char, "pattern indexes cyclically")

	_, err = PatternFromString("", DefaultColorPair())
	require.Error(t, err)
}
