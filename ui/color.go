package ui

import "github.com/gravitational/trace"

// Color is one of the 16 standard terminal colors.
type Color byte

const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlack
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite

	ColorDefaultForeground = ColorBrightWhite
	ColorDefaultBackground = ColorBlack
)

// ColorPair packs a foreground and background color into one byte:
// the high nibble is the foreground, the low nibble the background.
type ColorPair byte

// NewColorPair packs fg and bg into a ColorPair.
func NewColorPair(fg, bg Color) ColorPair {
	return ColorPair((fg&0xF)<<4 | bg&0xF)
}

// DefaultColorPair is bright white on black.
func DefaultColorPair() ColorPair {
	return NewColorPair(ColorDefaultForeground, ColorDefaultBackground)
}

// Foreground returns the packed foreground color.
func (p ColorPair) Foreground() Color { return Color(p >> 4) }

// Background returns the packed background color.
func (p ColorPair) Background() Color { return Color(p & 0xF) }

// Each escape sequence is exactly six bytes, ESC [ d d d m, so the
// compositor can size its output buffer by counting color changes.
const colorSeqLen = 6

var foregroundSeqs = [16]string{
	"\x1b[030m", "\x1b[031m", "\x1b[032m", "\x1b[033m",
	"\x1b[034m", "\x1b[035m", "\x1b[036m", "\x1b[037m",
	"\x1b[090m", "\x1b[091m", "\x1b[092m", "\x1b[093m",
	"\x1b[094m", "\x1b[095m", "\x1b[096m", "\x1b[097m",
}

var backgroundSeqs = [16]string{
	"\x1b[040m", "\x1b[041m", "\x1b[042m", "\x1b[043m",
	"\x1b[044m", "\x1b[045m", "\x1b[046m", "\x1b[047m",
	"\x1b[100m", "\x1b[101m", "\x1b[102m", "\x1b[103m",
	"\x1b[104m", "\x1b[105m", "\x1b[106m", "\x1b[107m",
}

const resetSeq = "\x1b[000m"

// foregroundSeq returns the escape sequence selecting c as foreground.
func foregroundSeq(c Color) string { return foregroundSeqs[c&0xF] }

// backgroundSeq returns the escape sequence selecting c as background.
func backgroundSeq(c Color) string { return backgroundSeqs[c&0xF] }

// Pixel is one terminal cell: a printable character and a color pair.
// A character value of zero is invalid and rejected by drawing
// operations.
type Pixel struct {
	Char  byte
	Color ColorPair
}

// NewPixel builds a pixel from a character and explicit colors.
func NewPixel(ch byte, fg, bg Color) Pixel {
	return Pixel{Char: ch, Color: NewColorPair(fg, bg)}
}

// DefaultPixel is a space in the default colors.
func DefaultPixel() Pixel {
	return Pixel{Char: ' ', Color: DefaultColorPair()}
}

// Pattern is a non-empty sequence of pixels indexed cyclically, used to
// tile dashes and gradients along drawn lines.
type Pattern struct {
	pixels []Pixel
}

// NewPattern builds a pattern from the given pixels.
func NewPattern(pixels ...Pixel) (*Pattern, error) {
	if len(pixels) == 0 {
		return nil, trace.BadParameter("pattern must not be empty")
	}
	for _, px := range pixels {
		if px.Char == 0 {
			return nil, trace.Wrap(ErrInvalidPixel)
		}
	}
	return &Pattern{pixels: append([]Pixel(nil), pixels...)}, nil
}

// PatternFromString builds a pattern with one pixel per byte of s, all
// sharing the given color pair.
func PatternFromString(s string, color ColorPair) (*Pattern, error) {
	if s == "" {
		return nil, trace.BadParameter("pattern string must not be empty")
	}
	pixels := make([]Pixel, len(s))
	for i := 0; i < len(s); i++ {
		pixels[i] = Pixel{Char: s[i], Color: color}
	}
	return NewPattern(pixels...)
}

// Len returns the number of pixels in the pattern.
func (p *Pattern) Len() int { return len(p.pixels) }

// At returns the pixel at index i, wrapping cyclically.
func (p *Pattern) At(i int) Pixel {
	return p.pixels[i%len(p.pixels)]
}
