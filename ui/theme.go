package ui

import (
	"io"
	"os"

	"github.com/gravitational/trace"
	"gopkg.in/yaml.v3"
)

// CharacterID indexes the theme's character palette.
type CharacterID int

const (
	CharEmpty CharacterID = iota
	CharScrollVArea
	CharScrollHArea
	CharScrollVBar
	CharScrollHBar
	CharUp
	CharDown
	CharLeft
	CharRight
	CharCheckboxUnchecked
	CharCheckboxChecked
	CharCheckboxLeft
	CharCheckboxRight
	CharRadioboxUnchecked
	CharRadioboxChecked
	CharRadioboxLeft
	CharRadioboxRight

	characterIDCount
)

// PixelID indexes the theme's pixel palette.
type PixelID int

const (
	PixelNormal PixelID = iota
	PixelFocused
	PixelActive
	PixelHovered
	PixelNormalSelected
	PixelFocusedSelected
	PixelActiveSelected
	PixelHoveredSelected
	PixelNormalText
	PixelFocusedText
	PixelNormalScrollArea
	PixelFocusedScrollArea
	PixelActiveScrollArea
	PixelNormalScrollBar
	PixelFocusedScrollBar
	PixelActiveScrollBar
	PixelCursor
	PixelProgressBar
	PixelBackground

	pixelIDCount
)

// Theme is the indexed palette of characters and pixels widgets draw
// with. It is immutable for the session; widgets hold a borrowed
// reference injected at construction time.
type Theme struct {
	Characters [characterIDCount]byte
	Pixels     [pixelIDCount]Pixel
}

// Char returns the themed character for id.
func (t *Theme) Char(id CharacterID) byte { return t.Characters[id] }

// Pixel returns the themed pixel for id.
func (t *Theme) Pixel(id PixelID) Pixel { return t.Pixels[id] }

// statePixel picks the normal/focused/active pixel for the given state.
func (t *Theme) statePixel(state StateFlags) Pixel {
	switch {
	case state&StateActive != 0:
		return t.Pixels[PixelActive]
	case state&StateFocused != 0:
		return t.Pixels[PixelFocused]
	default:
		return t.Pixels[PixelNormal]
	}
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	t := &Theme{}

	t.Characters[CharEmpty] = ' '
	t.Characters[CharScrollVArea] = '|'
	t.Characters[CharScrollHArea] = '-'
	t.Characters[CharScrollVBar] = '#'
	t.Characters[CharScrollHBar] = '#'
	t.Characters[CharUp] = '^'
	t.Characters[CharDown] = 'v'
	t.Characters[CharLeft] = '<'
	t.Characters[CharRight] = '>'
	t.Characters[CharCheckboxUnchecked] = ' '
	t.Characters[CharCheckboxChecked] = 'X'
	t.Characters[CharCheckboxLeft] = '['
	t.Characters[CharCheckboxRight] = ']'
	t.Characters[CharRadioboxUnchecked] = ' '
	t.Characters[CharRadioboxChecked] = 'O'
	t.Characters[CharRadioboxLeft] = '('
	t.Characters[CharRadioboxRight] = ')'

	empty := t.Characters[CharEmpty]
	t.Pixels[PixelNormal] = NewPixel(empty, ColorBlack, ColorBrightBlack)
	t.Pixels[PixelFocused] = NewPixel(empty, ColorBrightBlack, ColorBrightWhite)
	t.Pixels[PixelActive] = NewPixel(empty, ColorBlack, ColorWhite)
	t.Pixels[PixelHovered] = NewPixel(empty, ColorBlack, ColorCyan)
	t.Pixels[PixelNormalSelected] = NewPixel(empty, ColorBlack, ColorBrightBlue)
	t.Pixels[PixelFocusedSelected] = NewPixel(empty, ColorBlack, ColorBrightBlue)
	t.Pixels[PixelActiveSelected] = NewPixel(empty, ColorBrightWhite, ColorBlue)
	t.Pixels[PixelHoveredSelected] = NewPixel(empty, ColorBrightWhite, ColorBrightBlue)
	t.Pixels[PixelNormalText] = NewPixel(empty, ColorWhite, ColorBlack)
	t.Pixels[PixelFocusedText] = NewPixel(empty, ColorBrightWhite, ColorBlack)
	t.Pixels[PixelNormalScrollArea] = NewPixel(empty, ColorBlack, ColorBrightBlack)
	t.Pixels[PixelFocusedScrollArea] = NewPixel(empty, ColorBrightBlack, ColorWhite)
	t.Pixels[PixelActiveScrollArea] = NewPixel(empty, ColorBrightBlack, ColorBrightWhite)
	t.Pixels[PixelNormalScrollBar] = NewPixel(empty, ColorBlack, ColorBrightBlack)
	t.Pixels[PixelFocusedScrollBar] = NewPixel(empty, ColorBrightBlack, ColorWhite)
	t.Pixels[PixelActiveScrollBar] = NewPixel(empty, ColorWhite, ColorBrightBlack)
	t.Pixels[PixelCursor] = NewPixel(empty, ColorBrightWhite, ColorBrightBlack)
	t.Pixels[PixelProgressBar] = NewPixel(empty, ColorBrightWhite, ColorBrightGreen)
	t.Pixels[PixelBackground] = NewPixel(empty, ColorBrightWhite, ColorBrightBlack)

	return t
}

// themeFile is the YAML shape of a theme. Entries not present keep the
// default palette's value.
type themeFile struct {
	Characters map[string]string `yaml:"characters"`
	Pixels     map[string]struct {
		Char       string `yaml:"char"`
		Foreground string `yaml:"fg"`
		Background string `yaml:"bg"`
	} `yaml:"pixels"`
}

var characterNames = map[string]CharacterID{
	"empty":              CharEmpty,
	"scroll-v-area":      CharScrollVArea,
	"scroll-h-area":      CharScrollHArea,
	"scroll-v-bar":       CharScrollVBar,
	"scroll-h-bar":       CharScrollHBar,
	"up":                 CharUp,
	"down":               CharDown,
	"left":               CharLeft,
	"right":              CharRight,
	"checkbox-unchecked": CharCheckboxUnchecked,
	"checkbox-checked":   CharCheckboxChecked,
	"checkbox-left":      CharCheckboxLeft,
	"checkbox-right":     CharCheckboxRight,
	"radiobox-unchecked": CharRadioboxUnchecked,
	"radiobox-checked":   CharRadioboxChecked,
	"radiobox-left":      CharRadioboxLeft,
	"radiobox-right":     CharRadioboxRight,
}

var pixelNames = map[string]PixelID{
	"normal":              PixelNormal,
	"focused":             PixelFocused,
	"active":              PixelActive,
	"hovered":             PixelHovered,
	"normal-selected":     PixelNormalSelected,
	"focused-selected":    PixelFocusedSelected,
	"active-selected":     PixelActiveSelected,
	"hovered-selected":    PixelHoveredSelected,
	"normal-text":         PixelNormalText,
	"focused-text":        PixelFocusedText,
	"normal-scroll-area":  PixelNormalScrollArea,
	"focused-scroll-area": PixelFocusedScrollArea,
	"active-scroll-area":  PixelActiveScrollArea,
	"normal-scroll-bar":   PixelNormalScrollBar,
	"focused-scroll-bar":  PixelFocusedScrollBar,
	"active-scroll-bar":   PixelActiveScrollBar,
	"cursor":              PixelCursor,
	"progress-bar":        PixelProgressBar,
	"background":          PixelBackground,
}

var colorNames = map[string]Color{
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-black":   ColorBrightBlack,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
}

// ParseTheme reads a YAML theme overlayed on the default palette.
func ParseTheme(r io.Reader) (*Theme, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, trace.Wrap(err)
	}

	theme := DefaultTheme()
	for name, ch := range file.Characters {
		id, ok := characterNames[name]
		if !ok {
			return nil, trace.BadParameter("unknown theme character %q", name)
		}
		if len(ch) != 1 || !isSafeChar(ch[0]) {
			return nil, trace.BadParameter("theme character %q must be one printable ASCII byte", name)
		}
		theme.Characters[id] = ch[0]
	}
	for name, spec := range file.Pixels {
		id, ok := pixelNames[name]
		if !ok {
			return nil, trace.BadParameter("unknown theme pixel %q", name)
		}
		px := theme.Pixels[id]
		if spec.Char != "" {
			if len(spec.Char) != 1 || !isSafeChar(spec.Char[0]) {
				return nil, trace.BadParameter("theme pixel %q char must be one printable ASCII byte", name)
			}
			px.Char = spec.Char[0]
		}
		fg, bg := px.Color.Foreground(), px.Color.Background()
		if spec.Foreground != "" {
			if fg, ok = colorNames[spec.Foreground]; !ok {
				return nil, trace.BadParameter("unknown color %q", spec.Foreground)
			}
		}
		if spec.Background != "" {
			if bg, ok = colorNames[spec.Background]; !ok {
				return nil, trace.BadParameter("unknown color %q", spec.Background)
			}
		}
		px.Color = NewColorPair(fg, bg)
		theme.Pixels[id] = px
	}
	return theme, nil
}

// LoadTheme reads a YAML theme file from disk.
func LoadTheme(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, trace.ConvertSystemError(err)
	}
	defer f.Close()
	theme, err := ParseTheme(f)
	if err != nil {
		return nil, trace.Wrap(err, "parsing theme %s", path)
	}
	return theme, nil
}
