package ui

import "github.com/gravitational/trace"

// Surface is the image the application composes controls onto, plus a
// cached ANSI-encoded rendering of it rebuilt on demand.
type Surface struct {
	image    *Image
	rendered []byte
}

// NewSurface allocates a surface of the given extent.
func NewSurface(extent Extent) (*Surface, error) {
	if extent.IsZero() {
		return nil, trace.Wrap(ErrOutOfRange)
	}
	return &Surface{image: NewImage(extent)}, nil
}

// Image returns the surface's backing image.
func (s *Surface) Image() *Image { return s.image }

// Rendered returns the cached ANSI string built by the last Refresh.
// It is empty until the first Refresh.
func (s *Surface) Rendered() []byte { return s.rendered }

// Refresh rebuilds the cached ANSI string from the image. The encoder
// walks the pixel grid once counting foreground and background runs to
// size the buffer exactly, then again emitting a color sequence only
// when the respective color changes, and a single reset at the end.
func (s *Surface) Refresh() error {
	img := s.image
	n := img.extent.W * img.extent.H
	if n == 0 {
		return trace.Wrap(ErrOutOfRange)
	}

	// first pass: count color changes
	lastFg := img.colors[0].Foreground() + 1
	lastBg := img.colors[0].Background() + 1
	fgCount, bgCount := 0, 0
	for i := 0; i < n; i++ {
		if fg := img.colors[i].Foreground(); fg != lastFg {
			lastFg = fg
			fgCount++
		}
		if bg := img.colors[i].Background(); bg != lastBg {
			lastBg = bg
			bgCount++
		}
	}

	// second pass: emit characters and color sequences
	out := make([]byte, 0, n+(fgCount+bgCount+1)*colorSeqLen)
	lastFg = img.colors[0].Foreground() + 1
	lastBg = img.colors[0].Background() + 1
	for i := 0; i < n; i++ {
		if fg := img.colors[i].Foreground(); fg != lastFg {
			lastFg = fg
			out = append(out, foregroundSeq(fg)...)
		}
		if bg := img.colors[i].Background(); bg != lastBg {
			lastBg = bg
			out = append(out, backgroundSeq(bg)...)
		}
		out = append(out, img.text[i])
	}
	out = append(out, resetSeq...)

	s.rendered = out
	return nil
}

// Present flushes the cached rendering to the console: cursor home,
// then the encoded buffer.
func (s *Surface) Present(console Console) error {
	if console == nil {
		return trace.BadParameter("console is required")
	}
	if len(s.rendered) == 0 {
		return trace.Wrap(ErrInvalidState, "surface has not been refreshed")
	}
	if err := console.Present(s.rendered); err != nil {
		return trace.Wrap(ErrPresentation, err.Error())
	}
	return nil
}
