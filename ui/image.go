package ui

import "github.com/gravitational/trace"

// Image is a row-major grid of characters and color pairs. Row y,
// column x is index y*w + x in both buffers.
type Image struct {
	extent Extent
	text   []byte
	colors []ColorPair
}

// NewImage allocates an image of the given extent. A zero extent yields
// an empty image.
func NewImage(extent Extent) *Image {
	img := &Image{}
	img.alloc(extent)
	return img
}

func (img *Image) alloc(extent Extent) {
	if extent.IsZero() {
		img.extent = Extent{}
		img.text = nil
		img.colors = nil
		return
	}
	n := extent.W * extent.H
	img.extent = extent
	img.text = make([]byte, n)
	img.colors = make([]ColorPair, n)
	for i := range img.text {
		img.text[i] = ' '
		img.colors[i] = DefaultColorPair()
	}
}

// Extent returns the image size.
func (img *Image) Extent() Extent { return img.extent }

func (img *Image) index(off Offset) int {
	return off.Y*img.extent.W + off.X
}

func (img *Image) inBounds(off Offset) bool {
	return off.X >= 0 && off.Y >= 0 && off.X < img.extent.W && off.Y < img.extent.H
}

// Set writes one pixel. It fails when the offset is outside the extent
// or the pixel character is zero.
func (img *Image) Set(off Offset, px Pixel) error {
	if !img.inBounds(off) {
		return trace.Wrap(ErrOutOfRange)
	}
	if px.Char == 0 {
		return trace.Wrap(ErrInvalidPixel)
	}
	i := img.index(off)
	img.text[i] = px.Char
	img.colors[i] = px.Color
	return nil
}

// Get returns the pixel at off, or a zeroed pixel when off is outside
// the extent. The zero pixel is a sentinel, not an error.
func (img *Image) Get(off Offset) Pixel {
	if !img.inBounds(off) {
		return Pixel{}
	}
	i := img.index(off)
	return Pixel{Char: img.text[i], Color: img.colors[i]}
}

// Resize reallocates the image to the new extent, clearing its
// contents. It is a no-op when the dimensions are unchanged.
func (img *Image) Resize(extent Extent) {
	if img.extent == extent {
		return
	}
	img.alloc(extent)
}

// Blit copies a rectangle of src into img. Both the source and the
// destination region are clipped to their respective extents;
// fully out-of-bounds copies succeed as zero-length copies.
func (img *Image) Blit(dstOff Offset, src *Image, srcOff Offset, extent Extent) {
	if src == nil || extent.IsZero() {
		return
	}
	// clip against the destination
	if dstOff.X < 0 {
		srcOff.X -= dstOff.X
		extent.W += dstOff.X
		dstOff.X = 0
	}
	if dstOff.Y < 0 {
		srcOff.Y -= dstOff.Y
		extent.H += dstOff.Y
		dstOff.Y = 0
	}
	extent.W = min(extent.W, img.extent.W-dstOff.X)
	extent.H = min(extent.H, img.extent.H-dstOff.Y)
	// clip against the source
	if srcOff.X < 0 {
		dstOff.X -= srcOff.X
		extent.W += srcOff.X
		srcOff.X = 0
	}
	if srcOff.Y < 0 {
		dstOff.Y -= srcOff.Y
		extent.H += srcOff.Y
		srcOff.Y = 0
	}
	extent.W = min(extent.W, src.extent.W-srcOff.X)
	extent.H = min(extent.H, src.extent.H-srcOff.Y)
	if extent.IsZero() {
		return
	}
	for row := 0; row < extent.H; row++ {
		di := (dstOff.Y+row)*img.extent.W + dstOff.X
		si := (srcOff.Y+row)*src.extent.W + srcOff.X
		copy(img.text[di:di+extent.W], src.text[si:si+extent.W])
		copy(img.colors[di:di+extent.W], src.colors[si:si+extent.W])
	}
}

// DrawString writes s at off in the given colors, clipping at the right
// edge. A negative X clips the leading portion of the string.
func (img *Image) DrawString(off Offset, s string, color ColorPair) {
	if len(s) == 0 || off.Y < 0 || off.Y >= img.extent.H {
		return
	}
	if off.X+len(s) <= 0 || off.X >= img.extent.W {
		return
	}
	start := 0
	if off.X < 0 {
		start = -off.X
		off.X = 0
	}
	width := min(len(s)-start, img.extent.W-off.X)
	i := off.Y*img.extent.W + off.X
	copy(img.text[i:i+width], s[start:start+width])
	for j := 0; j < width; j++ {
		img.colors[i+j] = color
	}
}

// DrawLine draws a line from a to b using integer Bresenham stepping,
// indexing the pattern cyclically by steps along the line.
// Out-of-bounds plots are ignored.
func (img *Image) DrawLine(a, b Offset, pattern *Pattern) error {
	if pattern == nil || pattern.Len() == 0 {
		return trace.BadParameter("pattern must not be empty")
	}
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx := 1
	if a.X > b.X {
		sx = -1
	}
	sy := 1
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy
	step := 0
	for {
		if img.inBounds(a) {
			px := pattern.At(step)
			i := img.index(a)
			img.text[i] = px.Char
			img.colors[i] = px.Color
		}
		step++
		if a == b {
			return nil
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			a.X += sx
		}
		if e2 < dx {
			err += dx
			a.Y += sy
		}
	}
}

// DrawRect outlines r with the pattern, one line per side.
func (img *Image) DrawRect(r Rect, pattern *Pattern) error {
	if r.Extent.IsZero() {
		return trace.Wrap(ErrOutOfRange)
	}
	p0 := r.Offset
	p1 := Offset{X: p0.X + r.Extent.W - 1, Y: p0.Y}
	p2 := Offset{X: p0.X + r.Extent.W - 1, Y: p0.Y + r.Extent.H - 1}
	p3 := Offset{X: p0.X, Y: p0.Y + r.Extent.H - 1}
	for _, side := range [][2]Offset{{p0, p1}, {p1, p2}, {p2, p3}, {p3, p0}} {
		if err := img.DrawLine(side[0], side[1], pattern); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

// FillRect fills r with px, clipped to the image. It fails when the
// rectangle has zero extent on either axis or the character is zero.
func (img *Image) FillRect(r Rect, px Pixel) error {
	if r.Extent.IsZero() {
		return trace.Wrap(ErrOutOfRange)
	}
	if px.Char == 0 {
		return trace.Wrap(ErrInvalidPixel)
	}
	startX := max(r.Offset.X, 0)
	startY := max(r.Offset.Y, 0)
	endX := min(r.Offset.X+r.Extent.W, img.extent.W)
	endY := min(r.Offset.Y+r.Extent.H, img.extent.H)
	for y := startY; y < endY; y++ {
		i := y * img.extent.W
		for x := startX; x < endX; x++ {
			img.text[i+x] = px.Char
			img.colors[i+x] = px.Color
		}
	}
	return nil
}

// Clear fills the whole image with px.
func (img *Image) Clear(px Pixel) error {
	if px.Char == 0 {
		return trace.Wrap(ErrInvalidPixel)
	}
	for i := range img.text {
		img.text[i] = px.Char
		img.colors[i] = px.Color
	}
	return nil
}

// Row returns row y of the text grid. Useful for inspection and tests.
func (img *Image) Row(y int) string {
	if y < 0 || y >= img.extent.H {
		return ""
	}
	i := y * img.extent.W
	return string(img.text[i : i+img.extent.W])
}

// Text returns the whole text grid in row-major order.
func (img *Image) Text() string { return string(img.text) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
