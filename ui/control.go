package ui

import "github.com/gravitational/trace"

// Kind tags the widget variant a control hosts.
type Kind int

const (
	KindNone Kind = iota
	KindLabel
	KindButton
	KindTextInput
	KindList
	KindDropdown
	KindCheckbox
	KindNumberInput
	KindProgressBar
)

func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	case KindTextInput:
		return "text-input"
	case KindList:
		return "list"
	case KindDropdown:
		return "dropdown"
	case KindCheckbox:
		return "checkbox"
	case KindNumberInput:
		return "number-input"
	case KindProgressBar:
		return "progress-bar"
	}
	return "none"
}

// StateFlags carries a control's transient state.
type StateFlags uint8

const (
	// StateDirty marks the control for repaint on the next refresh.
	StateDirty StateFlags = 1 << iota
	// StateFocused marks the control receiving navigation input.
	StateFocused
	// StateActive marks the control consuming key events exclusively.
	StateActive
)

// widget is the behavior a control variant plugs into its control.
// Dispatch is variant-directed, so a handler can never observe data of
// the wrong kind.
type widget interface {
	handle(ev *Event) error
}

// LinkMode selects how Link connects two controls.
type LinkMode int

const (
	// LinkNone removes the link in the given direction (and the
	// reciprocal link if it points back).
	LinkNone LinkMode = iota
	// LinkSingle links one way.
	LinkSingle
	// LinkDouble links both ways.
	LinkDouble
)

// Control is one widget instance: a transform, a private image, state
// flags, cardinal navigation neighbors, and its widget data.
type Control struct {
	kind      Kind
	focusable bool
	state     StateFlags
	transform *Transform
	image     *Image
	adjacent  [4]*Control
	data      widget
}

// newControl wires a control around widget data. Every widget
// constructor funnels through here.
func newControl(kind Kind, parent *Transform, data widget) *Control {
	c := &Control{
		kind:      kind,
		state:     StateDirty,
		transform: NewTransform(Offset{}, Pivot{}, Extent{}, AlignTopLeft),
		image:     NewImage(Extent{}),
		data:      data,
	}
	if parent != nil {
		c.transform.SetParent(parent)
	}
	return c
}

// Kind returns the widget variant tag.
func (c *Control) Kind() Kind { return c.kind }

// Focusable reports whether the control can take focus.
func (c *Control) Focusable() bool { return c.focusable }

// Transform returns the control's layout node.
func (c *Control) Transform() *Transform { return c.transform }

// State returns the control's state flags.
func (c *Control) State() StateFlags { return c.state }

// Focused reports whether the control holds focus.
func (c *Control) Focused() bool { return c.state&StateFocused != 0 }

// Active reports whether the control is consuming key events.
func (c *Control) Active() bool { return c.state&StateActive != 0 }

// MarkDirty schedules a repaint on the next refresh.
func (c *Control) MarkDirty() { c.state |= StateDirty }

// Adjacent returns the navigation neighbor in the given direction.
func (c *Control) Adjacent(dir Direction) *Control {
	if dir == DirNone {
		return nil
	}
	return c.adjacent[dir-1]
}

// Link connects c to other for focus navigation in the given
// direction. LinkDouble also installs the reciprocal link; LinkNone
// removes the link and a reciprocal link pointing back at c.
func (c *Control) Link(dir Direction, mode LinkMode, other *Control) error {
	if dir == DirNone {
		return trace.BadParameter("link direction is required")
	}
	if mode != LinkNone && other == nil {
		return trace.BadParameter("link target is required")
	}
	if other != nil && !other.focusable {
		return trace.BadParameter("link target must be focusable")
	}
	idx := int(dir) - 1
	oppIdx := int(dir.Opposite()) - 1
	switch mode {
	case LinkNone:
		if old := c.adjacent[idx]; old != nil && old.adjacent[oppIdx] == c {
			old.adjacent[oppIdx] = nil
		}
		c.adjacent[idx] = nil
	case LinkSingle:
		c.adjacent[idx] = other
	case LinkDouble:
		c.adjacent[idx] = other
		other.adjacent[oppIdx] = c
	default:
		return trace.NotImplemented("unknown link mode %d", mode)
	}
	return nil
}

// handleEvent routes an event into the widget data.
func (c *Control) handleEvent(ev *Event) error {
	if c.data == nil {
		return nil
	}
	return c.data.handle(ev)
}

// drawInto blits the control's image into target, restricted to the
// intersection of the control's global rectangle and the dirty
// rectangle. Disjoint rectangles are a no-op.
func (c *Control) drawInto(target *Image, dirtyRect Rect) {
	global := c.transform.GlobalRect()
	section := global.Intersect(dirtyRect)
	if section.Extent.IsZero() {
		return
	}
	c.drawImage(target, section, global)
}

func (c *Control) drawImage(target *Image, section, global Rect) {
	target.Blit(section.Offset, c.image, Offset{
		X: section.Offset.X - global.Offset.X,
		Y: section.Offset.Y - global.Offset.Y,
	}, section.Extent)
}

// refreshText repaints the control's image as wrapped, aligned text in
// the given pixel. Shared by labels and buttons.
func (c *Control) refreshText(text string, alignment Alignment, design Pixel) error {
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}
	if err := c.image.Clear(design); err != nil {
		return trace.Wrap(err)
	}

	lines := WrapText(text, extent.W)
	var top int
	switch {
	case alignment&AlignTop != 0:
		top = 0
	case alignment&AlignMiddle != 0:
		top = (extent.H - len(lines)) / 2
	default:
		top = extent.H - len(lines)
	}
	for i, line := range lines {
		line = safeCopy(trimLineBreak(line), extent.W)
		var x int
		switch {
		case alignment&AlignLeft != 0:
			x = 0
		case alignment&AlignRight != 0:
			x = extent.W - len(line)
		default:
			x = (extent.W - len(line)) / 2
		}
		c.image.DrawString(Offset{X: x, Y: top + i}, line, design.Color)
	}
	return nil
}

// trimLineBreak drops the newline a wrapped line may carry.
func trimLineBreak(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		return line[:n-1]
	}
	return line
}

// clampScroll keeps offset visible within a window of extent cells
// starting at scroll, moving the window the minimal distance.
func clampScroll(scroll, offset, extent int) int {
	if extent <= 0 {
		return scroll
	}
	if scroll+extent <= offset {
		return offset + 1 - extent
	}
	if scroll > offset {
		return offset
	}
	return scroll
}

// ScrollbarType selects when a list draws its scrollbar.
type ScrollbarType int

const (
	// ScrollbarNone never draws.
	ScrollbarNone ScrollbarType = iota
	// ScrollbarStatic always draws.
	ScrollbarStatic
	// ScrollbarDynamic draws only when the content overflows.
	ScrollbarDynamic
)

// Axis orients a scrollbar.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// drawScrollbar renders a one-cell-wide (or tall) scrollbar: endpoint
// glyphs, the area fill, and a thumb sized against maxScroll. A zero
// maxScroll draws no thumb.
func drawScrollbar(target *Image, offset Offset, extent Extent, axis Axis, theme *Theme, scroll, maxScroll int, state StateFlags) error {
	var areaPixel, barPixel Pixel
	switch {
	case state&StateActive != 0:
		areaPixel = theme.Pixel(PixelActiveScrollArea)
		barPixel = theme.Pixel(PixelActiveScrollBar)
	case state&StateFocused != 0:
		areaPixel = theme.Pixel(PixelFocusedScrollArea)
		barPixel = theme.Pixel(PixelFocusedScrollBar)
	default:
		areaPixel = theme.Pixel(PixelNormalScrollArea)
		barPixel = theme.Pixel(PixelNormalScrollBar)
	}

	vertical := axis == AxisVertical
	px := areaPixel
	if vertical {
		px.Char = theme.Char(CharScrollVArea)
	} else {
		px.Char = theme.Char(CharScrollHArea)
	}
	if err := target.FillRect(Rect{Offset: offset, Extent: extent}, px); err != nil {
		return trace.Wrap(err)
	}

	// endpoint glyphs
	head, tail := offset, offset
	if vertical {
		px.Char = theme.Char(CharUp)
		tail.Y += extent.H - 1
	} else {
		px.Char = theme.Char(CharLeft)
		tail.X += extent.W - 1
	}
	if err := target.Set(head, px); err != nil {
		return trace.Wrap(err)
	}
	if vertical {
		px.Char = theme.Char(CharDown)
	} else {
		px.Char = theme.Char(CharRight)
	}
	if err := target.Set(tail, px); err != nil {
		return trace.Wrap(err)
	}

	if maxScroll <= 0 {
		return nil
	}

	span := extent.H
	if !vertical {
		span = extent.W
	}
	var barSize, barOffset int
	if maxScroll < span {
		barSize = span - maxScroll
		barOffset = scroll
	} else {
		barSize = 1
		barOffset = scroll * (span - 1) / maxScroll
	}

	px = barPixel
	barRect := Rect{Offset: offset, Extent: extent}
	if vertical {
		px.Char = theme.Char(CharScrollVBar)
		barRect.Offset.Y = offset.Y + barOffset
		barRect.Extent.H = barSize
	} else {
		px.Char = theme.Char(CharScrollHBar)
		barRect.Offset.X = offset.X + barOffset
		barRect.Extent.W = barSize
	}
	return trace.Wrap(target.FillRect(barRect, px))
}
