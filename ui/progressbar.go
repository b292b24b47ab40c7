package ui

import "github.com/gravitational/trace"

// ProgressBar fills a fraction of its rectangle along one of the four
// directions. It is not focusable.
type ProgressBar struct {
	ctl       *Control
	theme     *Theme
	value     float64
	direction Direction
}

// NewProgressBar creates a progress bar under parent, filling east.
func NewProgressBar(parent *Transform, theme *Theme) *ProgressBar {
	p := &ProgressBar{theme: theme, direction: DirEast}
	p.ctl = newControl(KindProgressBar, parent, p)
	p.ctl.transform.LocalExtent = Extent{W: 20, H: 1}
	return p
}

// Control returns the progress bar's control.
func (p *ProgressBar) Control() *Control { return p.ctl }

// Value returns the fill fraction.
func (p *ProgressBar) Value() float64 { return p.value }

// SetValue clamps v to [0, 1] and marks the control dirty.
func (p *ProgressBar) SetValue(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.value = v
	p.ctl.MarkDirty()
}

// Direction returns the fill direction.
func (p *ProgressBar) Direction() Direction { return p.direction }

// SetDirection changes the fill direction and marks the control dirty.
func (p *ProgressBar) SetDirection(dir Direction) {
	p.direction = dir
	p.ctl.MarkDirty()
}

func (p *ProgressBar) handle(ev *Event) error {
	c := p.ctl
	switch ev.Type {
	case EventRefresh:
		return p.refresh()
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

func (p *ProgressBar) refresh() error {
	c := p.ctl
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}

	var bar, bg Rect
	switch p.direction {
	case DirEast:
		size := int(float64(extent.W) * p.value)
		bar = Rect{Extent: Extent{W: size, H: extent.H}}
		bg = Rect{Offset: Offset{X: size}, Extent: Extent{W: extent.W - size, H: extent.H}}
	case DirWest:
		size := int(float64(extent.W) * p.value)
		bar = Rect{Offset: Offset{X: extent.W - size}, Extent: Extent{W: size, H: extent.H}}
		bg = Rect{Extent: Extent{W: extent.W - size, H: extent.H}}
	case DirNorth:
		size := int(float64(extent.H) * p.value)
		bar = Rect{Offset: Offset{Y: extent.H - size}, Extent: Extent{W: extent.W, H: size}}
		bg = Rect{Extent: Extent{W: extent.W, H: extent.H - size}}
	case DirSouth:
		size := int(float64(extent.H) * p.value)
		bar = Rect{Extent: Extent{W: extent.W, H: size}}
		bg = Rect{Offset: Offset{Y: size}, Extent: Extent{W: extent.W, H: extent.H - size}}
	default:
		return trace.NotImplemented("progress direction %v", p.direction)
	}

	if !bg.Extent.IsZero() {
		if err := c.image.FillRect(bg, p.theme.Pixel(PixelBackground)); err != nil {
			return trace.Wrap(err)
		}
	}
	if !bar.Extent.IsZero() {
		if err := c.image.FillRect(bar, p.theme.Pixel(PixelProgressBar)); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
