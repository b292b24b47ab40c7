package ui

import "github.com/gravitational/trace"

// Dropdown is a focusable single-select that collapses to one row.
// Activating it grows the transform to hold the option list, dropping
// downward or upward depending on free window space; Enter commits the
// hovered option and Escape reverts, either way restoring the original
// geometry.
type Dropdown struct {
	ctl     *Control
	theme   *Theme
	options []string

	selectedIndex int
	hoverIndex    int
	scroll        int
	origin        Offset
	drop          int

	// list renders the expanded area so dropdowns and lists stay
	// visually consistent.
	list *List

	// OnSubmit fires with the committed index.
	OnSubmit func(index int) error
}

// NewDropdown creates a dropdown under parent with the given options.
func NewDropdown(parent *Transform, theme *Theme, options []string) *Dropdown {
	d := &Dropdown{theme: theme}
	d.ctl = newControl(KindDropdown, parent, d)
	d.ctl.focusable = true
	d.ctl.transform.LocalExtent = Extent{W: 20, H: 1}
	d.list = &List{theme: theme, Scrollbar: ScrollbarDynamic}
	d.SetOptions(options)
	return d
}

// Control returns the dropdown's control.
func (d *Dropdown) Control() *Control { return d.ctl }

// Options returns the option strings.
func (d *Dropdown) Options() []string { return d.options }

// SetOptions replaces the options and resets the selection.
func (d *Dropdown) SetOptions(options []string) {
	d.options = make([]string, len(options))
	for i, opt := range options {
		d.options[i] = Sanitize(opt)
	}
	d.selectedIndex = 0
	d.hoverIndex = 0
	d.scroll = 0
	d.list.options = d.options
	d.ctl.MarkDirty()
}

// SelectedIndex returns the committed selection.
func (d *Dropdown) SelectedIndex() int { return d.selectedIndex }

// SetSelected commits index without firing OnSubmit.
func (d *Dropdown) SetSelected(index int) error {
	if index < 0 || index >= len(d.options) {
		return trace.Wrap(ErrOutOfRange)
	}
	d.selectedIndex = index
	d.hoverIndex = index
	d.ctl.MarkDirty()
	return nil
}

// Drop returns the signed drop height chosen at activation: positive
// rows open downward, negative upward.
func (d *Dropdown) Drop() int { return d.drop }

func (d *Dropdown) handle(ev *Event) error {
	c := d.ctl
	switch ev.Type {
	case EventKeyDown, EventKeyHeld:
		if !c.Focused() {
			break
		}
		if !c.Active() {
			if ev.Key == KeyEnter || ev.Key == KeySpace {
				d.expand(ev.App.WindowExtent())
			}
			break
		}
		return d.handleActiveKey(ev.Key)
	case EventRefresh:
		return d.refresh()
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

// expand activates the dropdown: it saves the collapsed geometry,
// picks the drop direction against the window, and grows the
// transform.
func (d *Dropdown) expand(window Extent) {
	c := d.ctl
	c.state |= StateActive | StateDirty
	d.origin = c.transform.LocalOffset

	rows := len(d.options)
	below := window.H - c.transform.GlobalRect().Offset.Y
	above := c.transform.GlobalRect().Offset.Y + 1
	switch {
	case rows < below:
		d.drop = rows
	case rows < above:
		d.drop = -rows
	case above > below:
		d.drop = -(above - 1)
	default:
		d.drop = below - 1
	}

	if d.drop < 0 {
		c.transform.LocalOffset.Y += d.drop
	}
	c.transform.LocalExtent.H = abs(d.drop) + 1
	c.transform.MarkDirty()
}

// collapse restores the saved geometry and deactivates.
func (d *Dropdown) collapse() {
	c := d.ctl
	c.transform.LocalOffset = d.origin
	c.transform.LocalExtent.H = 1
	c.transform.MarkDirty()
	c.state &^= StateActive
	c.state |= StateDirty
}

func (d *Dropdown) handleActiveKey(key Key) error {
	c := d.ctl
	if len(d.options) == 0 {
		if key == KeyEnter || key == KeySpace || key == KeyEscape {
			d.collapse()
		}
		return nil
	}
	moved := false
	last := len(d.options) - 1
	pageSize := c.transform.LocalExtent.H

	switch key {
	case KeyUpArrow, KeyW:
		if d.hoverIndex > 0 {
			d.hoverIndex--
			c.state |= StateDirty
			moved = true
		}
	case KeyDownArrow, KeyS:
		if d.hoverIndex < last {
			d.hoverIndex++
			c.state |= StateDirty
			moved = true
		}
	case KeyHome:
		if d.hoverIndex != 0 {
			d.hoverIndex = 0
			c.state |= StateDirty
			moved = true
		}
	case KeyEnd:
		if d.hoverIndex != last {
			d.hoverIndex = last
			c.state |= StateDirty
			moved = true
		}
	case KeyPageUp:
		d.hoverIndex = max(d.hoverIndex-pageSize, 0)
		c.state |= StateDirty
		moved = true
	case KeyPageDown:
		d.hoverIndex = min(d.hoverIndex+pageSize, last)
		c.state |= StateDirty
		moved = true
	case KeyEnter, KeySpace:
		d.collapse()
		d.selectedIndex = d.hoverIndex
		if d.OnSubmit != nil {
			return trace.Wrap(d.OnSubmit(d.selectedIndex))
		}
	case KeyEscape:
		d.collapse()
		d.hoverIndex = d.selectedIndex
	}

	if moved {
		d.scroll = clampScroll(d.scroll, d.hoverIndex, c.transform.LocalExtent.H-1)
	}
	return nil
}

func (d *Dropdown) refresh() error {
	c := d.ctl
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}
	active := c.Active()
	px := d.theme.statePixel(c.state)

	// the collapsed row sits at the bottom when dropping upward
	mainRow := 0
	if d.drop < 0 && active {
		mainRow = extent.H - 1
	}

	optionsWidth := extent.W - 2
	fillerOffset, fillerWidth := 0, optionsWidth
	if len(d.options) > 0 {
		option := safeCopy(d.options[d.selectedIndex], optionsWidth)
		c.image.DrawString(Offset{Y: mainRow}, option, px.Color)
		fillerOffset = len(option)
		fillerWidth = optionsWidth - len(option)
	}
	if fillerWidth > 0 {
		fill := px
		fill.Char = d.theme.Char(CharEmpty)
		err := c.image.FillRect(Rect{
			Offset: Offset{X: fillerOffset, Y: mainRow},
			Extent: Extent{W: fillerWidth, H: 1},
		}, fill)
		if err != nil {
			return trace.Wrap(err)
		}
	}

	// separator and open/closed marker in the right two columns
	marker := px
	marker.Char = '|'
	if err := c.image.Set(Offset{X: optionsWidth, Y: mainRow}, marker); err != nil {
		return trace.Wrap(err)
	}
	marker.Char = d.theme.Char(CharDown)
	if active {
		marker.Char = d.theme.Char(CharUp)
	}
	if err := c.image.Set(Offset{X: optionsWidth + 1, Y: mainRow}, marker); err != nil {
		return trace.Wrap(err)
	}

	if active {
		d.list.selectedIndex = d.selectedIndex
		listOffset := Offset{Y: 1}
		if d.drop < 0 {
			listOffset.Y = 0
		}
		listExtent := Extent{W: extent.W, H: extent.H - 1}
		err := d.list.draw(c.image, listOffset, listExtent, c.state, d.hoverIndex, d.scroll)
		if err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
