package ui

import "github.com/gravitational/trace"

// List is a focusable, scrollable list of options. While active, the
// arrow keys (or W/S) move the hover row, Home/End and PgUp/PgDn jump,
// the submit key selects (or toggles, in multiselect) the hovered
// option, and Escape deactivates.
type List struct {
	ctl     *Control
	theme   *Theme
	options []string

	selectedIndex   int
	selectedIndices []bool // multiselect only
	hoverIndex      int
	scroll          int

	// Multiselect toggles independent per-option selection.
	Multiselect bool
	// Scrollbar selects when the right-hand scrollbar draws.
	Scrollbar ScrollbarType

	// OnChange fires when a selection is made and when the list
	// deactivates.
	OnChange func(l *List) error
}

// NewList creates a list under parent with the given options.
func NewList(parent *Transform, theme *Theme, options []string) *List {
	l := &List{theme: theme, Scrollbar: ScrollbarDynamic}
	l.ctl = newControl(KindList, parent, l)
	l.ctl.focusable = true
	l.ctl.transform.LocalExtent = Extent{W: 20, H: 5}
	l.SetOptions(options)
	return l
}

// Control returns the list's control.
func (l *List) Control() *Control { return l.ctl }

// Options returns the option strings.
func (l *List) Options() []string { return l.options }

// SetOptions replaces the options, resetting hover, selection and
// scroll.
func (l *List) SetOptions(options []string) {
	l.options = make([]string, len(options))
	for i, opt := range options {
		l.options[i] = Sanitize(opt)
	}
	l.selectedIndex = 0
	l.selectedIndices = make([]bool, len(options))
	l.hoverIndex = 0
	l.scroll = 0
	l.ctl.MarkDirty()
}

// SelectedIndex returns the single-select selection.
func (l *List) SelectedIndex() int { return l.selectedIndex }

// Selected reports whether option i is selected, honoring the
// multiselect flag.
func (l *List) Selected(i int) bool {
	if i < 0 || i >= len(l.options) {
		return false
	}
	if l.Multiselect {
		return l.selectedIndices[i]
	}
	return l.selectedIndex == i
}

// SelectedIndices returns the multiselect bitmap.
func (l *List) SelectedIndices() []bool { return l.selectedIndices }

// HoverIndex returns the hovered row.
func (l *List) HoverIndex() int { return l.hoverIndex }

// Scroll returns the scroll offset.
func (l *List) Scroll() int { return l.scroll }

func (l *List) fireChange() error {
	if l.OnChange != nil {
		return trace.Wrap(l.OnChange(l))
	}
	return nil
}

func (l *List) handle(ev *Event) error {
	c := l.ctl
	switch ev.Type {
	case EventKeyDown, EventKeyHeld:
		if !c.Focused() {
			break
		}
		if !c.Active() {
			if ev.Key == KeyEnter || ev.Key == KeySpace {
				c.state |= StateActive | StateDirty
			}
			break
		}
		extent := c.transform.GlobalRect().Extent
		if err := l.handleActiveKey(ev.Key, extent.H); err != nil {
			return trace.Wrap(err)
		}
		l.scroll = clampScroll(l.scroll, l.hoverIndex, extent.H)
	case EventRefresh:
		extent := c.transform.GlobalRect().Extent
		c.image.Resize(extent)
		if extent.IsZero() {
			return nil
		}
		return l.draw(c.image, Offset{}, extent, c.state, l.hoverIndex, l.scroll)
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

func (l *List) handleActiveKey(key Key, pageSize int) error {
	c := l.ctl
	if len(l.options) == 0 {
		if key == KeyEscape {
			c.state &^= StateActive
			c.state |= StateDirty
			return l.fireChange()
		}
		return nil
	}
	last := len(l.options) - 1
	switch key {
	case KeyDownArrow, KeyS:
		if l.hoverIndex < last {
			l.hoverIndex++
			c.state |= StateDirty
		}
	case KeyUpArrow, KeyW:
		if l.hoverIndex > 0 {
			l.hoverIndex--
			c.state |= StateDirty
		}
	case KeyHome:
		if l.hoverIndex != 0 {
			l.hoverIndex = 0
			c.state |= StateDirty
		}
	case KeyEnd:
		if l.hoverIndex != last {
			l.hoverIndex = last
			c.state |= StateDirty
		}
	case KeyPageUp:
		l.hoverIndex = max(l.hoverIndex-pageSize, 0)
		c.state |= StateDirty
	case KeyPageDown:
		l.hoverIndex = min(l.hoverIndex+pageSize, last)
		c.state |= StateDirty
	case KeyEnter, KeySpace:
		if l.Multiselect {
			l.selectedIndices[l.hoverIndex] = !l.selectedIndices[l.hoverIndex]
		} else {
			l.selectedIndex = l.hoverIndex
		}
		c.state |= StateDirty
		return l.fireChange()
	case KeyEscape:
		c.state &^= StateActive
		c.state |= StateDirty
		return l.fireChange()
	}
	return nil
}

// draw renders the option rows and scrollbar into target at offset.
// The dropdown reuses it for its expanded area so the two widgets stay
// visually consistent.
func (l *List) draw(target *Image, offset Offset, extent Extent, state StateFlags, hover, scroll int) error {
	active := state&StateActive != 0
	focused := state&StateFocused != 0

	var unselected, selected Pixel
	switch {
	case active:
		unselected = l.theme.Pixel(PixelActive)
		selected = l.theme.Pixel(PixelActiveSelected)
	case focused:
		unselected = l.theme.Pixel(PixelFocused)
		selected = l.theme.Pixel(PixelFocusedSelected)
	default:
		unselected = l.theme.Pixel(PixelNormal)
		selected = l.theme.Pixel(PixelNormalSelected)
	}

	scrollbar := 0
	switch l.Scrollbar {
	case ScrollbarStatic:
		scrollbar = 1
	case ScrollbarDynamic:
		if extent.H < len(l.options) {
			scrollbar = 1
		}
	}
	optionsWidth := extent.W - scrollbar

	for row := 0; row < extent.H; row++ {
		index := scroll + row
		fillerOffset, fillerLength := 0, optionsWidth
		px := unselected

		if index < len(l.options) {
			option := safeCopy(l.options[index], optionsWidth)
			fillerOffset = len(option)
			fillerLength = optionsWidth - len(option)
			switch {
			case active && hover == index && l.Selected(index):
				px = l.theme.Pixel(PixelHoveredSelected)
			case active && hover == index:
				px = l.theme.Pixel(PixelHovered)
			case l.Selected(index):
				px = selected
			}
			target.DrawString(Offset{X: offset.X, Y: offset.Y + row}, option, px.Color)
		}

		if fillerLength > 0 {
			fill := px
			fill.Char = l.theme.Char(CharEmpty)
			err := target.FillRect(Rect{
				Offset: Offset{X: offset.X + fillerOffset, Y: offset.Y + row},
				Extent: Extent{W: fillerLength, H: 1},
			}, fill)
			if err != nil {
				return trace.Wrap(err)
			}
		}
	}

	if scrollbar > 0 {
		err := drawScrollbar(
			target,
			Offset{X: offset.X + optionsWidth, Y: offset.Y},
			Extent{W: 1, H: extent.H},
			AxisVertical,
			l.theme,
			scroll,
			len(l.options)-extent.H,
			state,
		)
		if err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
