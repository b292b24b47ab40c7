package ui

import "github.com/gravitational/trace"

// Checkbox is a focusable toggle with a text label. The Radio flag only
// changes the glyphs around the mark; mutual exclusion across radios is
// left to the application's OnCheck handler. Reverse places the box on
// the right side of the label.
type Checkbox struct {
	ctl     *Control
	theme   *Theme
	text    string
	checked bool

	// Radio draws ( ) glyphs instead of [ ].
	Radio bool
	// Reverse puts the box after the label.
	Reverse bool

	// OnCheck fires with the new state after each toggle.
	OnCheck func(checked bool) error
}

// NewCheckbox creates a checkbox under parent.
func NewCheckbox(parent *Transform, theme *Theme, text string) *Checkbox {
	cb := &Checkbox{theme: theme, text: Sanitize(text)}
	cb.ctl = newControl(KindCheckbox, parent, cb)
	cb.ctl.focusable = true
	cb.ctl.transform.LocalExtent = Extent{W: 16, H: 1}
	return cb
}

// Control returns the checkbox's control.
func (cb *Checkbox) Control() *Control { return cb.ctl }

// Checked reports the toggle state.
func (cb *Checkbox) Checked() bool { return cb.checked }

// SetChecked sets the toggle state without firing OnCheck.
func (cb *Checkbox) SetChecked(checked bool) {
	cb.checked = checked
	cb.ctl.MarkDirty()
}

// Text returns the label text.
func (cb *Checkbox) Text() string { return cb.text }

// SetText replaces the label text and marks the control dirty.
func (cb *Checkbox) SetText(text string) {
	cb.text = Sanitize(text)
	cb.ctl.MarkDirty()
}

func (cb *Checkbox) handle(ev *Event) error {
	c := cb.ctl
	switch ev.Type {
	case EventKeyDown, EventKeyHeld:
		if !c.Focused() {
			break
		}
		if ev.Key == KeyEnter || ev.Key == KeySpace {
			cb.checked = !cb.checked
			c.state |= StateDirty
			if cb.OnCheck != nil {
				if err := cb.OnCheck(cb.checked); err != nil {
					return trace.Wrap(err)
				}
			}
		}
	case EventRefresh:
		return cb.refresh()
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

func (cb *Checkbox) refresh() error {
	c := cb.ctl
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}
	boxPixel := cb.theme.statePixel(c.state)
	if err := c.image.Clear(boxPixel); err != nil {
		return trace.Wrap(err)
	}

	left, mark, right := CharCheckboxLeft, CharCheckboxUnchecked, CharCheckboxRight
	if cb.Radio {
		left, mark, right = CharRadioboxLeft, CharRadioboxUnchecked, CharRadioboxRight
	}
	if cb.checked {
		if cb.Radio {
			mark = CharRadioboxChecked
		} else {
			mark = CharCheckboxChecked
		}
	}

	const boxWidth = 3
	boxX, textX := 0, boxWidth
	if cb.Reverse {
		boxX, textX = extent.W-boxWidth, 0
	}

	px := boxPixel
	for i, id := range []CharacterID{left, mark, right} {
		px.Char = cb.theme.Char(id)
		if err := c.image.Set(Offset{X: boxX + i}, px); err != nil {
			return trace.Wrap(err)
		}
	}

	labelPixel := cb.theme.Pixel(PixelNormal)
	if c.Focused() {
		labelPixel = cb.theme.Pixel(PixelFocused)
	}
	label := safeCopy(cb.text, extent.W-boxWidth)
	c.image.DrawString(Offset{X: textX}, label, labelPixel.Color)
	if filler := extent.W - boxWidth - len(label); filler > 0 {
		px = labelPixel
		px.Char = ' '
		err := c.image.FillRect(Rect{
			Offset: Offset{X: textX + len(label)},
			Extent: Extent{W: filler, H: 1},
		}, px)
		if err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}
