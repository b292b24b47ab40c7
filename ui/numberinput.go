package ui

import (
	"strconv"

	"github.com/gravitational/trace"
)

// NumberInput is a focusable numeric stepper. While active, arrows and
// +/- step the value (ten steps with Ctrl), Home/End jump to the
// bounds, and Enter, Space or Escape commit and deactivate.
type NumberInput struct {
	ctl       *Control
	theme     *Theme
	value     float64
	min, max  float64
	increment float64
	decimals  int

	// OnChange fires after every step.
	OnChange func(value float64) error
	// OnSubmit fires when the stepper deactivates.
	OnSubmit func(value float64) error
}

// NewNumberInput creates a stepper under parent spanning [min, max].
func NewNumberInput(parent *Transform, theme *Theme, min, max, increment float64) *NumberInput {
	n := &NumberInput{theme: theme, min: min, max: max, increment: increment}
	n.ctl = newControl(KindNumberInput, parent, n)
	n.ctl.focusable = true
	n.ctl.transform.LocalExtent = Extent{W: 12, H: 1}
	n.value = n.clamp(n.value)
	return n
}

// Control returns the stepper's control.
func (n *NumberInput) Control() *Control { return n.ctl }

// Value returns the current value.
func (n *NumberInput) Value() float64 { return n.value }

// SetValue clamps v into range without firing OnChange.
func (n *NumberInput) SetValue(v float64) {
	n.value = n.clamp(v)
	n.ctl.MarkDirty()
}

// SetDecimals sets how many decimal places are rendered.
func (n *NumberInput) SetDecimals(places int) {
	n.decimals = places
	n.ctl.MarkDirty()
}

func (n *NumberInput) clamp(v float64) float64 {
	if v < n.min {
		return n.min
	}
	if v > n.max {
		return n.max
	}
	return v
}

func (n *NumberInput) step(delta float64) error {
	n.value = n.clamp(n.value + delta)
	n.ctl.state |= StateDirty
	if n.OnChange != nil {
		return trace.Wrap(n.OnChange(n.value))
	}
	return nil
}

func (n *NumberInput) handle(ev *Event) error {
	c := n.ctl
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
		inc := n.increment
		if ev.Modifiers&ModControl != 0 {
			inc *= 10
		}
		switch ev.Key {
		case KeyUpArrow, KeyLeftArrow, KeyW, KeyA, KeyEquals, KeyAdd:
			return n.step(inc)
		case KeyDownArrow, KeyRightArrow, KeyS, KeyD, KeyMinus, KeySubtract:
			return n.step(-inc)
		case KeyHome:
			return n.step(n.min - n.value)
		case KeyEnd:
			return n.step(n.max - n.value)
		case KeyEnter, KeySpace, KeyEscape:
			c.state &^= StateActive
			c.state |= StateDirty
			if n.OnSubmit != nil {
				return trace.Wrap(n.OnSubmit(n.value))
			}
		}
	case EventRefresh:
		return n.refresh()
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}

func (n *NumberInput) refresh() error {
	c := n.ctl
	extent := c.transform.GlobalRect().Extent
	c.image.Resize(extent)
	if extent.IsZero() {
		return nil
	}
	px := n.theme.statePixel(c.state)
	if err := c.image.Clear(px); err != nil {
		return trace.Wrap(err)
	}

	// stepper arrows, hidden at their bound
	arrow := px
	arrow.Char = ' '
	if n.value > n.min {
		arrow.Char = n.theme.Char(CharDown)
	}
	if err := c.image.Set(Offset{}, arrow); err != nil {
		return trace.Wrap(err)
	}
	arrow.Char = ' '
	if n.value < n.max {
		arrow.Char = n.theme.Char(CharUp)
	}
	if err := c.image.Set(Offset{X: extent.W - 1}, arrow); err != nil {
		return trace.Wrap(err)
	}

	sep := px
	sep.Char = '|'
	if err := c.image.Set(Offset{X: 1}, sep); err != nil {
		return trace.Wrap(err)
	}
	if err := c.image.Set(Offset{X: extent.W - 2}, sep); err != nil {
		return trace.Wrap(err)
	}

	textWidth := extent.W - 4
	if textWidth <= 0 {
		return nil
	}
	value := strconv.FormatFloat(n.value, 'f', n.decimals, 64)
	if len(value) > textWidth {
		value = ""
		for i := 0; i < textWidth; i++ {
			value += "#"
		}
	}
	c.image.DrawString(Offset{X: extent.W - 2 - len(value)}, value, px.Color)
	return nil
}
