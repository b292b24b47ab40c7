package ui

import "github.com/gravitational/trace"

// Button is a focusable control that fires OnSubmit when the submit
// key is released. It holds the active state between key down and key
// up so the press is visible.
type Button struct {
	ctl       *Control
	theme     *Theme
	text      string
	alignment Alignment

	// OnSubmit fires once per completed press.
	OnSubmit func() error
}

// NewButton creates a button under parent.
func NewButton(parent *Transform, theme *Theme, text string) *Button {
	b := &Button{
		theme:     theme,
		text:      Sanitize(text),
		alignment: AlignCenter | AlignMiddle,
	}
	b.ctl = newControl(KindButton, parent, b)
	b.ctl.focusable = true
	b.ctl.transform.LocalExtent = Extent{W: 20, H: 3}
	return b
}

// Control returns the button's control.
func (b *Button) Control() *Control { return b.ctl }

// Text returns the button label.
func (b *Button) Text() string { return b.text }

// SetText replaces the button label and marks the control dirty.
func (b *Button) SetText(text string) {
	b.text = Sanitize(text)
	b.ctl.MarkDirty()
}

// SetAlignment changes the label alignment and marks the control
// dirty.
func (b *Button) SetAlignment(alignment Alignment) {
	b.alignment = alignment
	b.ctl.MarkDirty()
}

func (b *Button) handle(ev *Event) error {
	c := b.ctl
	switch ev.Type {
	case EventKeyDown:
		if !c.Focused() {
			break
		}
		if ev.Key == KeyEnter || ev.Key == KeySpace {
			c.state |= StateActive | StateDirty
		}
	case EventKeyUp:
		if !c.Active() || !c.Focused() {
			break
		}
		if ev.Key == KeyEnter || ev.Key == KeySpace {
			c.state &^= StateActive
			c.state |= StateDirty
			if b.OnSubmit != nil {
				if err := b.OnSubmit(); err != nil {
					return trace.Wrap(err)
				}
			}
		}
	case EventRefresh:
		return c.refreshText(b.text, b.alignment, b.theme.statePixel(c.state))
	case EventDraw:
		c.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}
