package ui

// Label displays wrapped, aligned, read-only text. Labels are not
// focusable.
type Label struct {
	ctl       *Control
	theme     *Theme
	text      string
	alignment Alignment
}

// NewLabel creates a label under parent. The control's extent starts
// zero; set it through the transform.
func NewLabel(parent *Transform, theme *Theme, text string) *Label {
	l := &Label{
		theme:     theme,
		text:      Sanitize(text),
		alignment: AlignTopLeft,
	}
	l.ctl = newControl(KindLabel, parent, l)
	return l
}

// Control returns the label's control.
func (l *Label) Control() *Control { return l.ctl }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the label text and marks the control dirty.
func (l *Label) SetText(text string) {
	l.text = Sanitize(text)
	l.ctl.MarkDirty()
}

// Alignment returns the text alignment.
func (l *Label) Alignment() Alignment { return l.alignment }

// SetAlignment changes the text alignment and marks the control dirty.
func (l *Label) SetAlignment(alignment Alignment) {
	l.alignment = alignment
	l.ctl.MarkDirty()
}

func (l *Label) handle(ev *Event) error {
	switch ev.Type {
	case EventRefresh:
		return l.ctl.refreshText(l.text, l.alignment, l.theme.Pixel(PixelNormalText))
	case EventDraw:
		l.ctl.drawInto(ev.Target, ev.DirtyRect)
	}
	return nil
}
