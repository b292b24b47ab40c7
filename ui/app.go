package ui

import (
	"io"
	"log/slog"

	"github.com/gravitational/trace"
)

// Application owns the control list, focus, the keyboard sampler and
// the surface, and drives them through a single-threaded tick loop.
// Each tick: detect resize, refresh dirty transforms and controls,
// compose the dirty region, present if anything changed, then sample
// input and dispatch key events synchronously. A handler's effects are
// therefore visible in the next tick, never mid-compose.
//
// Controls must be added parent before child; refresh walks the
// registration order.
type Application struct {
	console   Console
	input     InputSource
	clipboard Clipboard
	clock     Clock
	log       *slog.Logger

	controls []*Control
	focused  *Control
	surface  *Surface
	keys     inputState
	keyTick  int64
	running  bool

	// OnEvent, when set, sees every event before the controls do.
	OnEvent func(ev *Event) error
}

// AppOption configures an Application.
type AppOption func(*Application)

// WithClipboard installs a clipboard bridge.
func WithClipboard(clipboard Clipboard) AppOption {
	return func(a *Application) { a.clipboard = clipboard }
}

// WithLogger installs a logger for loop diagnostics.
func WithLogger(log *slog.Logger) AppOption {
	return func(a *Application) { a.log = log }
}

// NewApplication builds an application over the given platform
// capabilities. The surface is sized from the console's current
// extent.
func NewApplication(console Console, input InputSource, clock Clock, opts ...AppOption) (*Application, error) {
	if console == nil || input == nil || clock == nil {
		return nil, trace.BadParameter("console, input and clock are required")
	}
	extent := console.Extent()
	if extent.IsZero() {
		// size query failed; start minimal and let resize detection
		// catch up
		extent = Extent{W: 1, H: 1}
	}
	surface, err := NewSurface(extent)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	a := &Application{
		console: console,
		input:   input,
		clock:   clock,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		surface: surface,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Surface returns the application's surface.
func (a *Application) Surface() *Surface { return a.surface }

// Clipboard returns the clipboard bridge, or nil when none is
// installed.
func (a *Application) Clipboard() Clipboard { return a.clipboard }

// WindowExtent returns the surface extent, which tracks the window.
func (a *Application) WindowExtent() Extent { return a.surface.Image().Extent() }

// Focused returns the focused control, if any.
func (a *Application) Focused() *Control { return a.focused }

// Beep sounds the terminal bell.
func (a *Application) Beep() { a.console.Beep() }

// Add registers a control. The application keeps a non-owning
// reference; ownership stays with the caller. The first focusable
// control added receives focus.
func (a *Application) Add(c *Control) error {
	if c == nil {
		return trace.BadParameter("control is required")
	}
	a.controls = append(a.controls, c)
	if a.focused == nil && c.focusable {
		a.SetFocus(c)
	}
	return nil
}

// SetFocus transfers focus to c, which may be nil. The old control
// loses focus and active state; both ends repaint.
func (a *Application) SetFocus(c *Control) {
	if a.focused != nil {
		a.focused.state &^= StateFocused | StateActive
		a.focused.state |= StateDirty
	}
	a.focused = c
	if c != nil {
		c.state |= StateFocused | StateDirty
	}
	a.log.Debug("focus transferred", "kind", kindOf(c))
}

func kindOf(c *Control) string {
	if c == nil {
		return "none"
	}
	return c.kind.String()
}

// dispatchEvent routes an event: focus navigation first, then the
// application hook, then every control's handler in order.
func (a *Application) dispatchEvent(ev *Event) error {
	ev.App = a

	if ev.isKey() {
		a.navigateFocus(ev.Key)
	}

	if a.OnEvent != nil {
		if err := a.OnEvent(ev); err != nil {
			return trace.Wrap(err)
		}
	}

	for _, c := range a.controls {
		ev.Control = c
		if err := c.handleEvent(ev); err != nil {
			return trace.Wrap(err)
		}
	}
	ev.Control = nil
	return nil
}

// navigateFocus moves focus along the focused control's adjacency
// links on arrow or WASD keys, unless the control is active and
// consuming input.
func (a *Application) navigateFocus(key Key) {
	if a.focused == nil || a.focused.Active() {
		return
	}
	var dir Direction
	switch key {
	case KeyUpArrow, KeyW:
		dir = DirNorth
	case KeyDownArrow, KeyS:
		dir = DirSouth
	case KeyLeftArrow, KeyA:
		dir = DirWest
	case KeyRightArrow, KeyD:
		dir = DirEast
	default:
		return
	}
	if next := a.focused.Adjacent(dir); next != nil {
		a.SetFocus(next)
	}
}

// refreshSurface resizes the surface when the window changed, dirtying
// every transform and broadcasting a resize event. A zero extent from
// the console means the query failed and is ignored.
func (a *Application) refreshSurface() error {
	extent := a.console.Extent()
	if extent.IsZero() || extent == a.surface.Image().Extent() {
		return nil
	}
	a.log.Debug("window resized", "w", extent.W, "h", extent.H)
	a.surface.Image().Resize(extent)
	ev := Event{Type: EventWindowResize, WindowExtent: extent}
	if err := a.dispatchEvent(&ev); err != nil {
		return trace.Wrap(err)
	}
	for _, c := range a.controls {
		c.transform.MarkDirty()
	}
	return nil
}

// refreshControls refreshes dirty transforms and controls in
// registration order, accumulating the dirty rectangle, then composes
// every overlapping control into it with the single active control on
// top. It reports whether anything was composed.
func (a *Application) refreshControls() (bool, error) {
	extent := a.surface.Image().Extent()
	var dirtyRect Rect

	for _, c := range a.controls {
		dirty := false
		var rect Rect
		if c.transform.Dirty() {
			oldRect := c.transform.GlobalRect()
			c.transform.Refresh(extent)
			rect = oldRect.Union(c.transform.GlobalRect())
			c.transform.dirty = false
			dirty = true
		} else {
			rect = c.transform.GlobalRect()
		}

		if dirty || c.state&StateDirty != 0 {
			ev := Event{Type: EventRefresh, App: a, Control: c}
			if err := c.handleEvent(&ev); err != nil {
				return false, trace.Wrap(err)
			}
			c.state &^= StateDirty
			dirty = true
		}

		if dirty {
			dirtyRect = dirtyRect.Union(rect)
		}
	}

	if dirtyRect.Extent.IsZero() {
		return false, nil
	}

	if err := a.surface.Image().FillRect(dirtyRect, DefaultPixel()); err != nil {
		return false, trace.Wrap(err)
	}

	ev := Event{
		Type:      EventDraw,
		App:       a,
		Target:    a.surface.Image(),
		DirtyRect: dirtyRect,
	}
	composed := false
	var active *Control
	for _, c := range a.controls {
		if !dirtyRect.Overlaps(c.transform.GlobalRect()) {
			continue
		}
		if c.Active() {
			if active != nil {
				return false, trace.Wrap(ErrMultipleActive)
			}
			active = c
			continue
		}
		ev.Control = c
		if err := c.handleEvent(&ev); err != nil {
			return false, trace.Wrap(err)
		}
		composed = true
	}
	if active != nil {
		ev.Control = active
		if err := active.handleEvent(&ev); err != nil {
			return false, trace.Wrap(err)
		}
		composed = true
	}
	return composed, nil
}

// refreshInput samples the keyboard, advances the per-key FSMs, and
// dispatches the resulting key events.
func (a *Application) refreshInput(now int64) error {
	if a.keyTick == 0 {
		a.keyTick = now
	}
	tick := now-a.keyTick >= keyTickInterval
	if tick {
		a.keyTick = now
	}

	var sample KeyState
	if err := a.input.Sample(&sample); err != nil {
		return trace.Wrap(err)
	}
	events := a.keys.advance(&sample, tick, nil)
	for _, ke := range events {
		ev := Event{Type: ke.typ, Key: ke.key, Modifiers: a.keys.modifiers}
		if err := a.dispatchEvent(&ev); err != nil {
			return trace.Wrap(err)
		}
	}
	return nil
}

// Tick runs one loop iteration.
func (a *Application) Tick() error {
	now := a.clock.NowMillis()

	if err := a.refreshSurface(); err != nil {
		return trace.Wrap(err)
	}

	composed, err := a.refreshControls()
	if err != nil {
		return trace.Wrap(err)
	}
	if composed {
		if err := a.surface.Refresh(); err != nil {
			return trace.Wrap(err)
		}
		if err := a.surface.Present(a.console); err != nil {
			return trace.Wrap(err)
		}
	}

	return trace.Wrap(a.refreshInput(now))
}

// Run hides the cursor and ticks until Quit is called or an error
// unwinds out of a handler. The cursor is restored before returning.
func (a *Application) Run() error {
	if a.running {
		return trace.Wrap(ErrInvalidState, "application is already running")
	}

	if err := a.console.SetCursorVisible(false); err != nil {
		return trace.Wrap(err)
	}
	defer func() {
		if err := a.console.SetCursorVisible(true); err != nil {
			a.log.Warn("restoring cursor failed", "error", err)
		}
	}()

	// capture the initial key state without dispatching events, so
	// keys held across startup do not fire
	var sample KeyState
	if err := a.input.Sample(&sample); err != nil {
		return trace.Wrap(err)
	}
	a.keys.advance(&sample, false, nil)

	a.running = true
	for a.running {
		if err := a.Tick(); err != nil {
			a.running = false
			a.log.Error("application loop stopped", "error", err)
			return trace.Wrap(err)
		}
	}
	a.log.Debug("application quit")
	return nil
}

// Quit stops the loop at its next top-of-iteration check.
func (a *Application) Quit() { a.running = false }
