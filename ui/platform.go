package ui

// The core never references an OS type. Terminal configuration, input
// sampling, the clipboard and the wall clock arrive as these injected
// capabilities; package console provides the real implementations.

// Console is the terminal the surface presents to.
type Console interface {
	// Extent returns the current window size in cells. A zero extent
	// means the query failed; the application treats that as "do not
	// resize".
	Extent() Extent
	// Present writes the cursor-home escape followed by data and
	// flushes.
	Present(data []byte) error
	// SetCursorVisible shows or hides the terminal cursor.
	SetCursorVisible(visible bool) error
	// Beep sounds the terminal bell.
	Beep()
}

// KeyState is one keyboard sample: the physical down/up state of every
// keycode plus the modifier latches.
type KeyState struct {
	Down      [KeyStateCount]bool
	Modifiers Modifiers
}

// InputSource samples the keyboard. Sample overwrites state in place
// and must not block beyond a short poll timeout.
type InputSource interface {
	Sample(state *KeyState) error
}

// Clipboard bridges the system clipboard. Implementations may return
// trace.NotImplemented, in which case Ctrl+C/V/X in a text input
// surface the error.
type Clipboard interface {
	GetText() (string, error)
	SetText(text string) error
}

// Clock supplies wall-clock milliseconds. Monotonicity is not
// required; only short relative differences are used.
type Clock interface {
	NowMillis() int64
}
