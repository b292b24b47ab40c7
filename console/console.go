// Package console implements the ui platform contracts for POSIX
// terminals: raw-mode terminal output, keyboard sampling from the tty
// byte stream or the Linux event device, clipboard bridges, and the
// wall clock.
package console

import (
	"fmt"
	"os"

	"github.com/gravitational/trace"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/arborui/arbor/ui"
)

// Terminal drives the controlling terminal: raw mode for the lifetime
// of the value, size queries, presenting, cursor visibility, bell and
// title.
type Terminal struct {
	in    *os.File
	out   *os.File
	saved *term.State
}

// NewTerminal puts stdin into raw mode and returns the terminal.
// Close restores the saved mode.
func NewTerminal() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}
	if !term.IsTerminal(int(t.in.Fd())) {
		return nil, trace.BadParameter("stdin is not a terminal")
	}
	saved, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, trace.Wrap(err, "entering raw mode")
	}
	t.saved = saved
	return t, nil
}

// Close restores the terminal mode saved by NewTerminal.
func (t *Terminal) Close() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.saved)
	t.saved = nil
	return trace.Wrap(err)
}

// Input returns the terminal's input file, for samplers.
func (t *Terminal) Input() *os.File { return t.in }

// Extent returns the window size in cells, or a zero extent when the
// query fails.
func (t *Terminal) Extent() ui.Extent {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		// fall back to the ioctl directly; some stdio arrangements
		// only answer on stdin
		ws, err := unix.IoctlGetWinsize(int(t.in.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			return ui.Extent{}
		}
		return ui.Extent{W: int(ws.Col), H: int(ws.Row)}
	}
	return ui.Extent{W: w, H: h}
}

// Present homes the cursor, writes data and flushes.
func (t *Terminal) Present(data []byte) error {
	if _, err := t.out.WriteString("\x1b[H"); err != nil {
		return trace.Wrap(err)
	}
	if _, err := t.out.Write(data); err != nil {
		return trace.Wrap(err)
	}
	// writes to the tty are unbuffered; Sync is best effort
	t.out.Sync()
	return nil
}

// SetCursorVisible shows or hides the terminal cursor.
func (t *Terminal) SetCursorVisible(visible bool) error {
	seq := "\x1b[?25l"
	if visible {
		seq = "\x1b[?25h"
	}
	_, err := t.out.WriteString(seq)
	return trace.Wrap(err)
}

// Beep sounds the terminal bell.
func (t *Terminal) Beep() {
	fmt.Fprint(t.out, "\a")
}

// SetTitle sets the window title.
func (t *Terminal) SetTitle(title string) error {
	_, err := fmt.Fprintf(t.out, "\x1b]0;%s\a", title)
	return trace.Wrap(err)
}
