package console

import (
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/gravitational/trace"
	"golang.design/x/clipboard"
)

// SystemClipboard bridges the OS clipboard.
type SystemClipboard struct{}

var clipboardInit sync.Once
var clipboardErr error

// NewSystemClipboard initializes the OS clipboard bridge. It fails on
// headless systems; callers can fall back to OSC52Clipboard.
func NewSystemClipboard() (*SystemClipboard, error) {
	clipboardInit.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return nil, trace.Wrap(clipboardErr, "initializing system clipboard")
	}
	return &SystemClipboard{}, nil
}

// GetText reads the clipboard.
func (c *SystemClipboard) GetText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

// SetText writes the clipboard.
func (c *SystemClipboard) SetText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// OSC52Clipboard writes the clipboard through the terminal using the
// OSC 52 escape sequence. Reading back is not supported; GetText
// returns not-implemented, which text inputs surface on paste.
type OSC52Clipboard struct {
	out io.Writer
}

// NewOSC52Clipboard builds a write-only clipboard over the terminal
// output stream.
func NewOSC52Clipboard(out io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{out: out}
}

// GetText is not supported over OSC 52.
func (c *OSC52Clipboard) GetText() (string, error) {
	return "", trace.NotImplemented("clipboard read is not supported over OSC 52")
}

// SetText sends the text to the terminal's clipboard.
func (c *OSC52Clipboard) SetText(text string) error {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(c.out, "\x1b]52;c;%s\a", encoded)
	return trace.Wrap(err)
}
