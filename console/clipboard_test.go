package console

import (
	"strings"
	"testing"

	"github.com/gravitational/trace"
	"github.com/stretchr/testify/require"
)

func TestOSC52ClipboardSetText(t *testing.T) {
	var out strings.Builder
	clip := NewOSC52Clipboard(&out)

	require.NoError(t, clip.SetText("hello"))
	// aGVsbG8= is "hello" in base64
	require.Equal(t, "\x1b]52;c;aGVsbG8=\a", out.String())
}

func TestOSC52ClipboardGetText(t *testing.T) {
	clip := NewOSC52Clipboard(&strings.Builder{})
	_, err := clip.GetText()
	require.True(t, trace.IsNotImplemented(err))
}
