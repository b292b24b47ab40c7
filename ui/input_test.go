package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInputFSMDownHeldUp(t *testing.T) {
	var in inputState
	var sample KeyState

	// press: key down fires immediately, no tick needed
	sample.Down[KeyA] = true
	events := in.advance(&sample, false, nil)
	require.Equal(t, []keyEvent{{EventKeyDown, KeyA}}, events)

	// holding without ticks stays silent
	events = in.advance(&sample, false, nil)
	require.Empty(t, events)

	// the cooldown takes nine ticks to reach held
	for i := 0; i < 8; i++ {
		events = in.advance(&sample, true, nil)
		require.Empty(t, events, "tick %d should still be cooling down", i)
	}
	events = in.advance(&sample, true, nil)
	require.Equal(t, []keyEvent{{EventKeyHeld, KeyA}}, events)

	// held repeats on every tick
	events = in.advance(&sample, true, nil)
	require.Equal(t, []keyEvent{{EventKeyHeld, KeyA}}, events)

	// release fires key up from any state
	sample.Down[KeyA] = false
	events = in.advance(&sample, false, nil)
	require.Equal(t, []keyEvent{{EventKeyUp, KeyA}}, events)

	events = in.advance(&sample, false, nil)
	require.Empty(t, events)
}

func TestInputFSMReleaseDuringCooldown(t *testing.T) {
	var in inputState
	var sample KeyState

	sample.Down[KeySpace] = true
	events := in.advance(&sample, false, nil)
	require.Equal(t, []keyEvent{{EventKeyDown, KeySpace}}, events)

	events = in.advance(&sample, true, nil)
	require.Empty(t, events)

	sample.Down[KeySpace] = false
	events = in.advance(&sample, true, nil)
	require.Equal(t, []keyEvent{{EventKeyUp, KeySpace}}, events)
}

// TestInputFSMEventOrdering checks the pairing property over a
// scripted press pattern: every held and up event follows a down, and
// downs and ups alternate strictly per key.
func TestInputFSMEventOrdering(t *testing.T) {
	var in inputState
	var sample KeyState
	pattern := []struct {
		down bool
		tick bool
	}{
		{true, false}, {true, true}, {true, true}, {false, false},
		{true, true}, {false, true}, {false, false}, {true, false},
		{true, true}, {true, true}, {true, true}, {true, true},
		{true, true}, {true, true}, {true, true}, {true, true},
		{true, true}, {true, true}, {false, true},
	}

	var events []keyEvent
	for _, step := range pattern {
		sample.Down[KeyZ] = step.down
		events = in.advance(&sample, step.tick, events)
	}

	downs, ups := 0, 0
	open := false
	for _, ev := range events {
		require.Equal(t, KeyZ, ev.key)
		switch ev.typ {
		case EventKeyDown:
			require.False(t, open, "key down while already down")
			open = true
			downs++
		case EventKeyHeld:
			require.True(t, open, "key held without a preceding down")
		case EventKeyUp:
			require.True(t, open, "key up without a preceding down")
			open = false
			ups++
		}
	}
	require.Equal(t, 3, downs)
	require.Equal(t, 3, ups)
}

func TestInputFSMModifiers(t *testing.T) {
	var in inputState
	var sample KeyState
	sample.Modifiers = ModShift | ModCapsLock
	in.advance(&sample, false, nil)
	require.Equal(t, ModShift|ModCapsLock, in.modifiers)
}
