package ui

// Per-key FSM states. A fresh press enters cooldown; each key tick
// walks the state toward held, which then repeats every tick until
// release.
const (
	inputStateReleased byte = 0
	inputStateHeld     byte = 1
	inputStatePressed  byte = 2
	inputStateCooldown byte = 10
)

// keyTickInterval is the repeat tick, in milliseconds.
const keyTickInterval = 1000 / 20

// inputState carries the FSM state of every tracked key between
// samples.
type inputState struct {
	states    [KeyStateCount]byte
	modifiers Modifiers
}

// keyEvent is one FSM output: a key went down, repeated, or went up.
type keyEvent struct {
	typ EventType
	key Key
}

// advance folds a fresh keyboard sample into the FSM and appends the
// resulting key events to out. tick reports whether the repeat
// interval elapsed since the last call.
func (in *inputState) advance(sample *KeyState, tick bool, out []keyEvent) []keyEvent {
	in.modifiers = sample.Modifiers
	for _, key := range TrackedKeys {
		pressed := sample.Down[key]
		state := in.states[key]
		switch {
		case pressed && state == inputStateReleased:
			in.states[key] = inputStateCooldown
			out = append(out, keyEvent{typ: EventKeyDown, key: key})
		case pressed && tick:
			if state > inputStateHeld {
				state--
				in.states[key] = state
			}
			if state == inputStateHeld {
				out = append(out, keyEvent{typ: EventKeyHeld, key: key})
			}
		case !pressed && state != inputStateReleased:
			in.states[key] = inputStateReleased
			out = append(out, keyEvent{typ: EventKeyUp, key: key})
		}
	}
	return out
}
