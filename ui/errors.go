package ui

import "errors"

// Failure kinds surfaced by the toolkit. Resource and programming-error
// failures unwind out of widget handlers to the application loop, which
// stops running and returns them; non-fatal input conditions are
// absorbed silently.
var (
	// ErrOutOfRange reports a coordinate or index outside its bounds.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidPixel reports a pixel with a zero character.
	ErrInvalidPixel = errors.New("invalid pixel: zero character")

	// ErrInvalidState reports an operation against an object in the
	// wrong state, such as running an already-running application.
	ErrInvalidState = errors.New("invalid state")

	// ErrMultipleActive reports more than one active control in a
	// single application, which the compositor cannot order.
	ErrMultipleActive = errors.New("multiple active controls")

	// ErrPresentation reports a failed write or flush to the terminal.
	ErrPresentation = errors.New("presentation failed")

	// ErrWordWrap reports a failed word-wrap pass.
	ErrWordWrap = errors.New("word wrapping failed")
)
