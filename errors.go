package tuikit

import "errors"

// Configuration faults surface from constructors and setters only; once a
// widget is validly configured, every command is a defined transformation
// and never fails mid-interaction.
var (
	// ErrInvalidViewport reports a non-positive width or height passed to
	// reflow or viewport sizing.
	ErrInvalidViewport = errors.New("tuikit: invalid viewport dimensions")

	// ErrInvalidConfiguration reports an impossible widget configuration,
	// such as a negative collection length or a default selection out of
	// range.
	ErrInvalidConfiguration = errors.New("tuikit: invalid configuration")
)
