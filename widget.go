package tuikit

// Widget is the contract between a widget core and the host framework.
// The host serializes one command at a time per widget instance; widgets
// hold no locks and never block. Every operation completes in time
// proportional to content size.
type Widget interface {
	// Perform applies one decoded command and reports its effect.
	Perform(Cmd) Result

	// State returns the externally observable value of the widget.
	State() State

	// View renders the widget to an ANSI string at its current size.
	View() string

	// SetSize updates the widget's viewport. Non-positive dimensions are
	// rejected with ErrInvalidViewport.
	SetSize(width, height int) error
}

// Blurrable is implemented by widgets that react to losing focus.
// For the select widget, blur always cancels a provisional selection.
type Blurrable interface {
	Blur()
}
