package tuikit

import "fmt"

// Overlay is the open/closed drop-down state machine used by the select
// widget. It wraps one Selection whose cursor is the provisional, pending
// choice while the overlay is open; the committed choice is the value last
// confirmed with Submit and the only one ever reported externally.
//
// While closed, movement commands are suppressed. Opening snapshots the
// committed choice into the pending cursor; closing either commits the
// pending cursor (Submit) or discards it (Cancel, including focus loss —
// losing focus never confirms).
type Overlay struct {
	sel       Selection
	committed int
	open      bool
}

// NewOverlay creates a closed overlay over length choices with a drop-down
// viewport of the given height. The committed choice starts at initial;
// an initial outside [0, length) on a non-empty collection is a
// configuration bug.
func NewOverlay(length, height int, policy Policy, initial int) (Overlay, error) {
	sel, err := NewSelection(length, height, policy)
	if err != nil {
		return Overlay{}, err
	}
	if initial < 0 || (length > 0 && initial >= length) {
		return Overlay{}, fmt.Errorf("%w: initial selection %d out of range [0,%d)", ErrInvalidConfiguration, initial, length)
	}
	if length == 0 {
		initial = 0
	}
	sel.MoveCursor(initial)
	return Overlay{sel: sel, committed: initial}, nil
}

// Open reports whether the drop-down is open.
func (o *Overlay) Open() bool { return o.open }

// Committed returns the last confirmed choice index.
func (o *Overlay) Committed() int { return o.committed }

// Pending returns the provisional cursor; equal to Committed while closed.
func (o *Overlay) Pending() int {
	if !o.open {
		return o.committed
	}
	return o.sel.Cursor()
}

// Selection exposes the wrapped controller for viewport rendering.
func (o *Overlay) Selection() *Selection { return &o.sel }

// SetLength updates the number of choices, clamping both the committed and
// pending values into range.
func (o *Overlay) SetLength(n int) error {
	if err := o.sel.SetLength(n); err != nil {
		return err
	}
	if n == 0 {
		o.committed = 0
	} else if o.committed >= n {
		o.committed = n - 1
	}
	return nil
}

// SetHeight updates the drop-down viewport height.
func (o *Overlay) SetHeight(h int) error {
	return o.sel.SetHeight(h)
}

// MoveBy moves the pending cursor while open. Movement while closed is a
// defined no-op: the overlay must be opened first.
func (o *Overlay) MoveBy(delta, step int) Result {
	if !o.open {
		return Unchanged{}
	}
	if !o.sel.MoveBy(delta, step) {
		return Unchanged{}
	}
	return Changed{State: IndexState(o.sel.Cursor())}
}

// Submit opens the overlay when closed, or commits the pending cursor and
// closes it when open. Submitting with an empty collection is a no-op.
func (o *Overlay) Submit() Result {
	if o.sel.Length() == 0 {
		return Unchanged{}
	}
	if !o.open {
		o.sel.MoveCursor(o.committed)
		o.open = true
		return Unchanged{}
	}
	o.committed = o.sel.Cursor()
	o.open = false
	return Submitted{State: IndexState(o.committed)}
}

// Cancel closes the overlay, discarding the pending cursor; the committed
// choice is untouched and nothing is submitted. Canceling while already
// closed is a no-op.
func (o *Overlay) Cancel() Result {
	if !o.open {
		return Unchanged{}
	}
	o.open = false
	o.sel.MoveCursor(o.committed)
	return Unchanged{}
}

// Blur handles loss of focus, which always cancels and never confirms.
func (o *Overlay) Blur() {
	o.Cancel()
}

// State reports the committed choice while closed. While open the
// selection is provisional, so nothing is reported.
func (o *Overlay) State() (int, bool) {
	if o.open || o.sel.Length() == 0 {
		return 0, false
	}
	return o.committed, true
}
