package tuikit

// Textarea is a read-only scrolling viewer over reflowed styled text. The
// cursor tracks the focused display line; the viewport follows it. It
// reports no external state.
type Textarea struct {
	spans  []Span
	lines  []Line
	sel    Selection
	width  int
	trim   bool
	align  Alignment
	step   int
}

// NewTextarea creates a textarea from styled spans.
func NewTextarea(spans ...Span) *Textarea {
	sel, _ := NewSelection(0, 1, Clamp)
	return &Textarea{spans: spans, sel: sel, step: 8}
}

// SetSpans replaces the content; display lines are recomputed from
// scratch.
func (t *Textarea) SetSpans(spans ...Span) *Textarea {
	t.spans = spans
	t.reflow()
	return t
}

// Trim drops trailing whitespace from each display line.
func (t *Textarea) Trim(trim bool) *Textarea {
	t.trim = trim
	t.reflow()
	return t
}

// Align sets the horizontal alignment of display lines.
func (t *Textarea) Align(align Alignment) *Textarea {
	t.align = align
	t.reflow()
	return t
}

// Step sets the page size used by Scroll commands.
func (t *Textarea) Step(step int) *Textarea {
	if step > 0 {
		t.step = step
	}
	return t
}

// SetSize implements Widget.
func (t *Textarea) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	t.width = width
	if err := t.sel.SetHeight(height); err != nil {
		return err
	}
	t.reflow()
	return nil
}

// reflow recomputes display lines and rebinds the scroll controller to
// the new line count.
func (t *Textarea) reflow() {
	if t.width <= 0 {
		return
	}
	t.lines, _ = Reflow(t.spans, t.width, t.trim, t.align)
	t.sel.SetLength(len(t.lines))
}

// Perform implements Widget: movement scrolls the viewport.
func (t *Textarea) Perform(cmd Cmd) Result {
	moved := false
	switch c := cmd.(type) {
	case Move:
		moved = t.sel.MoveBy(c.Delta, c.Step)
	case Scroll:
		moved = t.sel.MoveBy(c.Delta, t.step)
	case Jump:
		moved = t.sel.MoveBy(jumpDelta(c.To), 1)
	}
	if !moved {
		return Unchanged{}
	}
	return Changed{State: NoState{}}
}

// State implements Widget; a textarea is a viewer and reports nothing.
func (t *Textarea) State() State {
	return NoState{}
}

// View implements Widget, rendering the visible window of display lines.
func (t *Textarea) View() string {
	start, end := t.sel.VisibleRange()
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, renderLine(t.lines[i]))
	}
	return joinLines(lines)
}
