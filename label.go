package tuikit

// Label displays a single line of styled spans with horizontal alignment.
// Content wider than the viewport is clipped, never wrapped.
type Label struct {
	spans []Span
	width int
	align Alignment
	style Style
}

// NewLabel creates a label from styled spans.
func NewLabel(spans ...Span) *Label {
	return &Label{spans: spans, style: DefaultStyle()}
}

// SetSpans replaces the content.
func (l *Label) SetSpans(spans ...Span) *Label {
	l.spans = spans
	return l
}

// Align sets the horizontal alignment.
func (l *Label) Align(align Alignment) *Label {
	l.align = align
	return l
}

// SetSize implements Widget; a label is one row tall.
func (l *Label) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	l.width = width
	return nil
}

// Perform implements Widget; a label reacts to no commands.
func (l *Label) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (l *Label) State() State {
	return NoState{}
}

// View implements Widget.
func (l *Label) View() string {
	spans := truncateSpans(l.spans, l.width)
	pad := indent(spansWidth(spans), l.width, l.align)
	return spaces(pad) + renderSpans(spans)
}
