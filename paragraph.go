package tuikit

// Paragraph displays styled spans reflowed to the viewport width. It has
// no interactive state; display lines are recomputed from scratch whenever
// the content or the viewport changes.
type Paragraph struct {
	spans  []Span
	lines  []Line
	width  int
	height int
	trim   bool
	align  Alignment
}

// NewParagraph creates a paragraph from styled spans.
func NewParagraph(spans ...Span) *Paragraph {
	return &Paragraph{spans: spans}
}

// SetSpans replaces the content.
func (p *Paragraph) SetSpans(spans ...Span) *Paragraph {
	p.spans = spans
	p.reflow()
	return p
}

// Trim drops trailing whitespace from each display line.
func (p *Paragraph) Trim(trim bool) *Paragraph {
	p.trim = trim
	p.reflow()
	return p
}

// Align sets the horizontal alignment of display lines.
func (p *Paragraph) Align(align Alignment) *Paragraph {
	p.align = align
	p.reflow()
	return p
}

// Lines returns the current display lines.
func (p *Paragraph) Lines() []Line { return p.lines }

// SetSize implements Widget.
func (p *Paragraph) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	p.width = width
	p.height = height
	p.reflow()
	return nil
}

// reflow recomputes the display lines; a nop until the first SetSize.
func (p *Paragraph) reflow() {
	if p.width <= 0 {
		return
	}
	p.lines, _ = Reflow(p.spans, p.width, p.trim, p.align)
}

// Perform implements Widget; a paragraph reacts to no commands.
func (p *Paragraph) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (p *Paragraph) State() State {
	return NoState{}
}

// View implements Widget, rendering up to height display lines.
func (p *Paragraph) View() string {
	n := len(p.lines)
	if p.height > 0 && n > p.height {
		n = p.height
	}
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = renderLine(p.lines[i])
	}
	return joinLines(lines)
}
