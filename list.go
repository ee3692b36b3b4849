package tuikit

// Row is one list or table row: a sequence of styled spans rendered on a
// single display line.
type Row []Span

// List is a scrollable list of styled rows. A non-scrollable list still
// tracks a cursor for rendering but never reports a selection.
type List struct {
	rows       []Row
	sel        Selection
	scrollable bool
	step       int
	width      int
	marker     string
	highlight  Style
}

// NewList creates an empty list with a 1-row viewport; call SetSize once
// the host has solved the widget's geometry.
func NewList() *List {
	sel, _ := NewSelection(0, 1, Clamp)
	return &List{
		sel:       sel,
		step:      8,
		marker:    "> ",
		highlight: DefaultStyle().Inverse(),
	}
}

// SetRows replaces the list content, clamping the cursor into range.
func (l *List) SetRows(rows ...Row) *List {
	l.rows = rows
	l.sel.SetLength(len(rows))
	return l
}

// Rows returns the current content.
func (l *List) Rows() []Row { return l.rows }

// Scroll makes the list interactive: it reacts to movement commands and
// exposes the cursor through State.
func (l *List) Scroll(scrollable bool) *List {
	l.scrollable = scrollable
	return l
}

// Rewind wraps cursor movement past either edge to the opposite edge.
func (l *List) Rewind(rewind bool) *List {
	if rewind {
		l.sel.policy = Rewind
	} else {
		l.sel.policy = Clamp
	}
	return l
}

// Step sets the page size used by Scroll commands.
func (l *List) Step(step int) *List {
	if step > 0 {
		l.step = step
	}
	return l
}

// Marker sets the highlight marker shown before the cursor row.
func (l *List) Marker(marker string) *List {
	l.marker = marker
	return l
}

// Highlight sets the cursor row style.
func (l *List) Highlight(s Style) *List {
	l.highlight = s
	return l
}

// Cursor returns the internal cursor index.
func (l *List) Cursor() int { return l.sel.Cursor() }

// SetSize implements Widget.
func (l *List) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	l.width = width
	return l.sel.SetHeight(height)
}

// Perform implements Widget. Movement commands only take effect when the
// list is scrollable.
func (l *List) Perform(cmd Cmd) Result {
	if !l.scrollable {
		return Unchanged{}
	}
	switch c := cmd.(type) {
	case Move:
		return l.moved(l.sel.MoveBy(c.Delta, c.Step))
	case Scroll:
		return l.moved(l.sel.MoveBy(c.Delta, l.step))
	case Jump:
		return l.moved(l.sel.MoveBy(jumpDelta(c.To), 1))
	}
	return Unchanged{}
}

func (l *List) moved(moved bool) Result {
	if !moved {
		return Unchanged{}
	}
	return Changed{State: l.State()}
}

// State implements Widget: the cursor index when scrollable and non-empty,
// nothing otherwise.
func (l *List) State() State {
	if idx, ok := l.sel.State(l.scrollable); ok {
		return IndexState(idx)
	}
	return NoState{}
}

// View implements Widget, rendering the visible window with the cursor row
// highlighted.
func (l *List) View() string {
	start, end := l.sel.VisibleRange()
	lines := make([]string, 0, end-start)
	pad := spaces(displayWidth(l.marker))
	for i := start; i < end; i++ {
		row := truncateSpans(l.rows[i], l.width-displayWidth(l.marker))
		if l.scrollable && i == l.sel.Cursor() {
			lines = append(lines, lipStyle(l.highlight).Render(l.marker)+renderSpans(restyle(row, l.highlight)))
		} else {
			lines = append(lines, pad+renderSpans(row))
		}
	}
	return joinLines(lines)
}

// jumpDelta maps a Jump position onto a MoveBy sentinel.
func jumpDelta(to Position) int {
	if to == End {
		return JumpEnd
	}
	return JumpBegin
}
