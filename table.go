package tuikit

// Table is a scrollable table of rows with aligned columns. Each span in a
// Row is one column. Selection semantics are identical to List: the cursor
// is only reported when the table is scrollable.
type Table struct {
	rows       []Row
	header     Row
	widths     []int
	sel        Selection
	scrollable bool
	step       int
	width      int
	marker     string
	style      Style
	highlight  Style
}

// NewTable creates an empty table with a 1-row viewport.
func NewTable() *Table {
	sel, _ := NewSelection(0, 1, Clamp)
	return &Table{
		sel:       sel,
		step:      8,
		marker:    "> ",
		style:     DefaultStyle(),
		highlight: DefaultStyle().Inverse(),
	}
}

// SetRows replaces the table content, clamping the cursor into range.
// Column widths not set explicitly are derived from the content.
func (t *Table) SetRows(rows ...Row) *Table {
	t.rows = rows
	t.sel.SetLength(len(rows))
	return t
}

// Header sets an optional header row, rendered above the viewport and
// excluded from selection.
func (t *Table) Header(header Row) *Table {
	t.header = header
	return t
}

// Widths fixes the column display widths. Without it, each column sizes to
// its widest cell.
func (t *Table) Widths(widths ...int) *Table {
	t.widths = widths
	return t
}

// Scroll makes the table interactive.
func (t *Table) Scroll(scrollable bool) *Table {
	t.scrollable = scrollable
	return t
}

// Rewind wraps cursor movement past either edge to the opposite edge.
func (t *Table) Rewind(rewind bool) *Table {
	if rewind {
		t.sel.policy = Rewind
	} else {
		t.sel.policy = Clamp
	}
	return t
}

// Step sets the page size used by Scroll commands.
func (t *Table) Step(step int) *Table {
	if step > 0 {
		t.step = step
	}
	return t
}

// Marker sets the highlight marker shown before the cursor row.
func (t *Table) Marker(marker string) *Table {
	t.marker = marker
	return t
}

// Style sets the base row style.
func (t *Table) Style(s Style) *Table {
	t.style = s
	return t
}

// Highlight sets the cursor row style.
func (t *Table) Highlight(s Style) *Table {
	t.highlight = s
	return t
}

// Cursor returns the internal cursor index.
func (t *Table) Cursor() int { return t.sel.Cursor() }

// SetSize implements Widget.
func (t *Table) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	t.width = width
	return t.sel.SetHeight(height)
}

// Perform implements Widget.
func (t *Table) Perform(cmd Cmd) Result {
	if !t.scrollable {
		return Unchanged{}
	}
	switch c := cmd.(type) {
	case Move:
		return t.moved(t.sel.MoveBy(c.Delta, c.Step))
	case Scroll:
		return t.moved(t.sel.MoveBy(c.Delta, t.step))
	case Jump:
		return t.moved(t.sel.MoveBy(jumpDelta(c.To), 1))
	}
	return Unchanged{}
}

func (t *Table) moved(moved bool) Result {
	if !moved {
		return Unchanged{}
	}
	return Changed{State: t.State()}
}

// State implements Widget.
func (t *Table) State() State {
	if idx, ok := t.sel.State(t.scrollable); ok {
		return IndexState(idx)
	}
	return NoState{}
}

// View implements Widget.
func (t *Table) View() string {
	widths := t.columnWidths()
	start, end := t.sel.VisibleRange()
	lines := make([]string, 0, end-start+1)
	pad := spaces(displayWidth(t.marker))
	if t.header != nil {
		lines = append(lines, pad+t.renderRow(restyle(t.header, t.style.Bold()), widths))
	}
	for i := start; i < end; i++ {
		if t.scrollable && i == t.sel.Cursor() {
			lines = append(lines, lipStyle(t.highlight).Render(t.marker)+t.renderRow(restyle(t.rows[i], t.highlight), widths))
		} else {
			lines = append(lines, pad+t.renderRow(t.rows[i], widths))
		}
	}
	return joinLines(lines)
}

// renderRow renders one row with columns padded or clipped to widths.
func (t *Table) renderRow(row Row, widths []int) string {
	out := ""
	for i, col := range row {
		w := 0
		if i < len(widths) {
			w = widths[i]
		}
		cell := truncateSpans([]Span{col}, w)
		used := spansWidth(cell)
		if i > 0 {
			out += " "
		}
		out += renderSpans(cell) + spaces(w-used)
	}
	return out
}

// columnWidths returns the configured widths, or widths derived from the
// widest cell per column.
func (t *Table) columnWidths() []int {
	if len(t.widths) > 0 {
		return t.widths
	}
	var widths []int
	measure := func(row Row) {
		for i, col := range row {
			w := displayWidth(col.Text)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}
	if t.header != nil {
		measure(t.header)
	}
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}
