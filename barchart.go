package tuikit

// BarChart renders labelled values as vertical columns scaled to the
// viewport height, labels on the bottom row.
type BarChart struct {
	labels []string
	values []float64
	max    float64 // 0 = derive from values
	width  int
	height int
	style  Style
}

// NewBarChart creates an empty bar chart.
func NewBarChart() *BarChart {
	return &BarChart{style: DefaultStyle()}
}

// SetBars replaces the chart content; values beyond the shorter of the two
// slices are ignored.
func (b *BarChart) SetBars(labels []string, values []float64) *BarChart {
	n := min(len(labels), len(values))
	b.labels = labels[:n]
	b.values = values[:n]
	return b
}

// Max fixes the scale ceiling; without it the largest value is used.
func (b *BarChart) Max(max float64) *BarChart {
	b.max = max
	return b
}

// Style sets the column style.
func (b *BarChart) Style(s Style) *BarChart {
	b.style = s
	return b
}

// SetSize implements Widget.
func (b *BarChart) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	b.width = width
	b.height = height
	return nil
}

// Perform implements Widget; a bar chart reacts to no commands.
func (b *BarChart) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (b *BarChart) State() State {
	return NoState{}
}

// View implements Widget.
func (b *BarChart) View() string {
	rows := b.height - 1 // bottom row carries the labels
	if rows < 1 {
		rows = 1
	}
	colWidth := 0
	for _, l := range b.labels {
		if w := displayWidth(l); w > colWidth {
			colWidth = w
		}
	}
	if colWidth < 1 {
		colWidth = 1
	}
	ceil := b.max
	if ceil <= 0 {
		for _, v := range b.values {
			if v > ceil {
				ceil = v
			}
		}
	}
	if ceil <= 0 {
		ceil = 1
	}

	// Columns render top down; a cell is filled when its row is below the
	// bar's scaled height.
	lines := make([]string, 0, rows+1)
	for row := rows; row > 0; row-- {
		line := ""
		for i, v := range b.values {
			if i > 0 {
				line += " "
			}
			filled := int(v / ceil * float64(rows))
			cell := spaces(colWidth)
			if filled >= row {
				cell = repeatRune('█', colWidth)
			}
			line += lipStyle(b.style).Render(cell)
		}
		lines = append(lines, line)
	}
	labelLine := ""
	for i, l := range b.labels {
		if i > 0 {
			labelLine += " "
		}
		labelLine += lipStyle(b.style).Render(l + spaces(colWidth-displayWidth(l)))
	}
	lines = append(lines, labelLine)
	return joinLines(lines)
}

// repeatRune builds a string of n copies of r.
func repeatRune(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
