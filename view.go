package tuikit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// lipColor converts a Color to a lipgloss terminal color.
func lipColor(c Color) lipgloss.TerminalColor {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
	}
	return lipgloss.NoColor{}
}

// lipStyle converts a Style to a lipgloss style for ANSI rendering.
func lipStyle(s Style) lipgloss.Style {
	ls := lipgloss.NewStyle().
		Foreground(lipColor(s.FG)).
		Background(lipColor(s.BG))
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		ls = ls.Blink(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

// renderFragments renders styled fragments to one ANSI string.
func renderFragments(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(lipStyle(f.Style).Render(f.Text))
	}
	return b.String()
}

// renderLine renders a display line, applying its alignment indent.
func renderLine(l Line) string {
	if l.Indent <= 0 {
		return renderFragments(l.Fragments)
	}
	return strings.Repeat(" ", l.Indent) + renderFragments(l.Fragments)
}

// renderSpans renders spans on a single unbounded line, without reflow.
func renderSpans(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(lipStyle(sp.Style).Render(sp.Text))
	}
	return b.String()
}

// spansWidth measures the total display width of a span sequence.
func spansWidth(spans []Span) int {
	w := 0
	for _, sp := range spans {
		w += displayWidth(sp.Text)
	}
	return w
}

// truncateSpans clips a span sequence to the given display width, cutting
// at a grapheme cluster boundary.
func truncateSpans(spans []Span, width int) []Span {
	if width <= 0 {
		return nil
	}
	if spansWidth(spans) <= width {
		return spans
	}
	out := make([]Span, 0, len(spans))
	left := width
	for _, sp := range spans {
		w := displayWidth(sp.Text)
		if w <= left {
			out = append(out, sp)
			left -= w
			continue
		}
		var b strings.Builder
		text := sp.Text
		state := -1
		var cluster string
		for len(text) > 0 {
			cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
			cw := runewidth.StringWidth(cluster)
			if cw > left {
				break
			}
			b.WriteString(cluster)
			left -= cw
		}
		if b.Len() > 0 {
			out = append(out, Span{Text: b.String(), Style: sp.Style})
		}
		break
	}
	return out
}

// restyle returns a copy of spans with every style replaced, preserving
// the text. Used for highlighted rows.
func restyle(spans []Span, style Style) []Span {
	out := make([]Span, len(spans))
	for i, sp := range spans {
		out[i] = Span{Text: sp.Text, Style: style}
	}
	return out
}

// spaces returns n spaces (none for non-positive n).
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// joinLines joins rendered rows into a view block.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// errSize builds the viewport error for widget SetSize implementations.
func errSize(width, height int) error {
	return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, width, height)
}
