package tuikit

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Alignment controls the horizontal placement of reflowed lines within the
// viewport. It never changes which content lands on which line.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Fragment is a run of text on one display line sharing one style.
type Fragment struct {
	Text  string
	Style Style
}

// Line is one width-bounded display line produced by Reflow.
// Indent is the horizontal offset to apply when rendering the line,
// derived from the alignment passed to Reflow.
type Line struct {
	Fragments []Fragment
	Indent    int
}

// Text returns the concatenated fragment text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, f := range l.Fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Width returns the display width of the line in terminal cells.
func (l Line) Width() int {
	w := 0
	for _, f := range l.Fragments {
		w += displayWidth(f.Text)
	}
	return w
}

// displayWidth measures the rendered width of s in terminal cells.
// Measurement walks grapheme clusters, so combining sequences and wide
// characters count their cell width rather than their rune count.
func displayWidth(s string) int {
	w := 0
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += runewidth.StringWidth(cluster)
	}
	return w
}

// Reflow converts styled spans into display lines whose width does not
// exceed width. Breaks are preferred at whitespace; a single token wider
// than the viewport is hard-broken mid-token. Explicit newlines in span
// text always start a new line.
//
// When trim is true, trailing whitespace is dropped from each emitted line
// and never forces a break on its own. When trim is false, whitespace is
// carried verbatim, so concatenating the emitted lines reproduces the
// input text with only wrap breaks added.
//
// A span split across lines yields a style-identical fragment on each
// side. The same input always produces identical output.
func Reflow(spans []Span, width int, trim bool, align Alignment) ([]Line, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidViewport, width)
	}
	r := reflower{width: width, trim: trim}
	for _, span := range spans {
		r.span(span)
	}
	r.flush()
	for i := range r.lines {
		r.lines[i].Indent = indent(r.lines[i].Width(), width, align)
	}
	return r.lines, nil
}

// indent computes the horizontal offset for a line of the given width.
func indent(lineWidth, width int, align Alignment) int {
	pad := width - lineWidth
	if pad <= 0 {
		return 0
	}
	switch align {
	case AlignRight:
		return pad
	case AlignCenter:
		return pad / 2
	}
	return 0
}

// reflower accumulates fragments into the current line and emits completed
// lines. In trim mode, whitespace is withheld in pend until a following
// word lands on the same line; whitespace still pending when a line ends
// is trailing and gets dropped.
type reflower struct {
	width int
	trim  bool

	lines []Line
	cur   []Fragment
	curW  int

	pend  []Fragment
	pendW int
}

// span feeds one styled span through the reflower, honoring explicit
// newlines in its text.
func (r *reflower) span(sp Span) {
	for i, seg := range strings.Split(sp.Text, "\n") {
		if i > 0 {
			r.newline()
		}
		r.segment(seg, sp.Style)
	}
}

// segment tokenizes newline-free text into alternating whitespace and word
// runs and places each on the line.
func (r *reflower) segment(text string, style Style) {
	var tok strings.Builder
	tokW := 0
	tokSpace := false
	first := true
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		cw := runewidth.StringWidth(cluster)
		sp := isSpaceCluster(cluster)
		if first {
			tokSpace = sp
			first = false
		}
		if sp != tokSpace {
			r.place(tok.String(), tokW, tokSpace, style)
			tok.Reset()
			tokW = 0
			tokSpace = sp
		}
		tok.WriteString(cluster)
		tokW += cw
	}
	if tok.Len() > 0 {
		r.place(tok.String(), tokW, tokSpace, style)
	}
}

// place routes one token onto the current line, wrapping as required.
func (r *reflower) place(tok string, tokW int, isSpace bool, style Style) {
	if isSpace {
		if r.trim {
			// Withheld until a word follows on the same line.
			r.pend = appendFragment(r.pend, tok, style)
			r.pendW += tokW
			return
		}
		r.hardPlace(tok, style)
		return
	}
	switch {
	case r.curW+r.pendW+tokW <= r.width:
		r.flushPend()
		r.append(tok, tokW, style)
	case tokW <= r.width:
		// Fits on a fresh line; break at the boundary.
		r.dropPend()
		if len(r.cur) > 0 {
			r.emit()
		}
		r.append(tok, tokW, style)
	default:
		// Token wider than the viewport: hard-break mid-token.
		r.dropPend()
		r.hardPlace(tok, style)
	}
}

// hardPlace writes a token cluster by cluster, wrapping whenever the line
// is full. A cluster wider than an entire empty line is force-placed so
// placement always advances.
func (r *reflower) hardPlace(tok string, style Style) {
	state := -1
	var cluster string
	for len(tok) > 0 {
		cluster, tok, _, state = uniseg.FirstGraphemeClusterInString(tok, state)
		cw := runewidth.StringWidth(cluster)
		if len(r.cur) > 0 && r.curW+cw > r.width {
			r.emit()
		}
		r.append(cluster, cw, style)
	}
}

// append adds text to the current line, merging into the previous fragment
// when the style is identical.
func (r *reflower) append(text string, w int, style Style) {
	r.cur = appendFragment(r.cur, text, style)
	r.curW += w
}

// flushPend commits withheld whitespace onto the current line.
func (r *reflower) flushPend() {
	for _, f := range r.pend {
		r.cur = appendFragment(r.cur, f.Text, f.Style)
	}
	r.curW += r.pendW
	r.pend = r.pend[:0]
	r.pendW = 0
}

// dropPend discards withheld whitespace; it was trailing on its line.
func (r *reflower) dropPend() {
	r.pend = r.pend[:0]
	r.pendW = 0
}

// newline ends the current line unconditionally.
func (r *reflower) newline() {
	r.dropPend()
	r.emit()
}

// emit closes out the current line, empty or not.
func (r *reflower) emit() {
	r.lines = append(r.lines, Line{Fragments: r.cur})
	r.cur = nil
	r.curW = 0
}

// flush emits any partial final line.
func (r *reflower) flush() {
	r.dropPend()
	if len(r.cur) > 0 {
		r.emit()
	}
}

// appendFragment appends text to a fragment list, merging with the last
// fragment when styles match so split spans stay as single runs per side.
func appendFragment(frags []Fragment, text string, style Style) []Fragment {
	if text == "" {
		return frags
	}
	if n := len(frags); n > 0 && frags[n-1].Style.Equal(style) {
		frags[n-1].Text += text
		return frags
	}
	return append(frags, Fragment{Text: text, Style: style})
}

// isSpaceCluster reports whether a grapheme cluster is whitespace.
func isSpaceCluster(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}
