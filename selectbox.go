package tuikit

import "fmt"

// Select is a drop-down choice field. Closed, it shows the committed
// choice; Submit opens a transient list in which movement edits a pending
// choice. Submit commits the pending choice, Cancel (or losing focus)
// restores the committed one.
type Select struct {
	choices   []string
	overlay   Overlay
	width     int
	style     Style
	highlight Style
	marker    string
}

// NewSelect creates a closed select over the given choices, committed to
// the first one.
func NewSelect(choices ...string) *Select {
	overlay, _ := NewOverlay(len(choices), 1, Clamp, 0)
	return &Select{
		choices:   choices,
		overlay:   overlay,
		style:     DefaultStyle(),
		highlight: DefaultStyle().Inverse(),
		marker:    "> ",
	}
}

// SetChoices replaces the choice set, clamping committed and pending
// values into range.
func (s *Select) SetChoices(choices ...string) *Select {
	s.choices = choices
	s.overlay.SetLength(len(choices))
	return s
}

// SetValue sets the committed choice. An index outside the choice set is a
// configuration bug.
func (s *Select) SetValue(index int) error {
	if index < 0 || index >= len(s.choices) {
		return fmt.Errorf("%w: value %d out of range [0,%d)", ErrInvalidConfiguration, index, len(s.choices))
	}
	s.overlay.Cancel()
	s.overlay.committed = index
	s.overlay.sel.MoveCursor(index)
	return nil
}

// Rewind wraps pending-cursor movement past either edge.
func (s *Select) Rewind(rewind bool) *Select {
	if rewind {
		s.overlay.sel.policy = Rewind
	} else {
		s.overlay.sel.policy = Clamp
	}
	return s
}

// Style sets the base style.
func (s *Select) Style(st Style) *Select {
	s.style = st
	return s
}

// Highlight sets the pending choice style in the open list.
func (s *Select) Highlight(st Style) *Select {
	s.highlight = st
	return s
}

// IsOpen reports whether the drop-down is open.
func (s *Select) IsOpen() bool { return s.overlay.Open() }

// SetSize implements Widget. One row shows the current choice; the rest of
// the height is the drop-down viewport.
func (s *Select) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	s.width = width
	drop := height - 1
	if drop < 1 {
		drop = 1
	}
	return s.overlay.SetHeight(drop)
}

// Perform implements Widget. Movement while closed is a no-op: the
// drop-down must be opened with Submit first.
func (s *Select) Perform(cmd Cmd) Result {
	switch c := cmd.(type) {
	case Move:
		return s.overlay.MoveBy(c.Delta, c.Step)
	case Scroll:
		return s.overlay.MoveBy(c.Delta, s.overlay.sel.Height())
	case Jump:
		return s.overlay.MoveBy(jumpDelta(c.To), 1)
	case Submit:
		return s.overlay.Submit()
	case Cancel:
		return s.overlay.Cancel()
	}
	return Unchanged{}
}

// Blur implements Blurrable: losing focus always cancels, never confirms.
func (s *Select) Blur() {
	s.overlay.Blur()
}

// State implements Widget: the committed choice while closed, nothing
// while the selection is still provisional.
func (s *Select) State() State {
	if idx, ok := s.overlay.State(); ok {
		return IndexState(idx)
	}
	return NoState{}
}

// View implements Widget.
func (s *Select) View() string {
	current := ""
	if i := s.overlay.Pending(); i < len(s.choices) {
		current = s.choices[i]
	}
	head := renderSpans(truncateSpans([]Span{{Text: "[ " + current + " ]", Style: s.style}}, s.width))
	if !s.overlay.Open() {
		return head
	}
	start, end := s.overlay.Selection().VisibleRange()
	lines := make([]string, 0, end-start+1)
	lines = append(lines, head)
	pad := spaces(displayWidth(s.marker))
	for i := start; i < end; i++ {
		choice := truncateSpans([]Span{{Text: s.choices[i], Style: s.style}}, s.width-displayWidth(s.marker))
		if i == s.overlay.Pending() {
			lines = append(lines, lipStyle(s.highlight).Render(s.marker)+renderSpans(restyle(choice, s.highlight)))
		} else {
			lines = append(lines, pad+renderSpans(choice))
		}
	}
	return joinLines(lines)
}
