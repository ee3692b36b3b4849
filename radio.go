package tuikit

// Radio is a single-choice group laid out horizontally. Movement changes
// the choice immediately; Submit re-emits the current choice as a
// confirmation.
type Radio struct {
	choices   []string
	sel       Selection
	width     int
	style     Style
	highlight Style
}

// NewRadio creates a radio group with the first choice selected.
func NewRadio(choices ...string) *Radio {
	sel, _ := NewSelection(len(choices), 1, Clamp)
	return &Radio{
		choices:   choices,
		sel:       sel,
		style:     DefaultStyle(),
		highlight: DefaultStyle().Inverse(),
	}
}

// SetChoices replaces the choice set, clamping the selection into range.
func (r *Radio) SetChoices(choices ...string) *Radio {
	r.choices = choices
	r.sel.SetLength(len(choices))
	return r
}

// Rewind wraps movement past either edge to the opposite edge.
func (r *Radio) Rewind(rewind bool) *Radio {
	if rewind {
		r.sel.policy = Rewind
	} else {
		r.sel.policy = Clamp
	}
	return r
}

// Style sets the base choice style.
func (r *Radio) Style(s Style) *Radio {
	r.style = s
	return r
}

// Highlight sets the selected choice style.
func (r *Radio) Highlight(s Style) *Radio {
	r.highlight = s
	return r
}

// Value returns the selected choice index.
func (r *Radio) Value() int { return r.sel.Cursor() }

// SetSize implements Widget.
func (r *Radio) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	r.width = width
	return nil
}

// Perform implements Widget. Unlike the select widget there is no
// provisional state: every move commits.
func (r *Radio) Perform(cmd Cmd) Result {
	switch c := cmd.(type) {
	case Move:
		return r.moved(r.sel.MoveBy(c.Delta, c.Step))
	case Jump:
		return r.moved(r.sel.MoveBy(jumpDelta(c.To), 1))
	case Submit:
		if len(r.choices) == 0 {
			return Unchanged{}
		}
		return Submitted{State: IndexState(r.sel.Cursor())}
	}
	return Unchanged{}
}

func (r *Radio) moved(moved bool) Result {
	if !moved {
		return Unchanged{}
	}
	return Changed{State: r.State()}
}

// State implements Widget: always the choice index when non-empty.
func (r *Radio) State() State {
	if idx, ok := r.sel.State(true); ok {
		return IndexState(idx)
	}
	return NoState{}
}

// View implements Widget: choices side by side with the selection
// highlighted.
func (r *Radio) View() string {
	out := ""
	for i, choice := range r.choices {
		if i > 0 {
			out += " "
		}
		if i == r.sel.Cursor() {
			out += lipStyle(r.highlight).Render("(•) " + choice)
		} else {
			out += lipStyle(r.style).Render("( ) " + choice)
		}
	}
	return out
}
