package tuikit

import "sort"

// Checkbox is a multi-choice group: a cursor moves over the choices and
// Toggle flips the entry under it. The reported state is the sorted set of
// checked indexes.
type Checkbox struct {
	choices   []string
	checked   map[int]bool
	sel       Selection
	width     int
	style     Style
	highlight Style
}

// NewCheckbox creates a checkbox group with nothing checked.
func NewCheckbox(choices ...string) *Checkbox {
	sel, _ := NewSelection(len(choices), 1, Clamp)
	return &Checkbox{
		choices:   choices,
		checked:   make(map[int]bool),
		sel:       sel,
		style:     DefaultStyle(),
		highlight: DefaultStyle().Inverse(),
	}
}

// SetChoices replaces the choice set; checks on removed entries are
// dropped.
func (c *Checkbox) SetChoices(choices ...string) *Checkbox {
	c.choices = choices
	c.sel.SetLength(len(choices))
	for i := range c.checked {
		if i >= len(choices) {
			delete(c.checked, i)
		}
	}
	return c
}

// Check marks the given indexes as checked, ignoring out-of-range ones.
func (c *Checkbox) Check(indexes ...int) *Checkbox {
	for _, i := range indexes {
		if i >= 0 && i < len(c.choices) {
			c.checked[i] = true
		}
	}
	return c
}

// Rewind wraps cursor movement past either edge to the opposite edge.
func (c *Checkbox) Rewind(rewind bool) *Checkbox {
	if rewind {
		c.sel.policy = Rewind
	} else {
		c.sel.policy = Clamp
	}
	return c
}

// Style sets the base choice style.
func (c *Checkbox) Style(s Style) *Checkbox {
	c.style = s
	return c
}

// Highlight sets the cursor choice style.
func (c *Checkbox) Highlight(s Style) *Checkbox {
	c.highlight = s
	return c
}

// Checked returns the sorted checked indexes.
func (c *Checkbox) Checked() []int {
	out := make([]int, 0, len(c.checked))
	for i, on := range c.checked {
		if on {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}

// SetSize implements Widget.
func (c *Checkbox) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	c.width = width
	return nil
}

// Perform implements Widget.
func (c *Checkbox) Perform(cmd Cmd) Result {
	switch cm := cmd.(type) {
	case Move:
		return c.moved(c.sel.MoveBy(cm.Delta, cm.Step))
	case Jump:
		return c.moved(c.sel.MoveBy(jumpDelta(cm.To), 1))
	case Toggle:
		if len(c.choices) == 0 {
			return Unchanged{}
		}
		cur := c.sel.Cursor()
		if c.checked[cur] {
			delete(c.checked, cur)
		} else {
			c.checked[cur] = true
		}
		return Changed{State: c.State()}
	case Submit:
		if len(c.choices) == 0 {
			return Unchanged{}
		}
		return Submitted{State: c.State()}
	}
	return Unchanged{}
}

func (c *Checkbox) moved(moved bool) Result {
	if !moved {
		return Unchanged{}
	}
	return Changed{State: c.State()}
}

// State implements Widget: the sorted set of checked indexes.
func (c *Checkbox) State() State {
	if len(c.choices) == 0 {
		return NoState{}
	}
	return IndexSetState(c.Checked())
}

// View implements Widget: choices side by side, checked entries marked,
// the cursor highlighted.
func (c *Checkbox) View() string {
	out := ""
	for i, choice := range c.choices {
		if i > 0 {
			out += " "
		}
		mark := "[ ] "
		if c.checked[i] {
			mark = "[x] "
		}
		if i == c.sel.Cursor() {
			out += lipStyle(c.highlight).Render(mark + choice)
		} else {
			out += lipStyle(c.style).Render(mark + choice)
		}
	}
	return out
}
