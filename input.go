package tuikit

import "github.com/mattn/go-runewidth"

// Input is a single-line text editor. Its reported state is the text
// value; the cursor is positioned in display cells so wide characters
// place it correctly.
type Input struct {
	value       []rune
	cursor      int // rune index into value
	width       int
	style       Style
	cursorStyle Style
}

// NewInput creates an empty input.
func NewInput() *Input {
	return &Input{
		style:       DefaultStyle(),
		cursorStyle: DefaultStyle().Inverse(),
	}
}

// SetValue replaces the text, placing the cursor at the end.
func (in *Input) SetValue(value string) *Input {
	in.value = []rune(value)
	in.cursor = len(in.value)
	return in
}

// Value returns the current text.
func (in *Input) Value() string { return string(in.value) }

// Style sets the text style.
func (in *Input) Style(s Style) *Input {
	in.style = s
	return in
}

// CursorColumn returns the display column of the cursor, measured in
// terminal cells over the runes preceding it.
func (in *Input) CursorColumn() int {
	return runewidth.StringWidth(string(in.value[:in.cursor]))
}

// SetSize implements Widget; an input is one row tall.
func (in *Input) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	in.width = width
	return nil
}

// Perform implements Widget. Cursor movement alone does not change the
// value, so it reports Unchanged; edits report Changed with the new text.
func (in *Input) Perform(cmd Cmd) Result {
	switch c := cmd.(type) {
	case Type:
		in.value = append(in.value[:in.cursor], append([]rune{c.Rune}, in.value[in.cursor:]...)...)
		in.cursor++
		return Changed{State: in.State()}
	case Erase:
		if c.Back {
			if in.cursor == 0 {
				return Unchanged{}
			}
			in.value = append(in.value[:in.cursor-1], in.value[in.cursor:]...)
			in.cursor--
		} else {
			if in.cursor >= len(in.value) {
				return Unchanged{}
			}
			in.value = append(in.value[:in.cursor], in.value[in.cursor+1:]...)
		}
		return Changed{State: in.State()}
	case Move:
		switch c.Delta {
		case JumpBegin:
			in.cursor = 0
		case JumpEnd:
			in.cursor = len(in.value)
		default:
			step := c.Step
			if step == 0 {
				step = 1
			}
			in.cursor += c.Delta * step
			in.clampCursor()
		}
		return Unchanged{}
	case Jump:
		if c.To == End {
			in.cursor = len(in.value)
		} else {
			in.cursor = 0
		}
		return Unchanged{}
	case Submit:
		return Submitted{State: in.State()}
	}
	return Unchanged{}
}

func (in *Input) clampCursor() {
	if in.cursor < 0 {
		in.cursor = 0
	}
	if in.cursor > len(in.value) {
		in.cursor = len(in.value)
	}
}

// State implements Widget: the current text value.
func (in *Input) State() State {
	return TextState(string(in.value))
}

// View implements Widget, rendering the value with the cursor cell
// inverted.
func (in *Input) View() string {
	before := string(in.value[:in.cursor])
	at := " "
	after := ""
	if in.cursor < len(in.value) {
		at = string(in.value[in.cursor])
		after = string(in.value[in.cursor+1:])
	}
	return lipStyle(in.style).Render(before) +
		lipStyle(in.cursorStyle).Render(at) +
		lipStyle(in.style).Render(after)
}
