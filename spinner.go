package tuikit

// Spinner cycles through a frame sequence; the host advances it with Tick
// on its own cadence.
type Spinner struct {
	frames []string
	frame  int
	label  string
	style  Style
}

// NewSpinner creates a spinner with a braille frame set.
func NewSpinner() *Spinner {
	return &Spinner{
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		style:  DefaultStyle(),
	}
}

// Frames replaces the frame sequence; an empty sequence is ignored.
func (s *Spinner) Frames(frames ...string) *Spinner {
	if len(frames) > 0 {
		s.frames = frames
		s.frame = 0
	}
	return s
}

// Label sets the text shown after the spinner glyph.
func (s *Spinner) Label(label string) *Spinner {
	s.label = label
	return s
}

// Style sets the glyph style.
func (s *Spinner) Style(st Style) *Spinner {
	s.style = st
	return s
}

// Tick advances to the next frame, wrapping at the end.
func (s *Spinner) Tick() {
	s.frame = (s.frame + 1) % len(s.frames)
}

// SetSize implements Widget; a spinner is one cell plus its label.
func (s *Spinner) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	return nil
}

// Perform implements Widget; a spinner reacts to no commands.
func (s *Spinner) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (s *Spinner) State() State {
	return NoState{}
}

// View implements Widget.
func (s *Spinner) View() string {
	out := lipStyle(s.style).Render(s.frames[s.frame])
	if s.label != "" {
		out += " " + s.label
	}
	return out
}
