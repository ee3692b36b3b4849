package tuikit

// sparkLevels are the eight block glyphs a sparkline scales samples onto.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders a series of samples as a one-row chart. The most
// recent samples that fit the viewport width are shown.
type Sparkline struct {
	data  []float64
	max   float64 // 0 = derive from data
	width int
	style Style
}

// NewSparkline creates a sparkline over the given samples.
func NewSparkline(data ...float64) *Sparkline {
	return &Sparkline{data: data, style: DefaultStyle()}
}

// SetData replaces the sample series.
func (s *Sparkline) SetData(data ...float64) *Sparkline {
	s.data = data
	return s
}

// Max fixes the scale ceiling; without it the largest sample is used.
func (s *Sparkline) Max(max float64) *Sparkline {
	s.max = max
	return s
}

// Style sets the bar style.
func (s *Sparkline) Style(st Style) *Sparkline {
	s.style = st
	return s
}

// SetSize implements Widget; a sparkline is one row tall.
func (s *Sparkline) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	s.width = width
	return nil
}

// Perform implements Widget; a sparkline reacts to no commands.
func (s *Sparkline) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (s *Sparkline) State() State {
	return NoState{}
}

// View implements Widget.
func (s *Sparkline) View() string {
	data := s.data
	if s.width > 0 && len(data) > s.width {
		data = data[len(data)-s.width:]
	}
	ceil := s.max
	if ceil <= 0 {
		for _, v := range data {
			if v > ceil {
				ceil = v
			}
		}
	}
	if ceil <= 0 {
		ceil = 1
	}
	bars := make([]rune, len(data))
	for i, v := range data {
		if v < 0 {
			v = 0
		}
		if v > ceil {
			v = ceil
		}
		level := int(v / ceil * float64(len(sparkLevels)-1))
		bars[i] = sparkLevels[level]
	}
	return lipStyle(s.style).Render(string(bars))
}
