package tuikit

import "fmt"

// ProgressBar is a horizontal gauge filled to a ratio in [0, 1], with an
// optional label rendered after the bar.
type ProgressBar struct {
	ratio  float64
	label  string
	width  int
	filled rune
	empty  rune
	style  Style
}

// NewProgressBar creates an empty gauge.
func NewProgressBar() *ProgressBar {
	return &ProgressBar{
		filled: '█',
		empty:  '░',
		style:  DefaultStyle(),
	}
}

// SetRatio sets the fill ratio. A ratio outside [0, 1] is a configuration
// bug.
func (p *ProgressBar) SetRatio(ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return fmt.Errorf("%w: ratio %v outside [0,1]", ErrInvalidConfiguration, ratio)
	}
	p.ratio = ratio
	return nil
}

// Ratio returns the current fill ratio.
func (p *ProgressBar) Ratio() float64 { return p.ratio }

// Label sets the text shown after the bar.
func (p *ProgressBar) Label(label string) *ProgressBar {
	p.label = label
	return p
}

// Chars sets the filled and empty bar characters.
func (p *ProgressBar) Chars(filled, empty rune) *ProgressBar {
	p.filled = filled
	p.empty = empty
	return p
}

// Style sets the bar style.
func (p *ProgressBar) Style(s Style) *ProgressBar {
	p.style = s
	return p
}

// SetSize implements Widget; a gauge is one row tall.
func (p *ProgressBar) SetSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errSize(width, height)
	}
	p.width = width
	return nil
}

// Perform implements Widget; a gauge reacts to no commands.
func (p *ProgressBar) Perform(Cmd) Result {
	return Unchanged{}
}

// State implements Widget.
func (p *ProgressBar) State() State {
	return NoState{}
}

// View implements Widget.
func (p *ProgressBar) View() string {
	barWidth := p.width - displayWidth(p.label)
	if p.label != "" {
		barWidth-- // separating space
	}
	if barWidth < 1 {
		barWidth = 1
	}
	fill := int(float64(barWidth) * p.ratio)
	if fill > barWidth {
		fill = barWidth
	}
	bar := make([]rune, barWidth)
	for i := range bar {
		if i < fill {
			bar[i] = p.filled
		} else {
			bar[i] = p.empty
		}
	}
	out := lipStyle(p.style).Render(string(bar))
	if p.label != "" {
		out += " " + lipStyle(p.style).Render(p.label)
	}
	return out
}
