package tuikit

import tea "github.com/charmbracelet/bubbletea"

// CmdMsg carries one decoded widget command through a bubbletea program.
// Translating key events into commands is the program's policy, not the
// adapter's.
type CmdMsg struct {
	Cmd Cmd
}

// Model adapts a Widget to the bubbletea interface: window sizes flow into
// SetSize, CmdMsg values into Perform, terminal blur into Blur. The result
// of the latest command is kept for the program to inspect.
type Model struct {
	Widget Widget
	Last   Result
}

// NewModel wraps a widget for use in a bubbletea program.
func NewModel(w Widget) Model {
	return Model{Widget: w, Last: Unchanged{}}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			m.Widget.SetSize(msg.Width, msg.Height)
		}
	case CmdMsg:
		m.Last = m.Widget.Perform(msg.Cmd)
	case tea.BlurMsg:
		if b, ok := m.Widget.(Blurrable); ok {
			b.Blur()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return m.Widget.View()
}
