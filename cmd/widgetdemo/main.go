// Command widgetdemo exercises the widget cores inside a bubbletea
// program. Key decoding happens here, in the host: widgets only ever see
// abstract commands.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tuikit"
)

type model struct {
	list   *tuikit.List
	choice *tuikit.Select
	checks *tuikit.Checkbox
	gauge  *tuikit.ProgressBar
	status string
	focus  int // 0 list, 1 select, 2 checkbox
}

func newModel() model {
	theme := tuikit.DefaultTheme()
	list := tuikit.NewList().
		Scroll(true).
		Rewind(true).
		Highlight(theme.Highlight.Style()).
		SetRows(
			tuikit.Row{tuikit.Bold("nimbus"), tuikit.Plain("  object storage proxy")},
			tuikit.Row{tuikit.Bold("quill"), tuikit.Plain("   markdown renderer")},
			tuikit.Row{tuikit.Bold("hodge"), tuikit.Plain("   build cache daemon")},
			tuikit.Row{tuikit.Bold("crater"), tuikit.Plain("  log ingestion relay")},
			tuikit.Row{tuikit.Bold("fathom"), tuikit.Plain("  depth-first profiler")},
		)
	choice := tuikit.NewSelect("lemon", "strawberry", "vanilla", "chocolate").
		Rewind(true).
		Highlight(theme.Highlight.Style())
	checks := tuikit.NewCheckbox("vim", "emacs", "acme").
		Highlight(theme.Highlight.Style())
	gauge := tuikit.NewProgressBar().Label("indexing")
	gauge.SetRatio(0.4)
	return model{list: list, choice: choice, checks: checks, gauge: gauge}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) focused() tuikit.Widget {
	switch m.focus {
	case 1:
		return m.choice
	case 2:
		return m.checks
	}
	return m.list
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, 5)
		m.choice.SetSize(msg.Width, 5)
		m.checks.SetSize(msg.Width, 1)
		m.gauge.SetSize(msg.Width, 1)
		return m, nil
	case tea.KeyMsg:
		var cmd tuikit.Cmd
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			if b, ok := m.focused().(tuikit.Blurrable); ok {
				b.Blur()
			}
			m.focus = (m.focus + 1) % 3
			return m, nil
		case "up", "k":
			cmd = tuikit.Move{Delta: -1}
		case "down", "j":
			cmd = tuikit.Move{Delta: 1}
		case "pgup":
			cmd = tuikit.Scroll{Delta: -1}
		case "pgdown":
			cmd = tuikit.Scroll{Delta: 1}
		case "home":
			cmd = tuikit.Jump{To: tuikit.Begin}
		case "end":
			cmd = tuikit.Jump{To: tuikit.End}
		case " ":
			cmd = tuikit.Toggle{}
		case "enter":
			cmd = tuikit.Submit{}
		case "esc":
			cmd = tuikit.Cancel{}
		default:
			return m, nil
		}
		switch res := m.focused().Perform(cmd).(type) {
		case tuikit.Changed:
			m.status = fmt.Sprintf("changed: %v", res.State)
		case tuikit.Submitted:
			m.status = fmt.Sprintf("submitted: %v", res.State)
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	names := []string{"list", "select", "checkbox"}
	return fmt.Sprintf(
		"focus: %s (tab to cycle, q to quit)\n\n%s\n\n%s\n\n%s\n\n%s\n\n%s\n",
		names[m.focus],
		m.list.View(),
		m.choice.View(),
		m.checks.View(),
		m.gauge.View(),
		m.status,
	)
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
