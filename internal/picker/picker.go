// Package picker provides an interactive list picker built on bubbletea.
// It is used to choose a run/debug target when fzf is not available.
package picker

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user quits without selecting.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("42"))
	helpStyle         = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("241"))
)

type item string

func (i item) FilterValue() string { return string(i) }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	if index == m.Index() {
		fmt.Fprint(w, selectedItemStyle.Render("> "+string(i)))
		return
	}
	fmt.Fprint(w, itemStyle.Render(string(i)))
}

type model struct {
	list   list.Model
	choice string
	done   bool
}

func newModel(title string, options []string) model {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = item(o)
	}

	l := list.New(items, itemDelegate{}, 40, min(len(options)+6, 16))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle

	return model{list: l}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Leave keys alone while the filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if i, ok := m.list.SelectedItem().(item); ok {
				m.choice = string(i)
			}
			m.done = true
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return "\n" + m.list.View()
}

// Choose presents options in an interactive list and returns the selected
// entry. Returns ErrCanceled when the user quits without choosing.
func Choose(title string, options []string) (string, error) {
	if len(options) == 0 {
		return "", errors.New("no options provided")
	}

	p := tea.NewProgram(newModel(title, options))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(model)
	if !ok || strings.TrimSpace(m.choice) == "" {
		return "", ErrCanceled
	}
	return m.choice, nil
}
