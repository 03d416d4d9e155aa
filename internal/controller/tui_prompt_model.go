package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type promptKeyMap struct {
	Confirm key.Binding
	Abort   key.Binding
}

func defaultPromptKeys() promptKeyMap {
	return promptKeyMap{
		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("any key", "continue")),
		Abort:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abort")),
	}
}

type promptModel struct {
	message string
	spinner spinner.Model
	keys    promptKeyMap
	done    bool
	aborted bool
}

var (
	promptMessageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	promptHelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newPromptModel(message string) promptModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return promptModel{message: message, spinner: s, keys: defaultPromptKeys()}
}

func (pm promptModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		pm.done = true
		pm.aborted = key.Matches(msg, pm.keys.Abort)

		return pm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

func (pm promptModel) View() string {
	if pm.done {
		return ""
	}

	help := fmt.Sprintf("%s %s • %s %s",
		pm.keys.Confirm.Help().Key, pm.keys.Confirm.Help().Desc,
		pm.keys.Abort.Help().Key, pm.keys.Abort.Help().Desc,
	)

	return fmt.Sprintf("%s %s\n%s\n", pm.spinner.View(), promptMessageStyle.Render(pm.message), promptHelpStyle.Render(help))
}
