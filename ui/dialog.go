// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dialogKind int

const (
	dialogInfo dialogKind = iota
	dialogError
)

var (
	infoTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	errorTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)
)

// dialogModel is a modal message box. Any key dismisses it.
type dialogModel struct {
	kind  dialogKind
	title string
	body  string
}

func (m dialogModel) Init() tea.Cmd {
	return nil
}

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return m, tea.Quit
	}

	return m, nil
}

func (m dialogModel) View() string {
	title := infoTitleStyle.Render(m.title)
	if m.kind == dialogError {
		title = errorTitleStyle.Render(m.title)
	}

	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(m.body)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("press any key to continue"))

	return dialogBoxStyle.Render(b.String()) + "\n"
}

func showDialog(kind dialogKind, title, body string) error {
	m := dialogModel{kind: kind, title: title, body: body}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("running dialog: %w", err)
	}

	return nil
}

// ShowInfo blocks on an informational message box until a key is
// pressed.
func ShowInfo(title, body string) error {
	return showDialog(dialogInfo, title, body)
}

// ShowError blocks on an error message box until a key is pressed.
func ShowError(title, body string) error {
	return showDialog(dialogError, title, body)
}
