// SPDX-License-Identifier: EPL-2.0

package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86")).
				MarginBottom(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// pickerModel is the multi-select file list. Space toggles the entry
// under the cursor, enter confirms the whole selection.
type pickerModel struct {
	files     []string
	cursor    int
	selected  map[int]struct{}
	confirmed bool
	cancelled bool
}

func newPickerModel(files []string) pickerModel {
	return pickerModel{
		files:    files,
		selected: make(map[int]struct{}),
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.files)-1 {
			m.cursor++
		}
	case " ":
		if _, on := m.selected[m.cursor]; on {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
	case "enter":
		m.confirmed = true
		return m, tea.Quit
	}

	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(pickerTitleStyle.Render("Select WAV files"))
	b.WriteString("\n\n")

	for i, file := range m.files {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		line := fmt.Sprintf("[ ] %s", file)
		if _, on := m.selected[i]; on {
			line = selectedStyle.Render(fmt.Sprintf("[x] %s", file))
		}

		b.WriteString(cursor)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space: toggle  enter: convert  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// selection returns the chosen files in list order.
func (m pickerModel) selection() []string {
	var picked []string
	for i, file := range m.files {
		if _, on := m.selected[i]; on {
			picked = append(picked, file)
		}
	}

	return picked
}

// wavFilesIn lists the .wav files directly under dir, sorted by name.
// The extension match is case-insensitive.
func wavFilesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}

// SelectWAVFiles shows an interactive picker over the .wav files in
// dir and returns the paths the user confirmed. Leaving the picker
// without confirming, or confirming nothing, returns ErrCancelled.
func SelectWAVFiles(dir string) ([]string, error) {
	files, err := wavFilesIn(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoWAVFiles
	}

	final, err := tea.NewProgram(newPickerModel(files)).Run()
	if err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(pickerModel)
	if !ok {
		return nil, ErrCancelled
	}
	if m.cancelled || !m.confirmed {
		return nil, ErrCancelled
	}

	picked := m.selection()
	if len(picked) == 0 {
		return nil, ErrCancelled
	}

	paths := make([]string, len(picked))
	for i, file := range picked {
		paths[i] = filepath.Join(dir, file)
	}

	return paths, nil
}
