package ui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m pickerModel, keys ...string) pickerModel {
	for _, k := range keys {
		next, _ := m.Update(keyPress(k))
		m = next.(pickerModel)
	}

	return m
}

func TestPickerNavigation(t *testing.T) {
	m := newPickerModel([]string{"a.wav", "b.wav", "c.wav"})

	if m.cursor != 0 {
		t.Fatalf("initial cursor = %d, want 0", m.cursor)
	}

	m = press(m, "down", "j")
	if m.cursor != 2 {
		t.Errorf("cursor after two downs = %d, want 2", m.cursor)
	}

	// Already at the bottom, the cursor must not run off the list.
	m = press(m, "down")
	if m.cursor != 2 {
		t.Errorf("cursor past last entry = %d, want 2", m.cursor)
	}

	m = press(m, "up", "k", "up")
	if m.cursor != 0 {
		t.Errorf("cursor back at top = %d, want 0", m.cursor)
	}
}

func TestPickerToggleSelection(t *testing.T) {
	m := newPickerModel([]string{"a.wav", "b.wav", "c.wav"})

	m = press(m, " ", "down", "down", " ")
	if want := []string{"a.wav", "c.wav"}; !reflect.DeepEqual(m.selection(), want) {
		t.Errorf("selection() = %v, want %v", m.selection(), want)
	}

	// Space on an already-selected entry removes it.
	m = press(m, " ")
	if want := []string{"a.wav"}; !reflect.DeepEqual(m.selection(), want) {
		t.Errorf("selection() after toggle off = %v, want %v", m.selection(), want)
	}
}

func TestPickerConfirm(t *testing.T) {
	m := newPickerModel([]string{"a.wav"})

	m = press(m, " ", "enter")
	if !m.confirmed {
		t.Error("enter did not confirm the selection")
	}
	if m.cancelled {
		t.Error("enter marked the picker cancelled")
	}
}

func TestPickerCancelKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := press(newPickerModel([]string{"a.wav"}), key)

			if !m.cancelled {
				t.Errorf("%q did not cancel the picker", key)
			}
		})
	}
}

func TestPickerView(t *testing.T) {
	m := newPickerModel([]string{"kick.wav", "snare.wav"})
	m = press(m, " ")

	view := m.View()
	for _, want := range []string{"kick.wav", "snare.wav", "[x]", "[ ]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestWavFilesIn(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "a.WAV", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.wav"), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	files, err := wavFilesIn(dir)
	if err != nil {
		t.Fatalf("wavFilesIn() error = %v", err)
	}

	// Case-insensitive match, directories skipped, sorted by name.
	if want := []string{"a.WAV", "b.wav"}; !reflect.DeepEqual(files, want) {
		t.Errorf("wavFilesIn() = %v, want %v", files, want)
	}
}

func TestDialogDismissesOnAnyKey(t *testing.T) {
	m := dialogModel{kind: dialogInfo, title: "Done", body: "2 files converted"}

	_, cmd := m.Update(keyPress("x"))
	if cmd == nil {
		t.Fatal("key press did not quit the dialog")
	}
}

func TestDialogView(t *testing.T) {
	m := dialogModel{kind: dialogError, title: "Conversion failed", body: "stereo is not supported"}

	view := m.View()
	for _, want := range []string{"Conversion failed", "stereo is not supported", "press any key"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
