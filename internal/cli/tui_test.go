package cli

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/paraflow/pkg/flow"
)

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		if r == ' ' {
			m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestEditorStartsWithLayout(t *testing.T) {
	m := NewEditorModel(flow.Sample, 16, nil)

	if got := len(m.Steps()); got != 6 {
		t.Fatalf("steps = %d, want 6", got)
	}
	w, h := m.Canvas()
	if w < 120 || h <= 80 {
		t.Errorf("canvas = %v×%v, want a non-empty layout", w, h)
	}
}

func TestEditorRelayoutsOnEdit(t *testing.T) {
	var m tea.Model = NewEditorModel("", 16, nil)

	em := m.(EditorModel)
	if len(em.Steps()) != 0 {
		t.Fatalf("empty buffer should have no steps")
	}
	if w, h := em.Canvas(); w != 380 || h != 80 {
		t.Errorf("empty canvas = %v×%v, want 380×80", w, h)
	}

	m = typeText(m, "Start. Check if x. End.")
	em = m.(EditorModel)
	want := []flow.Category{flow.Terminal, flow.Decision, flow.Terminal}
	got := flow.Categories(em.Steps())
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("categories[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEditorCursorEditing(t *testing.T) {
	var m tea.Model = NewEditorModel("Start. End.", 16, nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = typeText(m, "Go. ")
	if got := m.(EditorModel).Text(); got != "Go. Start. End." {
		t.Errorf("insert at home: %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.(EditorModel).Text(); got != "Go. Start. End" {
		t.Errorf("backspace at end: %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := m.(EditorModel).Text(); got != "" {
		t.Errorf("ctrl+u should clear, got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := m.(EditorModel).Text(); got != flow.Sample {
		t.Errorf("ctrl+r should restore the sample, got %q", got)
	}
}

func TestEditorEditsDoNotAlias(t *testing.T) {
	var m tea.Model = NewEditorModel("Start. End.", 16, nil)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	before := m

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	if got := m.(EditorModel).Text(); got != "tart. End." {
		t.Errorf("delete at home: %q", got)
	}
	if got := before.(EditorModel).Text(); got != "Start. End." {
		t.Errorf("delete changed an earlier model: %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	before = m
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.(EditorModel).Text(); got != "tart. End" {
		t.Errorf("backspace at end: %q", got)
	}
	if got := before.(EditorModel).Text(); got != "tart. End." {
		t.Errorf("backspace changed an earlier model: %q", got)
	}
}

func TestEditorSave(t *testing.T) {
	var saved string
	save := func(text string) (string, error) {
		saved = text
		return "flowchart.png", nil
	}
	var m tea.Model = NewEditorModel("Start. End.", 16, save)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s should return a command")
	}
	m, _ = m.Update(cmd())

	if saved != "Start. End." {
		t.Errorf("saved text = %q", saved)
	}
	if view := m.View(); !strings.Contains(view, "flowchart.png") {
		t.Errorf("view should report the saved path:\n%s", view)
	}
}

func TestEditorSaveError(t *testing.T) {
	save := func(string) (string, error) { return "", errors.New("disk full") }
	var m tea.Model = NewEditorModel("Start. End.", 16, save)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = m.Update(cmd())
	if view := m.View(); !strings.Contains(view, "disk full") {
		t.Errorf("view should show the save error:\n%s", view)
	}
}

func TestEditorQuit(t *testing.T) {
	m := NewEditorModel("", 16, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should return tea.Quit")
	}
}

func TestEditorView(t *testing.T) {
	m := NewEditorModel(flow.Sample, 16, nil)
	view := m.View()
	for _, want := range []string{"Paraflow", "decision", "canvas", "ctrl+s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
