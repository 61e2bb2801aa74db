package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/pipeline"
)

var (
	editorBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	editorCursorStyle = lipgloss.NewStyle().Reverse(true)
	editorErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
)

// savedMsg reports the outcome of a ctrl+s save.
type savedMsg struct {
	path string
	err  error
}

// saveFunc renders text and writes it somewhere, returning the path.
type saveFunc func(text string) (string, error)

// EditorModel is the bubbletea model of the live flowchart editor. Every
// edit re-segments the text and recomputes the layout so the step list and
// canvas size always match the buffer.
type EditorModel struct {
	text     []rune
	cursor   int
	fontSize float64
	save     saveFunc
	width    int

	steps  []flow.Step
	canvas [2]float64
	err    error
	status string
	saving bool
}

// NewEditorModel creates an editor holding text with the cursor at the end.
func NewEditorModel(text string, fontSize float64, save saveFunc) EditorModel {
	m := EditorModel{
		text:     []rune(text),
		fontSize: fontSize,
		save:     save,
		width:    80,
	}
	m.cursor = len(m.text)
	m.relayout()
	return m
}

// Text returns the current buffer.
func (m EditorModel) Text() string { return string(m.text) }

// Steps returns the steps of the current buffer.
func (m EditorModel) Steps() []flow.Step { return m.steps }

// Canvas returns the width and height of the current layout.
func (m EditorModel) Canvas() (float64, float64) { return m.canvas[0], m.canvas[1] }

func (m *EditorModel) relayout() {
	m.steps = flow.Segment(string(m.text))
	l, err := pipeline.BuildFlowchart(m.steps, m.fontSize)
	m.err = err
	if err == nil {
		m.canvas = [2]float64{l.Width, l.Height}
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-4, 20)
		return m, nil

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.status = editorErrorStyle.Render(iconError + " " + msg.err.Error())
		} else {
			m.status = StyleSuccess.Render(iconSuccess+" saved ") + StyleValue.Render(msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	edited := false

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyCtrlS:
		if m.saving || m.save == nil {
			return m, nil
		}
		m.saving = true
		m.status = StyleDim.Render("rendering…")
		text, save := m.Text(), m.save
		return m, func() tea.Msg {
			path, err := save(text)
			return savedMsg{path: path, err: err}
		}
	case tea.KeyCtrlR:
		m.text = []rune(flow.Sample)
		m.cursor = len(m.text)
		edited = true
	case tea.KeyCtrlU:
		m.text = nil
		m.cursor = 0
		edited = true
	case tea.KeyLeft:
		m.cursor = max(m.cursor-1, 0)
	case tea.KeyRight:
		m.cursor = min(m.cursor+1, len(m.text))
	case tea.KeyHome, tea.KeyCtrlA:
		m.cursor = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.cursor = len(m.text)
	case tea.KeyBackspace:
		if m.cursor > 0 {
			m.remove(m.cursor-1, m.cursor)
			m.cursor--
			edited = true
		}
	case tea.KeyDelete:
		if m.cursor < len(m.text) {
			m.remove(m.cursor, m.cursor+1)
			edited = true
		}
	case tea.KeyEnter:
		m.insert([]rune{'\n'})
		edited = true
	case tea.KeySpace:
		m.insert([]rune{' '})
		edited = true
	case tea.KeyRunes:
		m.insert(msg.Runes)
		edited = true
	}

	if edited {
		m.status = ""
		m.relayout()
	}
	return m, nil
}

func (m *EditorModel) insert(rs []rune) {
	text := make([]rune, 0, len(m.text)+len(rs))
	text = append(text, m.text[:m.cursor]...)
	text = append(text, rs...)
	text = append(text, m.text[m.cursor:]...)
	m.text = text
	m.cursor += len(rs)
}

// remove deletes text[i:j] into a new slice; earlier copies of the model
// share the old backing array.
func (m *EditorModel) remove(i, j int) {
	m.text = slices.Delete(slices.Clone(m.text), i, j)
}

func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Paraflow"))
	b.WriteString(StyleDim.Render("  type a process, one sentence per step"))
	b.WriteString("\n\n")

	before, after := string(m.text[:m.cursor]), ""
	under := " "
	if m.cursor < len(m.text) {
		under = string(m.text[m.cursor])
		after = string(m.text[m.cursor+1:])
	}
	if under == "\n" {
		under, after = " ", "\n"+after
	}
	buffer := before + editorCursorStyle.Render(under) + after
	b.WriteString(editorBoxStyle.Width(m.width).Render(buffer))
	b.WriteString("\n\n")

	if len(m.steps) == 0 {
		b.WriteString(StyleDim.Render("  no steps yet"))
		b.WriteString("\n")
	}
	for i, s := range m.steps {
		indent := strings.Repeat("  ", max(s.Depth, 0))
		fmt.Fprintf(&b, "  %s %-9s %s%s\n", StyleDim.Render(fmt.Sprintf("%2d", i+1)), categoryLabel(s.Category), indent, s.Text)
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(editorErrorStyle.Render("layout: " + m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("  canvas %s×%s px · %d steps", formatNum(m.canvas[0]), formatNum(m.canvas[1]), len(m.steps))))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("ctrl+s save PNG  ctrl+r sample  ctrl+u clear  esc quit"))

	return b.String()
}
