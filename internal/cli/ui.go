package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/paraflow/pkg/flow"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // primary actions
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
	colorBlue  = lipgloss.Color("75")  // commands
	colorWhite = lipgloss.Color("255") // values
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

// categoryColors mirror the node fills of the rendered flowchart.
var categoryColors = map[flow.Category]lipgloss.Color{
	flow.Terminal: lipgloss.Color("#FF6B6B"),
	flow.Process:  lipgloss.Color("#4ECDC4"),
	flow.Decision: lipgloss.Color("#FFD166"),
	flow.IO:       lipgloss.Color("#A5D8FF"),
}

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printStats prints flowchart statistics on a single line.
func printStats(stepCount int, width, height float64, cached bool) {
	parts := []string{
		fmt.Sprintf("%d steps", stepCount),
		fmt.Sprintf("%s×%s px", formatNum(width), formatNum(height)),
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line + StyleDim.Render(" · ") + statusStyle.Render(status))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Steps Table
// =============================================================================

// categoryLabel renders a category name in its flowchart color.
func categoryLabel(c flow.Category) string {
	return lipgloss.NewStyle().Foreground(categoryColors[c]).Render(c.String())
}

// stepsTable renders steps as a bordered table. Decision nesting is shown
// by indenting the text.
func stepsTable(steps []flow.Step) string {
	rows := make([][]string, len(steps))
	for i, s := range steps {
		indent := strings.Repeat("  ", max(s.Depth, 0))
		rows[i] = []string{strconv.Itoa(i + 1), categoryLabel(s.Category), strconv.Itoa(s.Depth), indent + s.Text}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Category", "Depth", "Text").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 || col == 2 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func printSteps(w io.Writer, steps []flow.Step) {
	if len(steps) == 0 {
		fmt.Fprintln(w, StyleDim.Render("no steps"))
		return
	}
	fmt.Fprintln(w, stepsTable(steps))
}

// formatNum prints whole numbers without a fraction.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
