package layout

import "strings"

// LineHeight is the height of one wrapped label line.
const LineHeight = 20.0

// Metric reports the rendered width of a string. The returned height is
// ignored; line height is fixed at [LineHeight].
type Metric interface {
	MeasureString(s string) (w, h float64)
}

// Measurement is the wrapped form of a label.
type Measurement struct {
	Width  float64
	Height float64
	Lines  []string
}

// Measure wraps text onto lines no wider than maxWidth. Blank text yields
// no lines and a zero-size measurement.
func Measure(text string, maxWidth float64, m Metric) Measurement {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		candidate := line + " " + word
		if w, _ := m.MeasureString(candidate); w > maxWidth {
			lines = append(lines, line)
			line = word
		} else {
			line = candidate
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	var width float64
	for _, l := range lines {
		if w, _ := m.MeasureString(l); w > width {
			width = w
		}
	}
	return Measurement{
		Width:  width,
		Height: float64(len(lines)) * LineHeight,
		Lines:  lines,
	}
}
