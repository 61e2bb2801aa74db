// Package fonts provides the typeface used to measure and draw flowchart labels.
//
// The Go Regular font ships inside golang.org/x/image, so labels measure and
// render identically on every machine without any system font lookup.
package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultSize is the label size in points (16px at 72 DPI).
const DefaultSize = 16.0

// FontFamily is the CSS font-family used by SVG output.
const FontFamily = "Go, Arial, Helvetica, sans-serif"

var (
	parsed     *truetype.Font
	parseErr   error
	parsedOnce sync.Once
)

// Font returns the parsed Go Regular font. The TTF is parsed once.
func Font() (*truetype.Font, error) {
	parsedOnce.Do(func() {
		parsed, parseErr = truetype.Parse(goregular.TTF)
		if parseErr != nil {
			parseErr = fmt.Errorf("parse go regular: %w", parseErr)
		}
	})
	return parsed, parseErr
}

// Face returns a new face of the given point size. Sizes <= 0 use [DefaultSize].
// Faces are not safe for concurrent use; create one per goroutine.
func Face(size float64) (font.Face, error) {
	f, err := Font()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Metric measures strings with a fixed face. It is safe for concurrent use.
type Metric struct {
	mu     sync.Mutex
	face   font.Face
	size   float64
	height float64
}

// NewMetric creates a metric for the given point size.
func NewMetric(size float64) (*Metric, error) {
	if size <= 0 {
		size = DefaultSize
	}
	face, err := Face(size)
	if err != nil {
		return nil, err
	}
	return &Metric{
		face:   face,
		size:   size,
		height: float64(face.Metrics().Height) / 64,
	}, nil
}

// MeasureString returns the advance width and line height of s.
func (m *Metric) MeasureString(s string) (w, h float64) {
	m.mu.Lock()
	adv := font.MeasureString(m.face, s)
	m.mu.Unlock()
	return float64(adv) / 64, m.height
}

// Size returns the point size the metric was built for.
func (m *Metric) Size() float64 { return m.size }
