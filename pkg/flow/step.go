package flow

import (
	"encoding/json"
	"fmt"
)

// Category classifies a step and selects the shape used to draw it.
type Category int

const (
	Process Category = iota
	Terminal
	Decision
	IO
)

var categoryNames = [...]string{
	Process:  "process",
	Terminal: "terminal",
	Decision: "decision",
	IO:       "io",
}

// String returns the lowercase category name ("process", "terminal", ...).
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory is the inverse of [Category.String].
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), nil
		}
	}
	return Process, fmt.Errorf("unknown category: %q", s)
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Step is one flowchart node derived from one sentence.
//
// Width and Height are zero after segmentation; the layout package fills
// them in exactly once.
type Step struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Depth    int      `json:"depth"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
}

// Categories returns the category of each step, in order.
func Categories(steps []Step) []Category {
	out := make([]Category, len(steps))
	for i, s := range steps {
		out[i] = s.Category
	}
	return out
}
