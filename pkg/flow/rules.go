package flow

import "regexp"

var (
	startPattern    = regexp.MustCompile(`(?i)start|begin`)
	endPattern      = regexp.MustCompile(`(?i)end|stop|finish`)
	decisionPattern = regexp.MustCompile(`(?i)if\s|when\s|check\s`)
	ioPattern       = regexp.MustCompile(`(?i)input|output|read|write|print`)
	elsePattern     = regexp.MustCompile(`(?i)else|otherwise`)
)

// position describes where a sentence sits in its paragraph.
type position struct {
	index, count int
}

func (p position) first() bool { return p.index == 0 }
func (p position) last() bool  { return p.index == p.count-1 }

// rule maps a predicate to the category it assigns.
type rule struct {
	name     string
	match    func(p position, sentence string) bool
	category Category
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{
		name:     "start",
		match:    func(p position, s string) bool { return p.first() && startPattern.MatchString(s) },
		category: Terminal,
	},
	{
		name:     "end",
		match:    func(p position, s string) bool { return p.last() && endPattern.MatchString(s) },
		category: Terminal,
	},
	{
		name:     "decision",
		match:    func(_ position, s string) bool { return decisionPattern.MatchString(s) },
		category: Decision,
	},
	{
		name:     "io",
		match:    func(_ position, s string) bool { return ioPattern.MatchString(s) },
		category: IO,
	},
}

// classify returns the category of the first matching rule, or [Process].
func classify(p position, sentence string) Category {
	for _, r := range rules {
		if r.match(p, sentence) {
			return r.category
		}
	}
	return Process
}

// closesBranch reports whether a sentence leaves the current decision branch.
func closesBranch(sentence string) bool {
	return elsePattern.MatchString(sentence)
}
