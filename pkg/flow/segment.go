package flow

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sample is a demonstration paragraph with a decision and an else branch.
const Sample = "Start the process. First, perform initial setup. Then check if condition A is met. If yes, proceed to step X. Else, perform step Y. Finally, end the process."

var sentenceBreak = regexp.MustCompile(`[.!?]\s+`)

// Sentences splits text after every ".", "!" or "?" that is followed by
// whitespace. Fragments are trimmed and blank fragments are dropped.
func Sentences(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceBreak.FindAllStringIndex(text, -1) {
		out = appendSentence(out, text[start:loc[0]+1])
		start = loc[1]
	}
	return appendSentence(out, text[start:])
}

func appendSentence(out []string, fragment string) []string {
	if s := strings.TrimSpace(fragment); s != "" {
		return append(out, s)
	}
	return out
}

// Segment splits text into classified steps. Empty or blank input yields nil.
func Segment(text string) []Step {
	sentences := Sentences(text)
	if len(sentences) == 0 {
		return nil
	}

	steps := make([]Step, 0, len(sentences))
	depth := 0
	for i, sentence := range sentences {
		sentence = capitalize(sentence)
		category := classify(position{index: i, count: len(sentences)}, sentence)

		if category == Decision {
			depth++
		} else if closesBranch(sentence) {
			depth--
		}

		steps = append(steps, Step{
			Text:     sentence,
			Category: category,
			Depth:    depth,
		})
	}
	return steps
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
