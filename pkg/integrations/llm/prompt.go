package llm

import (
	"strings"
)

// SystemPrompt instructs the model to answer with one plain paragraph.
const SystemPrompt = `You describe processes as a single plain-text paragraph of short imperative sentences.
The first sentence starts with "Start". The last sentence is "End."
Phrase every branch as a sentence beginning with "If" or "Check if", and the alternative with "Otherwise".
Use "read", "input", "print" or "write" for steps that take input or produce output.
Do not use lists, headings, markdown, or quotes. Use at most 12 sentences.`

func userPrompt(topic string) string {
	return "Describe this process: " + topic
}

// Paragraph normalizes a model reply into a single paragraph. Code fences,
// list markers and surrounding quotes are dropped; whitespace is collapsed.
func Paragraph(reply string) string {
	var parts []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.TrimLeft(line, "-*#> ")
		parts = append(parts, line)
	}
	p := strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	return strings.Trim(p, `"'`+"“”")
}
