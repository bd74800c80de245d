// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
	numberedLine   = regexp.MustCompile(`^[0-9]+\.`)
)

// convertTXT formats plain text as Markdown. Paragraphs are separated by
// blank lines. Inside a paragraph, short isolated lines without terminal
// punctuation become level-2 headings and short unpunctuated capitalized
// lines become level-3 subheadings; everything else passes through
// unchanged.
func convertTXT(data []byte) (string, error) {
	paragraphs := paragraphSplit.Split(string(data), -1)

	var formatted []string
	for _, para := range paragraphs {
		if strings.TrimSpace(para) == "" {
			continue
		}
		lines := strings.Split(para, "\n")
		processed := make([]string, len(lines))
		for i := range lines {
			processed[i] = classifyLine(lines, i)
		}
		formatted = append(formatted, strings.Join(processed, "\n"))
	}

	return strings.Join(formatted, "\n\n"), nil
}

// classifyLine decides whether line i of a paragraph reads like a heading,
// a subheading, or plain content, and returns it with the matching marker.
//
// A heading is isolated (first line or preceded by a blank line, and last
// line, followed by a blank line, or followed by a long line), shorter than
// 50 characters, does not end in sentence punctuation, and is not a
// numbered-list item. A subheading is shorter than 30 characters, contains
// no punctuation at all, and starts with an upper-case letter.
func classifyLine(lines []string, i int) string {
	line := lines[i]
	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return line
	}

	runes := []rune(stripped)
	last := runes[len(runes)-1]

	prevBlank := i == 0 || strings.TrimSpace(lines[i-1]) == ""
	nextBlankOrLong := i == len(lines)-1 ||
		strings.TrimSpace(lines[i+1]) == "" ||
		len([]rune(strings.TrimSpace(lines[i+1]))) > 50
	isolated := prevBlank && nextBlankOrLong

	if isolated && len(runes) < 50 &&
		!strings.ContainsRune(".!?,;", last) &&
		!numberedLine.MatchString(stripped) {
		return "## " + stripped
	}

	if len(runes) < 30 &&
		!strings.ContainsAny(stripped, ".!?,;") &&
		unicode.IsUpper(runes[0]) {
		return "### " + stripped
	}

	return line
}
