package match

import (
	"regexp"
	"strings"
)

var yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

// Safety scan limits on tailored output.
const (
	maxTailoredLines = 200
	maxTailoredChars = 12000
)

// SafetyScan inspects a tailored resume for signs it cannot be trusted and
// returns warning flags. Any four-digit year in the tailored text that does
// not appear in the original suggests invented dates. Oversized output and
// first-person narration ("I ...", "je ...") are also flagged since both
// break the expected resume register.
func SafetyScan(tailoredText, originalText string) []string {
	var flags []string

	original := make(map[string]struct{})
	for _, y := range yearPattern.FindAllString(originalText, -1) {
		original[y] = struct{}{}
	}
	for _, y := range yearPattern.FindAllString(tailoredText, -1) {
		if _, ok := original[y]; !ok {
			flags = append(flags, "hallucination_suspected")
			break
		}
	}

	if lineCount(tailoredText) > maxTailoredLines || len(tailoredText) > maxTailoredChars {
		flags = append(flags, "length_exceeded")
	}

	low := strings.TrimSpace(strings.ToLower(tailoredText))
	if strings.HasPrefix(low, "je ") || strings.Contains(low, " je ") ||
		strings.HasPrefix(low, "i ") || strings.Contains(low, " i ") {
		flags = append(flags, "tone_issue")
	}

	return flags
}

// lineCount counts lines the way a text editor would: a trailing newline
// does not start an extra line.
func lineCount(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
