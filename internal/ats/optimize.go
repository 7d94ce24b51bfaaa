package ats

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	styleAttrPattern = regexp.MustCompile(`style="[^"]*"`)
	bulletGlyphs     = regexp.MustCompile(`[•·◦●]`)
	excessNewlines   = regexp.MustCompile(`\n{3,}`)

	// Matches a skills section header plus any following whitespace,
	// e.g. "Skills:", "SKILL -", "skills".
	skillsHeaderPattern = regexp.MustCompile(`(?i)skills?[:\-]?\s*`)
)

// Optimize rewrites resumeText into a more ATS-friendly form: HTML tags and
// inline style attributes are stripped, decorative bullets become hyphens,
// blank-line runs collapse, and job keywords that are absent from the text
// are appended to the skills section when one can be located.
func (v *Validator) Optimize(resumeText string, jobKeywords []string) string {
	optimized := htmlTagPattern.ReplaceAllString(resumeText, "")
	optimized = styleAttrPattern.ReplaceAllString(optimized, "")
	optimized = bulletGlyphs.ReplaceAllString(optimized, "-")
	optimized = excessNewlines.ReplaceAllString(optimized, "\n\n")

	if len(jobKeywords) > 0 {
		optimized = integrateKeywords(optimized, jobKeywords)
	}
	return optimized
}

// integrateKeywords appends missing keywords to the skills section. Presence
// is judged against the text as it stood before any insertion, so two
// missing keywords both get added even when one contains the other.
func integrateKeywords(text string, keywords []string) string {
	textLower := strings.ToLower(text)

	for _, keyword := range keywords {
		if strings.Contains(textLower, strings.ToLower(keyword)) {
			continue
		}
		if !strings.Contains(textLower, "skills") {
			continue
		}
		start, end, body := findSkillsSection(text)
		if start < 0 {
			continue
		}
		if strings.Contains(body, keyword) {
			continue
		}
		text = text[:end] + ", " + keyword + text[end:]
	}
	return text
}

// findSkillsSection locates the first skills header and the body that runs
// until the next section header (a newline followed by an uppercase letter),
// a blank line, or the end of the text. Returns start and end offsets of the
// whole section and the body text, or start -1 when no header exists.
func findSkillsSection(text string) (start, end int, body string) {
	loc := skillsHeaderPattern.FindStringIndex(text)
	if loc == nil {
		return -1, -1, ""
	}
	bodyStart := loc[1]

	end = len(text)
	for i := bodyStart; i < len(text); i++ {
		if text[i] != '\n' {
			continue
		}
		if i+1 >= len(text) {
			// Trailing newline ends the section without being part of it.
			end = i
			break
		}
		next := text[i+1]
		if next == '\n' || (next >= 'A' && next <= 'Z') {
			end = i
			break
		}
	}
	return loc[0], end, text[bodyStart:end]
}
