package match

import (
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Cleanup patterns, compiled once at init. The date range pattern rewrites
// "2019–2024" style ranges to a uniform "2019 - 2024" form.
var (
	bulletPattern    = regexp.MustCompile(`[•·◦●∙\x{2022}\x{25CF}\x{2219}]`)
	dashPattern      = regexp.MustCompile(`[–—―]+`)
	multiNewline     = regexp.MustCompile(`\n{3,}`)
	multiSpace       = regexp.MustCompile(`[ \t]{2,}`)
	dateRangePattern = regexp.MustCompile(`(?i)(\b\d{1,2}[/.\-]\d{4}\b|\b\d{4}\b)\s*[-–—]\s*(\b\d{1,2}[/.\-]\d{4}\b|\b\d{4}\b|\bPresent|Présent|Now\b)`)
)

// languageSampleLimit caps how much text the language detector sees.
const languageSampleLimit = 3000

// CleanText normalizes raw pasted text: bullet glyphs and long dashes become
// plain hyphens, runs of blank lines collapse to one, repeated spaces and tabs
// collapse to a single space, and date ranges take a uniform "A - B" shape.
func CleanText(text string) string {
	cleaned := bulletPattern.ReplaceAllString(text, "-")
	cleaned = dashPattern.ReplaceAllString(cleaned, "-")
	cleaned = multiNewline.ReplaceAllString(cleaned, "\n\n")
	cleaned = multiSpace.ReplaceAllString(cleaned, " ")
	cleaned = dateRangePattern.ReplaceAllString(cleaned, "${1} - ${2}")
	return strings.TrimSpace(cleaned)
}

// DetectLanguage returns the ISO 639-1 code of the dominant language in the
// first few thousand characters of text, or "en" when nothing is detectable.
func DetectLanguage(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return "en"
	}
	runes := []rune(sample)
	if len(runes) > languageSampleLimit {
		sample = string(runes[:languageSampleLimit])
	}
	info := whatlanggo.Detect(sample)
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return "en"
}

// NormalizeInputs cleans the resume and job texts and detects the language of
// the pair. Detection looks at both texts so a short job posting in one
// language does not mask a resume written in another.
func NormalizeInputs(resumeText, jobText string) (cleanResume, cleanJob, language string) {
	cleanResume = CleanText(resumeText)
	cleanJob = CleanText(jobText)
	language = DetectLanguage(strings.TrimSpace(cleanResume + " " + cleanJob))
	return cleanResume, cleanJob, language
}
