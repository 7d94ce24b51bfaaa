// Package ats validates and optimizes resume text for applicant tracking
// systems. All checks are regex and substring heuristics over plain text;
// patterns are compiled once at package load.
package ats

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"resumatch/internal/types"
)

// Compliance levels, ordered best to worst.
const (
	ComplianceExcellent = "excellent"
	ComplianceGood      = "good"
	ComplianceFair      = "fair"
	CompliancePoor      = "poor"
)

// Component weights of the overall score.
const (
	formattingWeight = 0.3
	structureWeight  = 0.4
	keywordWeight    = 0.3
)

type problematicPattern struct {
	label string
	re    *regexp.Regexp
}

// Formatting elements that commonly break ATS parsers. The (?s) flag lets
// the container patterns span line breaks the way pasted HTML does.
var problematicElements = []problematicPattern{
	{"image tags", regexp.MustCompile(`(?is)<img[^>]*>`)},
	{"table markup", regexp.MustCompile(`(?is)<table[^>]*>.*?</table>`)},
	{"div containers", regexp.MustCompile(`(?is)<div[^>]*>.*?</div>`)},
	{"styled spans", regexp.MustCompile(`(?is)<span[^>]*>.*?</span>`)},
	{"background colors", regexp.MustCompile(`(?i)background-color:`)},
	{"text colors", regexp.MustCompile(`(?i)color:\s*[^;]+;`)},
	{"custom fonts", regexp.MustCompile(`(?i)font-family:\s*[^;]+;`)},
	{"center alignment", regexp.MustCompile(`(?i)text-align:\s*center`)},
	{"floating elements", regexp.MustCompile(`(?i)float:\s*(left|right)`)},
}

var (
	specialCharPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\-.,:;()\[\]/@+]`)
	bulletPatterns     = []*regexp.Regexp{
		regexp.MustCompile(`[•·◦●]`),
		regexp.MustCompile(`[-*]`),
		regexp.MustCompile(`\d+\.`),
	}
	headerPattern = regexp.MustCompile(`(?m)^[A-Z][A-Z\s]+$|^[A-Z][a-z\s]+:$`)

	contactPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`),
		regexp.MustCompile(`\+?[\d\s\-()]{10,}`),
		regexp.MustCompile(`\b[A-Za-z\s]+,\s*[A-Za-z\s]+,\s*[A-Za-z\s]+\b`),
	}

	numberPattern = regexp.MustCompile(`\b\d+(?:\.\d+)?%?\b`)
)

// Section headers ATS parsers recognize, checked as substrings of the
// lowercased resume.
var standardSections = []string{
	"contact", "personal information", "profile", "summary", "objective",
	"experience", "work experience", "employment", "professional experience",
	"education", "academic background", "qualifications",
	"skills", "technical skills", "core competencies", "expertise",
	"certifications", "licenses", "awards", "achievements",
	"projects", "publications", "languages", "interests", "hobbies",
}

var essentialSections = []string{"experience", "education", "skills"}

// Keyword families counted toward the tech_<category> density aggregates.
var techKeywords = map[string][]string{
	"programming":   {"programming", "coding", "development", "software engineering"},
	"languages":     {"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby"},
	"frameworks":    {"react", "angular", "vue", "spring", "django", "flask", "express", "laravel"},
	"databases":     {"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "oracle", "sqlite"},
	"cloud":         {"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "jenkins"},
	"methodologies": {"agile", "scrum", "kanban", "devops", "ci/cd", "tdd", "bdd"},
	"tools":         {"git", "jira", "confluence", "slack", "figma", "postman", "swagger"},
}

var actionVerbs = []string{
	"developed", "created", "implemented", "managed", "led", "improved",
	"increased", "decreased", "optimized", "designed", "built", "delivered",
	"achieved", "accomplished", "executed", "coordinated", "collaborated",
}

// Validator runs ATS compliance checks. The zero value is usable; New exists
// so callers can hold a single shared instance.
type Validator struct{}

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate scores resumeText for ATS compatibility against the given job
// keywords and returns the full report. jobKeywords may be empty.
func (v *Validator) Validate(resumeText string, jobKeywords []string) *types.ATSReport {
	issues := []string{}
	recommendations := []string{}

	formattingScore := v.checkFormatting(resumeText, &issues, &recommendations)
	structureScore := v.checkStructure(resumeText, &issues, &recommendations)
	keywordDensity := v.analyzeKeywords(resumeText, jobKeywords)
	v.checkContentQuality(resumeText, &issues, &recommendations)

	overall := formattingScore*formattingWeight +
		structureScore*structureWeight +
		v.keywordScore(keywordDensity)*keywordWeight

	return &types.ATSReport{
		ComplianceLevel: complianceLevel(overall),
		Score:           overall,
		Issues:          issues,
		Recommendations: recommendations,
		KeywordDensity:  keywordDensity,
		StructureScore:  structureScore,
		FormattingScore: formattingScore,
	}
}

func complianceLevel(score float64) string {
	switch {
	case score >= 90:
		return ComplianceExcellent
	case score >= 75:
		return ComplianceGood
	case score >= 60:
		return ComplianceFair
	default:
		return CompliancePoor
	}
}

func (v *Validator) checkFormatting(text string, issues, recommendations *[]string) float64 {
	score := 100.0

	for _, p := range problematicElements {
		if p.re.MatchString(text) {
			*issues = append(*issues, fmt.Sprintf("Contains problematic formatting: %s", p.label))
			score -= 15
		}
	}

	if chars := distinctSpecialChars(text); len(chars) > 5 {
		*issues = append(*issues, fmt.Sprintf("Contains many special characters: %s", strings.Join(chars, " ")))
		score -= 10
	}

	bulletCount := 0
	for _, re := range bulletPatterns {
		bulletCount += len(re.FindAllString(text, -1))
	}
	if bulletCount == 0 {
		*issues = append(*issues, "No bullet points found - consider using bullet points for better readability")
		score -= 5
	} else if bulletCount > 50 {
		*issues = append(*issues, "Too many bullet points - consider consolidating")
		score -= 5
	}

	lines := strings.Split(text, "\n")
	longLines := 0
	for _, line := range lines {
		if len(line) > 100 {
			longLines++
		}
	}
	if float64(longLines) > float64(len(lines))*0.3 {
		*issues = append(*issues, "Many lines are too long - ATS prefers shorter lines")
		score -= 10
	}

	if score < 70 {
		*recommendations = append(*recommendations, "Simplify formatting - remove complex styling and use standard fonts")
	}

	if score < 0 {
		return 0
	}
	return score
}

func distinctSpecialChars(text string) []string {
	seen := make(map[string]struct{})
	for _, c := range specialCharPattern.FindAllString(text, -1) {
		seen[c] = struct{}{}
	}
	chars := make([]string, 0, len(seen))
	for c := range seen {
		chars = append(chars, c)
	}
	sort.Strings(chars)
	return chars
}

func (v *Validator) checkStructure(text string, issues, recommendations *[]string) float64 {
	score := 100.0
	textLower := strings.ToLower(text)

	var found []string
	for _, section := range standardSections {
		if strings.Contains(textLower, section) {
			found = append(found, section)
		}
	}

	var missing []string
	for _, essential := range essentialSections {
		present := false
		for _, f := range found {
			if strings.Contains(f, essential) {
				present = true
				break
			}
		}
		if !present {
			missing = append(missing, essential)
		}
	}
	if len(missing) > 0 {
		*issues = append(*issues, fmt.Sprintf("Missing essential sections: %v", missing))
		score -= 20 * float64(len(missing))
	}

	if len(headerPattern.FindAllString(text, -1)) < 3 {
		*issues = append(*issues, "Insufficient section headers - use clear, standard headers")
		score -= 15
	}

	contactFound := false
	for _, re := range contactPatterns {
		if re.MatchString(text) {
			contactFound = true
			break
		}
	}
	if !contactFound {
		*issues = append(*issues, "No clear contact information found")
		score -= 25
	}

	if score < 70 {
		*recommendations = append(*recommendations, "Improve structure - use standard section headers and ensure contact info is present")
	}

	if score < 0 {
		return 0
	}
	return score
}

func (v *Validator) analyzeKeywords(text string, jobKeywords []string) map[string]float64 {
	textLower := strings.ToLower(text)
	wordCount := len(strings.Fields(text))
	density := make(map[string]float64, len(jobKeywords)+len(techKeywords))

	for _, keyword := range jobKeywords {
		count := strings.Count(textLower, strings.ToLower(keyword))
		if wordCount > 0 {
			density[keyword] = float64(count) / float64(wordCount) * 100
		} else {
			density[keyword] = 0
		}
	}

	for category, keywords := range techKeywords {
		categoryCount := 0
		for _, keyword := range keywords {
			categoryCount += strings.Count(textLower, keyword)
		}
		key := "tech_" + category
		if wordCount > 0 {
			density[key] = float64(categoryCount) / float64(wordCount) * 100
		} else {
			density[key] = 0
		}
	}

	return density
}

// keywordScore rewards job keywords sitting in the 0.5-3% density band and
// penalizes overuse above 5%. The running tally is allowed to go negative;
// only the final percentage is clamped to 0-100.
func (v *Validator) keywordScore(density map[string]float64) float64 {
	if len(density) == 0 {
		return 50.0
	}

	jobKeywords := make(map[string]float64)
	for k, d := range density {
		if !strings.HasPrefix(k, "tech_") {
			jobKeywords[k] = d
		}
	}
	if len(jobKeywords) == 0 {
		return 30.0
	}

	good := 0.0
	for _, d := range jobKeywords {
		if d >= 0.5 && d <= 3.0 {
			good++
		} else if d > 5.0 {
			good -= 0.5
		}
	}

	score := good / float64(len(jobKeywords)) * 100
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func (v *Validator) checkContentQuality(text string, issues, recommendations *[]string) {
	wordCount := len(strings.Fields(text))
	if wordCount < 200 {
		*issues = append(*issues, "Resume too short - may lack sufficient detail")
	} else if wordCount > 800 {
		*issues = append(*issues, "Resume too long - ATS and recruiters prefer concise resumes")
	}

	if len(numberPattern.FindAllString(text, -1)) < 3 {
		*issues = append(*issues, "Few quantified achievements - add more metrics and numbers")
		*recommendations = append(*recommendations, "Include specific numbers, percentages, and metrics in your achievements")
	}

	textLower := strings.ToLower(text)
	foundVerbs := 0
	for _, verb := range actionVerbs {
		if strings.Contains(textLower, verb) {
			foundVerbs++
		}
	}
	if foundVerbs < 5 {
		*issues = append(*issues, "Insufficient action verbs - use more dynamic language")
		*recommendations = append(*recommendations, "Start bullet points with strong action verbs")
	}
}
