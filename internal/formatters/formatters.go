package formatters

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"resumatch/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchOutput", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchOutput", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "ScoreResult", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ScoreResult", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "ATSReport", &ATSTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSReport", &ATSMarkdownFormatter{})
	registry.RegisterFormatter("text", "OptimizeOutput", &OptimizeTextFormatter{})
	registry.RegisterFormatter("markdown", "OptimizeOutput", &OptimizeMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.MatchOutput, *types.MatchOutput:
		return "MatchOutput"
	case types.ScoreResult, *types.ScoreResult:
		return "ScoreResult"
	case types.ATSReport, *types.ATSReport:
		return "ATSReport"
	case types.OptimizeOutput, *types.OptimizeOutput:
		return "OptimizeOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// MatchTextFormatter handles text formatting for full match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := matchOutput(data)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MATCH RESULT ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Rationale: %s\n\n", result.Rationale))

	output.WriteString("Coverage:\n")
	output.WriteString(fmt.Sprintf("  Must-have skills: %.0f%%\n", result.Coverage.MustHave))
	output.WriteString(fmt.Sprintf("  Responsibilities: %.0f%%\n", result.Coverage.Responsibilities))
	output.WriteString(fmt.Sprintf("  Seniority fit: %.0f%%\n\n", result.Coverage.SeniorityFit))

	writeGapsText(&output, result.Gaps)

	if len(result.Flags) > 0 {
		output.WriteString("=== FLAGS ===\n")
		for _, flag := range result.Flags {
			output.WriteString(fmt.Sprintf("- %s\n", flag))
		}
		output.WriteString("\n")
	}

	output.WriteString("=== TAILORED RESUME ===\n\n")
	output.WriteString(result.TailoredResumeText)
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("\n=== RECOMMENDATIONS ===\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	if result.ATSValidation != nil {
		output.WriteString("\n")
		ats, err := (&ATSTextFormatter{}).Format(*result.ATSValidation)
		if err != nil {
			return "", err
		}
		output.WriteString(ats)
	}

	output.WriteString(fmt.Sprintf("\nDetected language: %s\n", result.Meta.DetectedLanguage))
	if result.Meta.JobExtraction == "fallback" || result.Meta.ResumeExtraction == "fallback" {
		output.WriteString("Note: extraction fell back to conservative defaults:\n")
		for _, reason := range result.Meta.FallbackReasons {
			output.WriteString(fmt.Sprintf("- %s\n", reason))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchOutput"
}

// MatchMarkdownFormatter handles markdown formatting for full match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := matchOutput(data)
	if !ok {
		return "", fmt.Errorf("expected MatchOutput, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Result\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("%s\n\n", result.Rationale))

	output.WriteString("## Coverage\n\n")
	output.WriteString(fmt.Sprintf("- Must-have skills: %.0f%%\n", result.Coverage.MustHave))
	output.WriteString(fmt.Sprintf("- Responsibilities: %.0f%%\n", result.Coverage.Responsibilities))
	output.WriteString(fmt.Sprintf("- Seniority fit: %.0f%%\n\n", result.Coverage.SeniorityFit))

	writeGapsMarkdown(&output, result.Gaps)

	if len(result.Flags) > 0 {
		output.WriteString("## Flags\n\n")
		for _, flag := range result.Flags {
			output.WriteString(fmt.Sprintf("- %s\n", flag))
		}
		output.WriteString("\n")
	}

	output.WriteString("## Tailored Resume\n\n")
	output.WriteString(result.TailoredResumeText)
	output.WriteString("\n")

	if len(result.Recommendations) > 0 {
		output.WriteString("\n## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	if result.ATSValidation != nil {
		output.WriteString("\n")
		ats, err := (&ATSMarkdownFormatter{}).Format(*result.ATSValidation)
		if err != nil {
			return "", err
		}
		output.WriteString(ats)
	}

	output.WriteString(fmt.Sprintf("\n**Detected language:** %s\n", result.Meta.DetectedLanguage))
	if result.Meta.JobExtraction == "fallback" || result.Meta.ResumeExtraction == "fallback" {
		output.WriteString("\n> Extraction fell back to conservative defaults:\n")
		for _, reason := range result.Meta.FallbackReasons {
			output.WriteString(fmt.Sprintf("> - %s\n", reason))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchOutput"
}

// ScoreTextFormatter handles text formatting for scoring results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := scoreResult(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== COMPATIBILITY SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %.2f/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Rationale: %s\n\n", result.Rationale))

	output.WriteString("Coverage:\n")
	output.WriteString(fmt.Sprintf("  Must-have skills: %.0f%%\n", result.Coverage.MustHave))
	output.WriteString(fmt.Sprintf("  Responsibilities: %.0f%%\n", result.Coverage.Responsibilities))
	output.WriteString(fmt.Sprintf("  Seniority fit: %.0f%%\n\n", result.Coverage.SeniorityFit))

	writeGapsText(&output, result.Gaps)

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ScoreResult"
}

// ScoreMarkdownFormatter handles markdown formatting for scoring results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := scoreResult(data)
	if !ok {
		return "", fmt.Errorf("expected ScoreResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Compatibility Score\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %.2f/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("%s\n\n", result.Rationale))

	output.WriteString("## Coverage\n\n")
	output.WriteString(fmt.Sprintf("- Must-have skills: %.0f%%\n", result.Coverage.MustHave))
	output.WriteString(fmt.Sprintf("- Responsibilities: %.0f%%\n", result.Coverage.Responsibilities))
	output.WriteString(fmt.Sprintf("- Seniority fit: %.0f%%\n\n", result.Coverage.SeniorityFit))

	writeGapsMarkdown(&output, result.Gaps)

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ScoreResult"
}

// ATSTextFormatter handles text formatting for ATS compliance reports
type ATSTextFormatter struct{}

func (atf *ATSTextFormatter) Format(data any) (string, error) {
	result, ok := atsReport(data)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS COMPLIANCE ===\n\n")
	output.WriteString(fmt.Sprintf("Compliance: %s\n", result.ComplianceLevel))
	output.WriteString(fmt.Sprintf("Score: %.1f/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Formatting: %.1f/100\n", result.FormattingScore))
	output.WriteString(fmt.Sprintf("Structure: %.1f/100\n\n", result.StructureScore))

	if len(result.Issues) > 0 {
		output.WriteString("Issues:\n")
		for _, issue := range result.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for _, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", recommendation))
		}
		output.WriteString("\n")
	}

	if keywords := presentKeywords(result.KeywordDensity); len(keywords) > 0 {
		output.WriteString("Keyword density:\n")
		for _, kw := range keywords {
			output.WriteString(fmt.Sprintf("  %s: %.2f%%\n", kw, result.KeywordDensity[kw]))
		}
	}

	return output.String(), nil
}

func (atf *ATSTextFormatter) SupportedType() string {
	return "ATSReport"
}

// ATSMarkdownFormatter handles markdown formatting for ATS compliance reports
type ATSMarkdownFormatter struct{}

func (amf *ATSMarkdownFormatter) Format(data any) (string, error) {
	result, ok := atsReport(data)
	if !ok {
		return "", fmt.Errorf("expected ATSReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Compliance\n\n")
	output.WriteString(fmt.Sprintf("**Compliance:** %s\n\n", result.ComplianceLevel))
	output.WriteString(fmt.Sprintf("**Score:** %.1f/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("- Formatting: %.1f/100\n", result.FormattingScore))
	output.WriteString(fmt.Sprintf("- Structure: %.1f/100\n\n", result.StructureScore))

	if len(result.Issues) > 0 {
		output.WriteString("## Issues\n\n")
		for _, issue := range result.Issues {
			output.WriteString(fmt.Sprintf("- %s\n", issue))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for _, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("- %s\n", recommendation))
		}
		output.WriteString("\n")
	}

	if keywords := presentKeywords(result.KeywordDensity); len(keywords) > 0 {
		output.WriteString("## Keyword Density\n\n")
		for _, kw := range keywords {
			output.WriteString(fmt.Sprintf("- %s: %.2f%%\n", kw, result.KeywordDensity[kw]))
		}
	}

	return output.String(), nil
}

func (amf *ATSMarkdownFormatter) SupportedType() string {
	return "ATSReport"
}

func matchOutput(data any) (types.MatchOutput, bool) {
	switch v := data.(type) {
	case types.MatchOutput:
		return v, true
	case *types.MatchOutput:
		return *v, true
	}
	return types.MatchOutput{}, false
}

func scoreResult(data any) (types.ScoreResult, bool) {
	switch v := data.(type) {
	case types.ScoreResult:
		return v, true
	case *types.ScoreResult:
		return *v, true
	}
	return types.ScoreResult{}, false
}

// OptimizeTextFormatter emits the ATS-optimized resume text as-is, ready
// to paste into a plain-text submission field.
type OptimizeTextFormatter struct{}

func (otf *OptimizeTextFormatter) Format(data any) (string, error) {
	result, ok := optimizeOutput(data)
	if !ok {
		return "", fmt.Errorf("expected OptimizeOutput, got %T", data)
	}
	return result.OptimizedText, nil
}

func (otf *OptimizeTextFormatter) SupportedType() string {
	return "OptimizeOutput"
}

// OptimizeMarkdownFormatter wraps the optimized text in a fenced block so
// ATS-safe formatting survives markdown rendering.
type OptimizeMarkdownFormatter struct{}

func (omf *OptimizeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := optimizeOutput(data)
	if !ok {
		return "", fmt.Errorf("expected OptimizeOutput, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Optimized Resume\n\n")
	output.WriteString("```\n")
	output.WriteString(result.OptimizedText)
	if !strings.HasSuffix(result.OptimizedText, "\n") {
		output.WriteString("\n")
	}
	output.WriteString("```\n")
	return output.String(), nil
}

func (omf *OptimizeMarkdownFormatter) SupportedType() string {
	return "OptimizeOutput"
}

func optimizeOutput(data any) (types.OptimizeOutput, bool) {
	switch v := data.(type) {
	case types.OptimizeOutput:
		return v, true
	case *types.OptimizeOutput:
		return *v, true
	}
	return types.OptimizeOutput{}, false
}

func atsReport(data any) (types.ATSReport, bool) {
	switch v := data.(type) {
	case types.ATSReport:
		return v, true
	case *types.ATSReport:
		return *v, true
	}
	return types.ATSReport{}, false
}

func writeGapsText(output *strings.Builder, gaps types.Gaps) {
	if len(gaps.MatchedSkills) > 0 {
		output.WriteString(fmt.Sprintf("Matched skills: %s\n", strings.Join(gaps.MatchedSkills, ", ")))
	}
	if len(gaps.MissingSkills) > 0 {
		output.WriteString(fmt.Sprintf("Missing skills: %s\n", strings.Join(gaps.MissingSkills, ", ")))
	}
	if len(gaps.WeakEvidenceForResponsibilities) > 0 {
		output.WriteString("Weak evidence for:\n")
		for _, resp := range gaps.WeakEvidenceForResponsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", resp))
		}
	}
	if len(gaps.MatchedSkills)+len(gaps.MissingSkills)+len(gaps.WeakEvidenceForResponsibilities) > 0 {
		output.WriteString("\n")
	}
}

func writeGapsMarkdown(output *strings.Builder, gaps types.Gaps) {
	if len(gaps.MatchedSkills)+len(gaps.MissingSkills)+len(gaps.WeakEvidenceForResponsibilities) == 0 {
		return
	}
	output.WriteString("## Gaps\n\n")
	if len(gaps.MatchedSkills) > 0 {
		output.WriteString(fmt.Sprintf("**Matched skills:** %s\n\n", strings.Join(gaps.MatchedSkills, ", ")))
	}
	if len(gaps.MissingSkills) > 0 {
		output.WriteString(fmt.Sprintf("**Missing skills:** %s\n\n", strings.Join(gaps.MissingSkills, ", ")))
	}
	if len(gaps.WeakEvidenceForResponsibilities) > 0 {
		output.WriteString("**Weak evidence for:**\n\n")
		for _, resp := range gaps.WeakEvidenceForResponsibilities {
			output.WriteString(fmt.Sprintf("- %s\n", resp))
		}
		output.WriteString("\n")
	}
}

// presentKeywords returns job keywords with non-zero density, sorted for
// stable output. Aggregate tech_ categories are skipped.
func presentKeywords(density map[string]float64) []string {
	keywords := make([]string, 0, len(density))
	for kw, d := range density {
		if strings.HasPrefix(kw, "tech_") || d == 0 {
			continue
		}
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	return keywords
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
