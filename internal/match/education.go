package match

import (
	"fmt"
	"strings"
)

// ValidateEducation checks every extracted education entry against the
// original resume text and flags entries with no supporting evidence. An
// entry passes when its lowercased text appears verbatim, or when it names a
// known degree and any of that degree's accepted spellings appears in the
// resume. Everything else is flagged as a likely extraction hallucination.
func (t *Tables) ValidateEducation(education []string, originalResume string) []string {
	if len(education) == 0 {
		return nil
	}
	originalLower := strings.ToLower(originalResume)

	var flags []string
	for _, entry := range education {
		entryLower := strings.ToLower(entry)
		if strings.Contains(originalLower, entryLower) {
			continue
		}
		if t.educationVariantInText(entryLower, originalLower) {
			continue
		}
		flags = append(flags, fmt.Sprintf("education_hallucination: '%s' not found in original resume", entry))
	}
	return flags
}

func (t *Tables) educationVariantInText(entry, text string) bool {
	for fullName, variants := range t.EducationVariants {
		if !strings.Contains(entry, fullName) {
			continue
		}
		for _, variant := range variants {
			if strings.Contains(text, variant) {
				return true
			}
		}
	}
	return false
}
