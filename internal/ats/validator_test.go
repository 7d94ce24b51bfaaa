package ats

import (
	"strings"
	"testing"
)

// A plausible plain-text resume used as a well-formed baseline.
const sampleResume = `John Smith
john.smith@example.com
+1 555 123 4567

SUMMARY
Software engineer focused on backend systems.

EXPERIENCE
- Developed and delivered billing services in Python
- Improved deployment times by 40%
- Led a team of 3 engineers and managed releases

EDUCATION
- B.S. Computer Science, 2015

SKILLS
Python, Docker, PostgreSQL, Git
`

func TestComplianceLevel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent at lower edge", 90.0, ComplianceExcellent},
		{"good just under excellent", 89.99, ComplianceGood},
		{"good at lower edge", 75.0, ComplianceGood},
		{"fair just under good", 74.99, ComplianceFair},
		{"fair at lower edge", 60.0, ComplianceFair},
		{"poor just under fair", 59.99, CompliancePoor},
		{"poor at zero", 0, CompliancePoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := complianceLevel(tt.score); got != tt.want {
				t.Errorf("complianceLevel(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestValidateFormatting(t *testing.T) {
	v := New()

	t.Run("html markup is penalized", func(t *testing.T) {
		plain := v.Validate(sampleResume, nil)
		styled := v.Validate(sampleResume+`<table border="1"><tr><td>layout</td></tr></table>`, nil)
		if styled.FormattingScore >= plain.FormattingScore {
			t.Errorf("formatting score with table markup = %v, plain = %v", styled.FormattingScore, plain.FormattingScore)
		}
		if !containsSubstring(styled.Issues, "problematic formatting") {
			t.Errorf("expected a formatting issue, got %v", styled.Issues)
		}
	})

	t.Run("missing bullets flagged", func(t *testing.T) {
		report := v.Validate("EXPERIENCE\nplain prose with no markers at all", nil)
		if !containsSubstring(report.Issues, "No bullet points found") {
			t.Errorf("expected bullet issue, got %v", report.Issues)
		}
	})

	t.Run("excessive bullets flagged", func(t *testing.T) {
		report := v.Validate(strings.Repeat("- item\n", 60), nil)
		if !containsSubstring(report.Issues, "Too many bullet points") {
			t.Errorf("expected bullet issue, got %v", report.Issues)
		}
	})

	t.Run("formatting floor is zero", func(t *testing.T) {
		bad := `<img src="x"><table><tr></tr></table><div>a</div><span style="x">b</span>` +
			`background-color: red; color: red; font-family: Wingdings; text-align: center float: left` +
			"\n~~ §§ ¤¤ ¶¶ ££ {{ }}"
		report := v.Validate(bad, nil)
		if report.FormattingScore < 0 {
			t.Errorf("formatting score went negative: %v", report.FormattingScore)
		}
	})
}

func TestValidateStructure(t *testing.T) {
	v := New()

	t.Run("complete resume keeps full structure score", func(t *testing.T) {
		report := v.Validate(sampleResume, nil)
		if report.StructureScore != 100.0 {
			t.Errorf("structure score = %v, want 100.0", report.StructureScore)
		}
	})

	t.Run("missing essential sections penalized", func(t *testing.T) {
		report := v.Validate("Some text without any recognizable parts", nil)
		if !containsSubstring(report.Issues, "Missing essential sections") {
			t.Errorf("expected missing-sections issue, got %v", report.Issues)
		}
		if report.StructureScore > 40.0 {
			t.Errorf("structure score = %v, want at most 40 with all essentials missing", report.StructureScore)
		}
	})

	t.Run("missing contact info penalized", func(t *testing.T) {
		with := v.Validate(sampleResume, nil)
		noContact := "EXPERIENCE\n- work\n\nEDUCATION\n- school\n\nSKILLS\ngo"
		without := v.Validate(noContact, nil)
		if !containsSubstring(without.Issues, "No clear contact information") {
			t.Errorf("expected contact issue, got %v", without.Issues)
		}
		if without.StructureScore >= with.StructureScore {
			t.Errorf("structure without contact = %v, with = %v", without.StructureScore, with.StructureScore)
		}
	})
}

func TestKeywordScoring(t *testing.T) {
	v := New()

	t.Run("density map carries job and tech keys", func(t *testing.T) {
		report := v.Validate(sampleResume, []string{"python", "terraform"})
		if _, ok := report.KeywordDensity["python"]; !ok {
			t.Error("missing density entry for job keyword")
		}
		if _, ok := report.KeywordDensity["tech_languages"]; !ok {
			t.Error("missing aggregate density for tech category")
		}
		if report.KeywordDensity["terraform"] != 0 {
			t.Errorf("terraform density = %v, want 0", report.KeywordDensity["terraform"])
		}
	})

	t.Run("no job keywords scores fixed thirty", func(t *testing.T) {
		density := v.analyzeKeywords(sampleResume, nil)
		if got := v.keywordScore(density); got != 30.0 {
			t.Errorf("keyword score = %v, want 30.0", got)
		}
	})

	t.Run("empty density map scores fixed fifty", func(t *testing.T) {
		if got := v.keywordScore(map[string]float64{}); got != 50.0 {
			t.Errorf("keyword score = %v, want 50.0", got)
		}
	})

	t.Run("optimal band counts as good", func(t *testing.T) {
		density := map[string]float64{"python": 1.2, "docker": 2.9}
		if got := v.keywordScore(density); got != 100.0 {
			t.Errorf("keyword score = %v, want 100.0", got)
		}
	})

	t.Run("overuse drags the tally below zero before the final clamp", func(t *testing.T) {
		density := map[string]float64{"python": 6.0, "docker": 7.0}
		if got := v.keywordScore(density); got != 0.0 {
			t.Errorf("keyword score = %v, want 0.0", got)
		}
	})

	t.Run("absent keyword neither helps nor hurts", func(t *testing.T) {
		density := map[string]float64{"python": 1.0, "cobol": 0.0}
		if got := v.keywordScore(density); got != 50.0 {
			t.Errorf("keyword score = %v, want 50.0", got)
		}
	})
}

func TestContentQuality(t *testing.T) {
	v := New()

	t.Run("short resume flagged", func(t *testing.T) {
		report := v.Validate("EXPERIENCE\n- brief", nil)
		if !containsSubstring(report.Issues, "Resume too short") {
			t.Errorf("expected short-resume issue, got %v", report.Issues)
		}
	})

	t.Run("long resume flagged", func(t *testing.T) {
		report := v.Validate(strings.Repeat("word ", 900), nil)
		if !containsSubstring(report.Issues, "Resume too long") {
			t.Errorf("expected long-resume issue, got %v", report.Issues)
		}
	})

	t.Run("missing metrics and verbs flagged", func(t *testing.T) {
		report := v.Validate("EXPERIENCE\nworked on things at a company", nil)
		if !containsSubstring(report.Issues, "Few quantified achievements") {
			t.Errorf("expected metrics issue, got %v", report.Issues)
		}
		if !containsSubstring(report.Issues, "Insufficient action verbs") {
			t.Errorf("expected action-verb issue, got %v", report.Issues)
		}
	})
}

func containsSubstring(items []string, sub string) bool {
	for _, item := range items {
		if strings.Contains(item, sub) {
			return true
		}
	}
	return false
}
