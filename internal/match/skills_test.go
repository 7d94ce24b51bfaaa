package match

import "testing"

func TestContainsSkill(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name  string
		text  string
		skill string
		want  bool
	}{
		{"direct case-insensitive hit", "Expert in Python and Go", "python", true},
		{"direct hit on skill casing", "worked with docker daily", "Docker", true},
		{"variant hit k8s", "Migrated services to k8s", "kubernetes", true},
		{"variant hit nodejs", "Built nodejs backends", "node.js experience", true},
		{"variant group via skill superset", "5 years of scrum ceremonies", "agile methodologies", true},
		{"absent skill", "Frontend work with CSS", "terraform", false},
		{"empty text", "", "python", false},
		{"empty skill", "Python developer", "", false},
		{
			// The variant lookup requires the group key inside the skill,
			// not the other way around, so a broad skill name does not
			// match every mention of its narrower variants.
			"asymmetric direction",
			"Wrote a Dockerfile for CI",
			"docker",
			true,
		},
		{"sql variant via postgres", "PostgreSQL tuning", "sql", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tables.ContainsSkill(tt.text, tt.skill); got != tt.want {
				t.Errorf("ContainsSkill(%q, %q) = %v, want %v", tt.text, tt.skill, got, tt.want)
			}
		})
	}
}
