package match

import "testing"

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"bullet glyphs become hyphens",
			"• Built services\n· Ran deployments",
			"- Built services\n- Ran deployments",
		},
		{
			"dash variants collapse",
			"Backend — Platform – Tools",
			"Backend - Platform - Tools",
		},
		{
			"newline runs collapse to two",
			"Summary\n\n\n\nExperience",
			"Summary\n\nExperience",
		},
		{
			"horizontal whitespace collapses",
			"Python,   Go,\t\tRust",
			"Python, Go, Rust",
		},
		{
			"date ranges take canonical spacing",
			"Acme Corp 2019-2022",
			"Acme Corp 2019 - 2022",
		},
		{
			"month-year range takes canonical spacing",
			"03/2019-06/2022",
			"03/2019 - 06/2022",
		},
		{
			"month-year to bare year",
			"06.2017-2020",
			"06.2017 - 2020",
		},
		{
			"open-ended range with present",
			"01/2020 -  Present",
			"01/2020 - Present",
		},
		{
			"french open-ended range",
			"2018 – Présent",
			"2018 - Présent",
		},
		{
			"surrounding whitespace trimmed",
			"  text  ",
			"text",
		},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults to english", "", "en"},
		{"whitespace defaults to english", "   \n  ", "en"},
		{
			"english resume",
			"Experienced software engineer with a strong background in distributed systems and cloud infrastructure.",
			"en",
		},
		{
			"french resume",
			"Ingénieur logiciel expérimenté avec une solide expérience dans les systèmes distribués et l'infrastructure cloud.",
			"fr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.input); got != tt.want {
				t.Errorf("DetectLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeInputs(t *testing.T) {
	resume, job, lang := NormalizeInputs("• Python developer\n\n\n\nSkills", "Senior   role — remote")
	if resume != "- Python developer\n\nSkills" {
		t.Errorf("cleaned resume = %q", resume)
	}
	if job != "Senior role - remote" {
		t.Errorf("cleaned job = %q", job)
	}
	if lang == "" {
		t.Error("expected a detected language")
	}
}
