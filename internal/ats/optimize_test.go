package ats

import (
	"strings"
	"testing"
)

func TestOptimize(t *testing.T) {
	v := New()

	t.Run("strips html and styling", func(t *testing.T) {
		input := `<div style="color: red">Experience</div>\nJohn <b>Smith</b>`
		got := v.Optimize(input, nil)
		if strings.Contains(got, "<") || strings.Contains(got, "style=") {
			t.Errorf("markup survived optimization: %q", got)
		}
	})

	t.Run("normalizes bullets and blank lines", func(t *testing.T) {
		got := v.Optimize("• one\n\n\n\n• two", nil)
		want := "- one\n\n- two"
		if got != want {
			t.Errorf("Optimize = %q, want %q", got, want)
		}
	})

	t.Run("appends missing keyword to skills section", func(t *testing.T) {
		input := "EXPERIENCE\n- built services\n\nSkills: Python, Git\n\nEDUCATION\n- B.S."
		got := v.Optimize(input, []string{"Terraform"})
		if !strings.Contains(got, "Skills: Python, Git, Terraform") {
			t.Errorf("keyword not integrated: %q", got)
		}
	})

	t.Run("present keyword left alone", func(t *testing.T) {
		input := "Skills: Python, Git"
		got := v.Optimize(input, []string{"python"})
		if got != input {
			t.Errorf("Optimize changed text with keyword already present: %q", got)
		}
	})

	t.Run("no skills section leaves keyword unintegrated", func(t *testing.T) {
		input := "EXPERIENCE\n- built services"
		got := v.Optimize(input, []string{"Terraform"})
		if strings.Contains(got, "Terraform") {
			t.Errorf("keyword integrated without a skills section: %q", got)
		}
	})

	t.Run("idempotent on clean text", func(t *testing.T) {
		input := "EXPERIENCE\n- built services\n\nSkills: Python, Terraform"
		once := v.Optimize(input, []string{"Terraform"})
		twice := v.Optimize(once, []string{"Terraform"})
		if once != twice {
			t.Errorf("Optimize not idempotent: %q then %q", once, twice)
		}
	})
}

func TestFindSkillsSection(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStart int
		wantBody  string
	}{
		{
			"section ends at next header",
			"Skills: Go, Rust\nEDUCATION\n- B.S.",
			0,
			"Go, Rust",
		},
		{
			"section ends at blank line",
			"Skills: Go, Rust\n\nmore text",
			0,
			"Go, Rust",
		},
		{
			"section runs to end of text",
			"Skills: Go, Rust",
			0,
			"Go, Rust",
		},
		{
			"no header",
			"EXPERIENCE\n- work",
			-1,
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _, body := findSkillsSection(tt.text)
			if start != tt.wantStart {
				t.Errorf("start = %d, want %d", start, tt.wantStart)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}
