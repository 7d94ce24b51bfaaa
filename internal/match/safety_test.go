package match

import (
	"strings"
	"testing"
)

func TestSafetyScan(t *testing.T) {
	tests := []struct {
		name     string
		tailored string
		original string
		want     []string
	}{
		{
			"clean rewrite",
			"Experience 2020 - 2022\n- Shipped the billing platform",
			"Experience 2020 - 2022\n- Worked on billing",
			nil,
		},
		{
			"new year flagged once",
			"Experience 2020-2024",
			"Experience 2020-2022",
			[]string{"hallucination_suspected"},
		},
		{
			"dropped year is not a hallucination",
			"Experience 2020",
			"Experience 2020-2022",
			nil,
		},
		{
			"english first person tone",
			"I delivered the migration project",
			"Delivered the migration project",
			[]string{"tone_issue"},
		},
		{
			"french first person tone mid-text",
			"Responsable technique, je gère une équipe",
			"Responsable technique",
			[]string{"tone_issue"},
		},
		{
			"character limit exceeded",
			strings.Repeat("x", 12001),
			"short original",
			[]string{"length_exceeded"},
		},
		{
			"line limit exceeded",
			strings.Repeat("line\n", 201),
			"short original",
			[]string{"length_exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SafetyScan(tt.tailored, tt.original)
			if !equalStrings(got, tt.want) {
				t.Errorf("SafetyScan() = %v, want %v", got, tt.want)
			}
		})
	}
}
