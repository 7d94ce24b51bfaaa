package match

import "testing"

func TestValidateEducation(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		name      string
		education []string
		resume    string
		wantFlags []string
	}{
		{
			"empty education list",
			nil,
			"Ten years of engineering work",
			nil,
		},
		{
			"direct substring accepted",
			[]string{"Bachelor of Science in CS"},
			"Education: Bachelor of Science in CS, MIT",
			nil,
		},
		{
			"abbreviation variant accepted",
			[]string{"bachelor of science"},
			"Education: B.S. Computer Science, 2015",
			nil,
		},
		{
			"invented degree flagged",
			[]string{"PhD"},
			"Education: Master's degree in History",
			[]string{"education_hallucination: 'PhD' not found in original resume"},
		},
		{
			"mixed list flags only the invented entry",
			[]string{"master of science", "doctor of philosophy"},
			"Holds an M.S. in Physics",
			[]string{"education_hallucination: 'doctor of philosophy' not found in original resume"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tables.ValidateEducation(tt.education, tt.resume)
			if !equalStrings(got, tt.wantFlags) {
				t.Errorf("ValidateEducation(%v) = %v, want %v", tt.education, got, tt.wantFlags)
			}
		})
	}
}
