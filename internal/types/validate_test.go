package types

import "testing"

func TestValidateRecords(t *testing.T) {
	validJob := JobRecord{Title: "Backend Engineer", Seniority: "mid"}
	validCandidate := CandidateRecord{YearsOfExperience: 4}

	tests := []struct {
		name      string
		job       JobRecord
		candidate CandidateRecord
		wantErr   bool
	}{
		{"valid records pass", validJob, validCandidate, false},
		{"missing title", JobRecord{Seniority: "mid"}, validCandidate, true},
		{"missing seniority", JobRecord{Title: "Backend Engineer"}, validCandidate, true},
		{"unknown seniority", JobRecord{Title: "Backend Engineer", Seniority: "principal"}, validCandidate, true},
		{"negative years", validJob, CandidateRecord{YearsOfExperience: -5}, true},
		{"years over cap", validJob, CandidateRecord{YearsOfExperience: 1000}, true},
		{"zero years allowed", validJob, CandidateRecord{}, false},
		{"boundary years allowed", validJob, CandidateRecord{YearsOfExperience: 50}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecords(&tt.job, &tt.candidate)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecords() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
