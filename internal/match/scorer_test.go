package match

import (
	"testing"

	"resumatch/internal/types"
)

func TestSeniorityFit(t *testing.T) {
	tests := []struct {
		name      string
		seniority string
		years     float64
		want      float64
	}{
		{"junior under two years", "junior", 1.5, 100.0},
		{"junior at two years", "junior", 2.0, 60.0},
		{"junior overqualified", "junior", 10, 60.0},
		{"mid lower bound", "mid", 2.0, 100.0},
		{"mid upper range", "mid", 5.9, 100.0},
		{"mid overqualified", "mid", 6.0, 80.0},
		{"mid underqualified", "mid", 1.0, 40.0},
		{"senior at five years", "senior", 5.0, 100.0},
		{"senior at three years", "senior", 3.0, 70.0},
		{"senior underqualified", "senior", 1.0, 30.0},
		{"unknown level", "staff", 10, 60.0},
		{"empty level", "", 4, 60.0},
		{"case insensitive", "Senior", 7, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SeniorityFit(tt.seniority, tt.years); got != tt.want {
				t.Errorf("SeniorityFit(%q, %v) = %v, want %v", tt.seniority, tt.years, got, tt.want)
			}
		})
	}
}

func TestMatchAndScore(t *testing.T) {
	tables := DefaultTables()

	t.Run("half coverage with senior fit", func(t *testing.T) {
		job := &types.JobRecord{
			Title:            "backend engineer",
			Seniority:        "senior",
			MustHaveSkills:   []string{"Python", "Docker"},
			Responsibilities: []string{"Build APIs"},
		}
		candidate := &types.CandidateRecord{
			YearsOfExperience: 6,
			TechStack:         []string{"Python"},
		}
		result := tables.MatchAndScore(job, candidate, "Seasoned Python developer")

		if result.Coverage.MustHave != 50.0 {
			t.Errorf("must-have coverage = %v, want 50.0", result.Coverage.MustHave)
		}
		if result.Coverage.Responsibilities != 0.0 {
			t.Errorf("responsibility coverage = %v, want 0.0", result.Coverage.Responsibilities)
		}
		if result.Coverage.SeniorityFit != 100.0 {
			t.Errorf("seniority fit = %v, want 100.0", result.Coverage.SeniorityFit)
		}
		if result.Score != 45.0 {
			t.Errorf("score = %v, want 45.0", result.Score)
		}
		if got, want := result.Rationale, "Core skills coverage 50%, responsibilities 0%, seniority fit 100%."; got != want {
			t.Errorf("rationale = %q, want %q", got, want)
		}
	})

	t.Run("empty requirement lists score zero coverage", func(t *testing.T) {
		job := &types.JobRecord{Title: "engineer", Seniority: "mid"}
		candidate := &types.CandidateRecord{YearsOfExperience: 3, TechStack: []string{"go"}}
		result := tables.MatchAndScore(job, candidate, "Go developer")

		if result.Coverage.MustHave != 0.0 {
			t.Errorf("must-have coverage over empty list = %v, want 0.0", result.Coverage.MustHave)
		}
		if result.Coverage.Responsibilities != 0.0 {
			t.Errorf("responsibility coverage over empty list = %v, want 0.0", result.Coverage.Responsibilities)
		}
		// Only the seniority component remains: 0.1 * 100.
		if result.Score != 10.0 {
			t.Errorf("score = %v, want 10.0", result.Score)
		}
	})

	t.Run("matched and missing partition the must-have list", func(t *testing.T) {
		job := &types.JobRecord{
			Title:          "engineer",
			Seniority:      "mid",
			MustHaveSkills: []string{"python", "kubernetes", "terraform", "react"},
		}
		candidate := &types.CandidateRecord{
			YearsOfExperience: 4,
			TechStack:         []string{"python"},
			Achievements:      []string{"Migrated workloads to k8s"},
		}
		result := tables.MatchAndScore(job, candidate, "Infrastructure work with React frontends")

		wantMatched := []string{"python", "kubernetes", "react"}
		wantMissing := []string{"terraform"}
		if !equalStrings(result.Gaps.MatchedSkills, wantMatched) {
			t.Errorf("matched = %v, want %v", result.Gaps.MatchedSkills, wantMatched)
		}
		if !equalStrings(result.Gaps.MissingSkills, wantMissing) {
			t.Errorf("missing = %v, want %v", result.Gaps.MissingSkills, wantMissing)
		}
		if len(result.Gaps.MatchedSkills)+len(result.Gaps.MissingSkills) != len(job.MustHaveSkills) {
			t.Error("matched and missing do not partition the must-have list")
		}
	})

	t.Run("achievements count as evidence", func(t *testing.T) {
		job := &types.JobRecord{
			Title:          "engineer",
			Seniority:      "mid",
			MustHaveSkills: []string{"docker"},
		}
		candidate := &types.CandidateRecord{
			YearsOfExperience: 3,
			Achievements:      []string{"Containerized services with Docker"},
		}
		result := tables.MatchAndScore(job, candidate, "No tooling mentioned here")

		if result.Coverage.MustHave != 100.0 {
			t.Errorf("must-have coverage = %v, want 100.0", result.Coverage.MustHave)
		}
	})

	t.Run("weak responsibilities recorded verbatim", func(t *testing.T) {
		job := &types.JobRecord{
			Title:            "engineer",
			Seniority:        "mid",
			Responsibilities: []string{"Design python services", "Negotiate vendor contracts"},
		}
		candidate := &types.CandidateRecord{YearsOfExperience: 3}
		result := tables.MatchAndScore(job, candidate, "Python programming background")

		if result.Coverage.Responsibilities != 50.0 {
			t.Errorf("responsibility coverage = %v, want 50.0", result.Coverage.Responsibilities)
		}
		want := []string{"Negotiate vendor contracts"}
		if !equalStrings(result.Gaps.WeakEvidenceForResponsibilities, want) {
			t.Errorf("weak responsibilities = %v, want %v", result.Gaps.WeakEvidenceForResponsibilities, want)
		}
	})
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
