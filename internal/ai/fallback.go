package ai

import "resumatch/internal/types"

// DefaultJobRecord returns the conservative job record substituted when
// extraction fails: generic skills and a mid seniority assumption, so the
// scorer produces a cautious but well-defined verdict.
func DefaultJobRecord() types.JobRecord {
	return types.JobRecord{
		Title:            "unspecified role",
		Seniority:        "mid",
		MustHaveSkills:   []string{"communication", "problem solving"},
		NiceToHaveSkills: []string{},
		Responsibilities: []string{},
		Keywords:         []string{},
	}
}

// DefaultCandidateRecord returns the conservative candidate record
// substituted when resume extraction fails. Empty lists and zero years mean
// no evidence is ever invented on the candidate's behalf.
func DefaultCandidateRecord() types.CandidateRecord {
	return types.CandidateRecord{
		YearsOfExperience: 0,
		TechStack:         []string{},
		SoftSkills:        []string{},
		Achievements:      []string{},
		Education:         []string{},
		Languages:         []string{},
	}
}
