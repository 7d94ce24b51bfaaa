package match

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"resumatch/internal/types"
)

// Weights of the three score components.
const (
	mustHaveWeight         = 0.7
	responsibilitiesWeight = 0.2
	seniorityWeight        = 0.1
)

// SeniorityFit scores how well a candidate's years of experience fit the
// seniority level a job asks for. Unknown levels score a neutral 60.
func SeniorityFit(jobSeniority string, years float64) float64 {
	switch strings.ToLower(jobSeniority) {
	case "junior":
		if years < 2 {
			return 100.0
		}
		return 60.0
	case "mid":
		if years >= 2 && years < 6 {
			return 100.0
		}
		if years >= 6 {
			return 80.0
		}
		return 40.0
	case "senior":
		if years >= 5 {
			return 100.0
		}
		if years >= 3 {
			return 70.0
		}
		return 30.0
	}
	return 60.0
}

// MatchAndScore computes the deterministic compatibility verdict between a
// job and a candidate. Evidence is searched in the resume text plus the
// candidate's achievements; a must-have skill also counts when it appears
// verbatim in the extracted tech stack. Empty requirement lists score zero
// coverage rather than dividing by zero.
func (t *Tables) MatchAndScore(job *types.JobRecord, candidate *types.CandidateRecord, resumeText string) types.ScoreResult {
	blob := resumeText + " " + strings.Join(candidate.Achievements, " | ")

	inStack := make(map[string]struct{}, len(candidate.TechStack))
	for _, s := range candidate.TechStack {
		inStack[s] = struct{}{}
	}

	matched := []string{}
	missing := []string{}
	mustHits := 0
	for _, skill := range job.MustHaveSkills {
		_, direct := inStack[skill]
		if direct || t.ContainsSkill(blob, skill) {
			mustHits++
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	mustCov := float64(mustHits) / math.Max(1, float64(len(job.MustHaveSkills))) * 100.0

	weak := []string{}
	respHits := 0
	for _, resp := range job.Responsibilities {
		hit := false
		for _, token := range strings.Fields(strings.ToLower(resp)) {
			if utf8.RuneCountInString(token) > 3 && t.ContainsSkill(blob, token) {
				hit = true
				break
			}
		}
		if hit {
			respHits++
		} else {
			weak = append(weak, resp)
		}
	}
	respCov := float64(respHits) / math.Max(1, float64(len(job.Responsibilities))) * 100.0

	senFit := SeniorityFit(job.Seniority, candidate.YearsOfExperience)

	score := mustHaveWeight*mustCov + responsibilitiesWeight*respCov + seniorityWeight*senFit

	return types.ScoreResult{
		Score: math.Round(score*100) / 100,
		Coverage: types.Coverage{
			MustHave:         mustCov,
			Responsibilities: respCov,
			SeniorityFit:     senFit,
		},
		Gaps: types.Gaps{
			MatchedSkills:                   matched,
			MissingSkills:                   missing,
			WeakEvidenceForResponsibilities: weak,
		},
		Rationale: fmt.Sprintf("Core skills coverage %.0f%%, responsibilities %.0f%%, seniority fit %.0f%%.", mustCov, respCov, senFit),
	}
}
