package ai

import (
	"context"

	"resumatch/internal/types"
)

// Provider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type Provider interface {
	ExtractJob(ctx context.Context, jobText string) (types.JobRecord, *TokenUsage, error)
	ExtractCandidate(ctx context.Context, resumeText string) (types.CandidateRecord, *TokenUsage, error)
	TailorResume(ctx context.Context, input TailorInput) (types.TailorOutput, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

// TailorInput carries the original resume plus the structured records and
// deterministic match verdict the tailoring prompt is grounded on
type TailorInput struct {
	ResumeText string
	Job        types.JobRecord
	Candidate  types.CandidateRecord
	Match      types.ScoreResult
}

// JobExtraction is the result of job description extraction. When the
// provider fails, Record holds a conservative default and Fallback is set
// so downstream scoring always receives a well-typed record.
type JobExtraction struct {
	Record   types.JobRecord
	Fallback bool
	Reason   string
}

// CandidateExtraction is the result of resume extraction, with the same
// fallback convention as JobExtraction.
type CandidateExtraction struct {
	Record   types.CandidateRecord
	Fallback bool
	Reason   string
}
