package pipeline

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"resumatch/internal/ai"
	"resumatch/internal/ats"
	"resumatch/internal/errors"
	"resumatch/internal/match"
	"resumatch/internal/types"
)

// Extractor produces structured records from raw posting and resume text.
// Implementations substitute conservative defaults on failure and report the
// substitution through the extraction result rather than the error return.
type Extractor interface {
	ExtractJob(ctx context.Context, jobText string) (ai.JobExtraction, *ai.TokenUsage, error)
	ExtractCandidate(ctx context.Context, resumeText string) (ai.CandidateExtraction, *ai.TokenUsage, error)
}

// Tailor rewrites a resume to target a specific job.
type Tailor interface {
	TailorResume(ctx context.Context, input ai.TailorInput) (types.TailorOutput, *ai.TokenUsage, error)
}

// Pipeline sequences the full matching flow: normalization, extraction,
// canonicalization, deterministic scoring, tailoring, safety checks, and
// ATS validation.
type Pipeline struct {
	extractor Extractor
	tailor    Tailor
	tables    *match.Tables
	validator *ats.Validator
	model     string
	logger    *errors.Logger
}

// Options controls optional pipeline stages.
type Options struct {
	// IncludeATSValidation runs ATS compliance checks on the tailored text
	// and attaches the report to the result.
	IncludeATSValidation bool
}

// New creates a pipeline around the given AI collaborators. The model name is
// only recorded in result metadata.
func New(extractor Extractor, tailor Tailor, model string, logger *errors.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		tailor:    tailor,
		tables:    match.DefaultTables(),
		validator: ats.New(),
		model:     model,
		logger:    logger,
	}
}

// Run executes the full matching pipeline. Extraction failures degrade to
// conservative defaults and are reported in the result metadata; tailoring
// failures and context cancellation abort the run.
func (p *Pipeline) Run(ctx context.Context, input types.MatchInput, opts Options) (*types.MatchOutput, error) {
	tracer := otel.Tracer("resumatch.pipeline")
	ctx, span := tracer.Start(ctx, "pipeline.run", trace.WithAttributes(
		attribute.Bool("pipeline.ats_validation", opts.IncludeATSValidation),
	))
	defer span.End()

	if strings.TrimSpace(input.ResumeText) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Resume text must not be empty", nil)
	}
	if strings.TrimSpace(input.JobText) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeInvalidRequest,
			"Job text must not be empty", nil)
	}

	resumeText, jobText, language := match.NormalizeInputs(input.ResumeText, input.JobText)
	span.SetAttributes(attribute.String("pipeline.language", language))

	jobExtraction, jobTokens, err := p.extractor.ExtractJob(ctx, jobText)
	if err != nil {
		return nil, err
	}
	candidateExtraction, candidateTokens, err := p.extractor.ExtractCandidate(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	job := jobExtraction.Record
	candidate := candidateExtraction.Record
	p.canonicalizeJob(&job)
	p.canonicalizeCandidate(&candidate)

	educationFlags := p.tables.ValidateEducation(candidate.Education, resumeText)

	result := p.tables.MatchAndScore(&job, &candidate, resumeText)
	span.SetAttributes(attribute.Float64("pipeline.score", result.Score))

	tailored, tailorTokens, err := p.tailor.TailorResume(ctx, ai.TailorInput{
		ResumeText: resumeText,
		Job:        job,
		Candidate:  candidate,
		Match:      result,
	})
	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeTailoringFailed,
			"Failed to generate tailored resume", err)
	}

	flags := match.SafetyScan(tailored.TailoredResumeText, resumeText)
	flags = append(flags, educationFlags...)

	var report *types.ATSReport
	if opts.IncludeATSValidation {
		report = p.validator.Validate(tailored.TailoredResumeText, jobKeywords(&job))
		if report.ComplianceLevel == "fair" || report.ComplianceLevel == "poor" {
			for i, issue := range report.Issues {
				if i == 3 {
					break
				}
				flags = append(flags, "ats_issue: "+issue)
			}
		}
	}

	meta := types.Meta{
		DetectedLanguage: language,
		Model:            p.model,
		JobExtraction:    extractionStatus(jobExtraction.Fallback),
		ResumeExtraction: extractionStatus(candidateExtraction.Fallback),
	}
	if jobExtraction.Fallback {
		meta.FallbackReasons = append(meta.FallbackReasons, jobExtraction.Reason)
	}
	if candidateExtraction.Fallback {
		meta.FallbackReasons = append(meta.FallbackReasons, candidateExtraction.Reason)
	}

	p.logger.Debug("Pipeline completed",
		"score", result.Score,
		"language", language,
		"flags", len(flags),
		"total_tokens", totalTokens(jobTokens, candidateTokens, tailorTokens))

	return &types.MatchOutput{
		Score:              result.Score,
		Coverage:           result.Coverage,
		Gaps:               result.Gaps,
		Rationale:          result.Rationale,
		TailoredResumeText: tailored.TailoredResumeText,
		Recommendations:    tailored.Recommendations,
		Flags:              flags,
		ATSValidation:      report,
		Meta:               meta,
	}, nil
}

// ScoreOnly runs deterministic scoring on already-structured records without
// any AI involvement.
func (p *Pipeline) ScoreOnly(input types.ScoreInput) types.ScoreResult {
	job := input.Job
	candidate := input.Candidate
	p.canonicalizeJob(&job)
	p.canonicalizeCandidate(&candidate)
	resumeText := match.CleanText(input.ResumeText)
	return p.tables.MatchAndScore(&job, &candidate, resumeText)
}

// ValidateATS checks resume text for ATS compliance.
func (p *Pipeline) ValidateATS(input types.ATSInput) *types.ATSReport {
	return p.validator.Validate(input.ResumeText, input.JobKeywords)
}

// OptimizeATS rewrites resume text for better ATS parsing.
func (p *Pipeline) OptimizeATS(input types.ATSInput) string {
	return p.validator.Optimize(input.ResumeText, input.JobKeywords)
}

// canonicalizeJob maps an extracted job record onto canonical vocabulary.
// Skills lists are first stripped of requirements prose the extraction model
// tends to leak in.
func (p *Pipeline) canonicalizeJob(job *types.JobRecord) {
	techSkills := p.tables.TechAndSkills()

	if title := match.NormalizeTerm(job.Title, p.tables.Roles); title != "" {
		job.Title = title
	}
	job.Seniority = match.NormalizeTerm(job.Seniority, p.tables.Seniority)

	job.MustHaveSkills = match.NormalizeList(match.CleanSkillsList(job.MustHaveSkills), techSkills)
	job.NiceToHaveSkills = match.NormalizeList(match.CleanSkillsList(job.NiceToHaveSkills), techSkills)
	job.Keywords = match.NormalizeList(match.CleanSkillsList(job.Keywords), techSkills)

	responsibilities := make([]string, 0, len(job.Responsibilities))
	for _, r := range job.Responsibilities {
		if trimmed := strings.TrimSpace(r); trimmed != "" {
			responsibilities = append(responsibilities, trimmed)
		}
	}
	job.Responsibilities = responsibilities
}

// canonicalizeCandidate maps an extracted candidate record onto canonical
// vocabulary. Achievements and languages are kept as extracted.
func (p *Pipeline) canonicalizeCandidate(candidate *types.CandidateRecord) {
	candidate.TechStack = match.NormalizeList(candidate.TechStack, p.tables.TechAndSkills())
	candidate.SoftSkills = match.NormalizeList(candidate.SoftSkills, p.tables.Skills)
	candidate.Education = match.NormalizeEducation(candidate.Education, p.tables.Education)
}

// jobKeywords collects every keyword the job record carries for ATS checks.
func jobKeywords(job *types.JobRecord) []string {
	keywords := make([]string, 0, len(job.MustHaveSkills)+len(job.NiceToHaveSkills)+len(job.Keywords))
	keywords = append(keywords, job.MustHaveSkills...)
	keywords = append(keywords, job.NiceToHaveSkills...)
	keywords = append(keywords, job.Keywords...)
	return keywords
}

func extractionStatus(fallback bool) string {
	if fallback {
		return "fallback"
	}
	return "ok"
}

func totalTokens(usages ...*ai.TokenUsage) int64 {
	var total int64
	for _, u := range usages {
		if u != nil {
			total += u.TotalTokens
		}
	}
	return total
}
