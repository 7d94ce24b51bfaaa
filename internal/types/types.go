package types

// JobRecord represents the structured form of a job posting
type JobRecord struct {
	Title            string   `json:"title" validate:"required"`
	Seniority        string   `json:"seniority" validate:"required,oneof=junior mid senior"`
	MustHaveSkills   []string `json:"must_have_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Responsibilities []string `json:"responsibilities"`
	Keywords         []string `json:"keywords"`
}

// CandidateRecord represents the structured profile extracted from a resume
type CandidateRecord struct {
	YearsOfExperience float64  `json:"years_of_experience" validate:"gte=0,lte=50"`
	TechStack         []string `json:"tech_stack"`
	SoftSkills        []string `json:"soft_skills"`
	Achievements      []string `json:"achievements"`
	Education         []string `json:"education"`
	Languages         []string `json:"languages"`
}

// Coverage breaks a compatibility score down into its weighted components
type Coverage struct {
	MustHave         float64 `json:"must_have"`
	Responsibilities float64 `json:"responsibilities"`
	SeniorityFit     float64 `json:"seniority_fit"`
}

// Gaps lists what matched, what is missing, and which responsibilities
// the resume shows little evidence for
type Gaps struct {
	MatchedSkills                   []string `json:"matched_skills"`
	MissingSkills                   []string `json:"missing_skills"`
	WeakEvidenceForResponsibilities []string `json:"weak_evidence_for_responsibilities"`
}

// ScoreResult represents the deterministic matching verdict
type ScoreResult struct {
	Score     float64  `json:"score"`
	Coverage  Coverage `json:"coverage"`
	Gaps      Gaps     `json:"gaps"`
	Rationale string   `json:"rationale"`
}

// TailorOutput represents the rewritten resume returned by the AI collaborator
type TailorOutput struct {
	TailoredResumeText string   `json:"tailored_resume_text"`
	Recommendations    []string `json:"recommendations"`
}

// ATSReport represents the result of an ATS compliance validation
type ATSReport struct {
	ComplianceLevel string             `json:"compliance_level"` // excellent, good, fair, or poor
	Score           float64            `json:"score"`
	Issues          []string           `json:"issues"`
	Recommendations []string           `json:"recommendations"`
	KeywordDensity  map[string]float64 `json:"keyword_density"`
	StructureScore  float64            `json:"structure_score"`
	FormattingScore float64            `json:"formatting_score"`
}

// Meta carries processing metadata attached to a pipeline result
type Meta struct {
	DetectedLanguage string   `json:"detected_language"`
	Model            string   `json:"model,omitempty"`
	JobExtraction    string   `json:"job_extraction,omitempty"`    // "ok" or "fallback"
	ResumeExtraction string   `json:"resume_extraction,omitempty"` // "ok" or "fallback"
	FallbackReasons  []string `json:"fallback_reasons,omitempty"`
}

// MatchOutput represents the full pipeline result: deterministic scoring,
// the tailored resume, ATS validation, and any safety flags
type MatchOutput struct {
	Score              float64    `json:"score"`
	Coverage           Coverage   `json:"coverage"`
	Gaps               Gaps       `json:"gaps"`
	Rationale          string     `json:"rationale"`
	TailoredResumeText string     `json:"tailored_resume_text"`
	Recommendations    []string   `json:"recommendations"`
	Flags              []string   `json:"flags"`
	ATSValidation      *ATSReport `json:"ats_validation,omitempty"`
	Meta               Meta       `json:"meta"`
}

// MatchInput represents the input for the full matching pipeline
type MatchInput struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// ScoreInput represents the input for deterministic scoring without tailoring
type ScoreInput struct {
	Job        JobRecord       `json:"job"`
	Candidate  CandidateRecord `json:"candidate"`
	ResumeText string          `json:"resume_text"`
}

// ATSInput represents the input for ATS validation or optimization
type ATSInput struct {
	ResumeText  string   `json:"resume_text"`
	JobKeywords []string `json:"job_keywords"`
}

// OptimizeOutput represents the result of ATS text optimization
type OptimizeOutput struct {
	OptimizedText string `json:"optimized_text"`
}
