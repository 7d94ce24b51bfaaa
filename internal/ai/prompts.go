package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ExtractJob    string
	ExtractResume string
	TailorResume  string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	ExtractJob    string
	ExtractResume string
	TailorResume  string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ExtractJob: `You are an assistant that extracts structured information from job descriptions. You return ONLY valid JSON matching the requested schema, with no commentary.

Extraction rules:
- Seniority mapping: junior/entry-level -> junior; confirmé/intermédiaire/mid-level -> mid; senior/lead/principal/expert/staff -> senior.
- Must-have skills: ONLY specific technical skills, programming languages, frameworks, tools (e.g. "Python", "React", "AWS", "Docker"). NO full sentences or requirements.
- Nice-to-have skills: ONLY specific optional technologies (e.g. "GraphQL", "Kubernetes", "MongoDB"). NO full sentences.
- Responsibilities: action sentences, 3-10 items.
- Keywords: 6-12 specific technical keywords suitable for ATS matching (e.g. "JavaScript", "Node.js", "PostgreSQL").`,

	ExtractResume: `You are an assistant that extracts a structured candidate profile from resume text. You use ONLY facts explicitly present in the resume and return ONLY valid JSON matching the requested schema.

CRITICAL RULES:
- years_of_experience: infer from roles and dates if possible, else approximate conservatively.
- tech_stack: technologies, frameworks, tools, databases, clouds EXACTLY as mentioned.
- soft_skills: concise set, only if explicitly mentioned.
- achievements: keep only bullets already present; quantify only where numbers exist.
- education: extract ONLY degrees, certifications, and qualifications EXPLICITLY mentioned. Include exact abbreviations like B.S., M.S., MBA, PhD. DO NOT infer or suggest missing education.
- languages: as explicitly present.
- ABSOLUTELY NO INVENTION. If information is not explicitly stated, use an empty list or 0.`,

	TailorResume: `You are a professional resume tailor with a strict commitment to honesty. You create a tailored resume using ONLY facts from the original resume, optimized for the target job description, and return ONLY valid JSON matching the requested schema.

Your core principles:
- NEVER invent, exaggerate, or misattribute skills or experiences
- Every statement must be directly traceable to the original resume
- Preserve every section present in the original resume
- Naturally incorporate job description keywords where the underlying skill genuinely exists`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	ExtractJob: `Extract structured information from the following job description.

Job description:
-----
%s
-----`,

	ExtractResume: `Extract a structured candidate profile from the following resume.

Resume:
-----
%s
-----`,

	TailorResume: `Create a tailored resume for the candidate below, optimized for the given job requirements.

Original resume:
-----
%s
-----

Job requirements (structured):
-----
%s
-----

Candidate profile (structured):
-----
%s
-----

Match analysis:
-----
%s
-----

INSTRUCTIONS:
1. PRESERVE ALL SECTIONS: include every section from the original resume.
2. TAILORED TEXT: produce the full formatted resume text.
3. KEYWORDS: naturally incorporate job description keywords backed by real experience.
4. SUMMARY: lead with a professional summary highlighting the candidate's most relevant qualifications for this specific job.
5. RECOMMENDATIONS: suggest 3-5 actionable improvements the candidate could make.`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
