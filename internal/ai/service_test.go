package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"resumatch/internal/types"
)

// stubProvider implements Provider with canned responses for service tests.
type stubProvider struct {
	job          types.JobRecord
	jobErr       error
	candidate    types.CandidateRecord
	candidateErr error
	tailored     types.TailorOutput
	tailorErr    error
}

func (s *stubProvider) ExtractJob(_ context.Context, _ string) (types.JobRecord, *TokenUsage, error) {
	return s.job, nil, s.jobErr
}

func (s *stubProvider) ExtractCandidate(_ context.Context, _ string) (types.CandidateRecord, *TokenUsage, error) {
	return s.candidate, nil, s.candidateErr
}

func (s *stubProvider) TailorResume(_ context.Context, _ TailorInput) (types.TailorOutput, *TokenUsage, error) {
	return s.tailored, nil, s.tailorErr
}

func (s *stubProvider) GetModelInfo(_ context.Context) *ModelInfo { return nil }

func (s *stubProvider) Close() error { return nil }

func newStubService(p Provider) *Service {
	svc, _ := newServiceWithProvider(p, testLogger)
	return svc
}

func TestExtractJobSuccess(t *testing.T) {
	stub := &stubProvider{
		job: types.JobRecord{
			Title:          "Backend Engineer",
			Seniority:      "senior",
			MustHaveSkills: []string{"go", "postgresql"},
		},
	}
	svc := newStubService(stub)

	extraction, _, err := svc.ExtractJob(context.Background(), "some job description")
	if err != nil {
		t.Fatalf("ExtractJob returned error: %v", err)
	}
	if extraction.Fallback {
		t.Errorf("Expected no fallback, got fallback with reason %q", extraction.Reason)
	}
	if extraction.Record.Title != "Backend Engineer" {
		t.Errorf("Expected title 'Backend Engineer', got %q", extraction.Record.Title)
	}
}

func TestExtractJobProviderFailureFallsBack(t *testing.T) {
	stub := &stubProvider{jobErr: errors.New("model unavailable")}
	svc := newStubService(stub)

	extraction, _, err := svc.ExtractJob(context.Background(), "some job description")
	if err != nil {
		t.Fatalf("Provider failure should not surface as error, got: %v", err)
	}
	if !extraction.Fallback {
		t.Fatal("Expected fallback extraction")
	}
	if !strings.Contains(extraction.Reason, "model unavailable") {
		t.Errorf("Fallback reason should carry the provider error, got %q", extraction.Reason)
	}

	def := DefaultJobRecord()
	if extraction.Record.Title != def.Title {
		t.Errorf("Expected default title %q, got %q", def.Title, extraction.Record.Title)
	}
	if extraction.Record.Seniority != "mid" {
		t.Errorf("Expected default seniority 'mid', got %q", extraction.Record.Seniority)
	}
	if len(extraction.Record.MustHaveSkills) == 0 {
		t.Error("Default job record should carry generic must-have skills")
	}
}

func TestExtractJobInvalidRecordFallsBack(t *testing.T) {
	// Missing title and an out-of-range seniority fail record validation
	stub := &stubProvider{
		job: types.JobRecord{Seniority: "principal"},
	}
	svc := newStubService(stub)

	extraction, _, err := svc.ExtractJob(context.Background(), "some job description")
	if err != nil {
		t.Fatalf("Invalid record should not surface as error, got: %v", err)
	}
	if !extraction.Fallback {
		t.Fatal("Expected fallback extraction for invalid record")
	}
	if !strings.Contains(extraction.Reason, "invalid job record") {
		t.Errorf("Expected validation reason, got %q", extraction.Reason)
	}
}

func TestExtractJobContextCancellation(t *testing.T) {
	stub := &stubProvider{jobErr: context.Canceled}
	svc := newStubService(stub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := svc.ExtractJob(ctx, "some job description")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestExtractCandidateProviderFailureFallsBack(t *testing.T) {
	stub := &stubProvider{candidateErr: errors.New("quota exceeded")}
	svc := newStubService(stub)

	extraction, _, err := svc.ExtractCandidate(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("Provider failure should not surface as error, got: %v", err)
	}
	if !extraction.Fallback {
		t.Fatal("Expected fallback extraction")
	}
	if extraction.Record.YearsOfExperience != 0 {
		t.Errorf("Default candidate record should carry zero experience, got %f", extraction.Record.YearsOfExperience)
	}
	if len(extraction.Record.TechStack) != 0 {
		t.Error("Default candidate record should not invent a tech stack")
	}
}

func TestExtractCandidateInvalidRecordFallsBack(t *testing.T) {
	stub := &stubProvider{
		candidate: types.CandidateRecord{YearsOfExperience: 120},
	}
	svc := newStubService(stub)

	extraction, _, err := svc.ExtractCandidate(context.Background(), "some resume text")
	if err != nil {
		t.Fatalf("Invalid record should not surface as error, got: %v", err)
	}
	if !extraction.Fallback {
		t.Fatal("Expected fallback extraction for invalid record")
	}
	if !strings.Contains(extraction.Reason, "invalid candidate record") {
		t.Errorf("Expected validation reason, got %q", extraction.Reason)
	}
}

func TestTailorResumePassesThroughErrors(t *testing.T) {
	tailorErr := errors.New("generation failed")
	stub := &stubProvider{tailorErr: tailorErr}
	svc := newStubService(stub)

	_, _, err := svc.TailorResume(context.Background(), TailorInput{ResumeText: "resume"})
	if !errors.Is(err, tailorErr) {
		t.Errorf("Expected tailoring error to surface, got %v", err)
	}
}
