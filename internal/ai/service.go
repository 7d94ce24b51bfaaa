package ai

import (
	"context"
	"fmt"

	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/types"

	"github.com/go-playground/validator/v10"
)

// Service handles AI operations for the matching pipeline. Extraction
// methods never surface provider failures to the caller: they substitute
// conservative default records and report the substitution in the result.
type Service struct {
	Provider Provider // Exported for access from server package
	config   *config.OperationAIConfig
	validate *validator.Validate
	logger   *errors.Logger
}

// NewService creates a new AI service instance with configuration for a specific operation
func NewService(cfg *config.OperationAIConfig, operationType string, logger *errors.Logger) (*Service, error) {
	var provider Provider
	var err error

	logger.Debug("Initializing AI service",
		"provider", cfg.Provider,
		"operation_type", operationType,
		"model", cfg.Model,
		"temperature", *cfg.Temperature,
		"timeout", *cfg.Timeout,
		"max_retries", *cfg.MaxRetries,
		"use_system_prompts", *cfg.UseSystemPrompts)

	switch cfg.Provider {
	case "gemini":
		provider, err = NewGeminiProvider(cfg, operationType, logger)
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported AI provider: %s", cfg.Provider), nil)
	}

	if err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIServiceFailed,
			"Failed to create AI provider", err)
	}

	return &Service{
		Provider: provider,
		config:   cfg,
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// newServiceWithProvider wires a service around an existing provider.
// Used by tests to substitute stub providers.
func newServiceWithProvider(provider Provider, logger *errors.Logger) (*Service, error) {
	return &Service{
		Provider: provider,
		config:   &config.OperationAIConfig{},
		validate: validator.New(),
		logger:   logger,
	}, nil
}

// ExtractJob extracts a structured job record, falling back to a
// conservative default when the provider fails or returns an invalid record.
// The error return is reserved for context cancellation.
func (s *Service) ExtractJob(ctx context.Context, jobText string) (JobExtraction, *TokenUsage, error) {
	record, tokenUsage, err := s.Provider.ExtractJob(ctx, jobText)
	if err != nil {
		if ctx.Err() != nil {
			return JobExtraction{}, nil, ctx.Err()
		}
		s.logger.Warn("Job extraction failed, substituting conservative defaults",
			"error", err.Error())
		return JobExtraction{
			Record:   DefaultJobRecord(),
			Fallback: true,
			Reason:   fmt.Sprintf("job extraction failed: %v", err),
		}, nil, nil
	}

	if err := s.validate.Struct(&record); err != nil {
		s.logger.Warn("Job extraction returned an invalid record, substituting conservative defaults",
			"error", err.Error())
		return JobExtraction{
			Record:   DefaultJobRecord(),
			Fallback: true,
			Reason:   fmt.Sprintf("invalid job record: %v", err),
		}, tokenUsage, nil
	}

	return JobExtraction{Record: record}, tokenUsage, nil
}

// ExtractCandidate extracts a structured candidate record with the same
// fallback policy as ExtractJob.
func (s *Service) ExtractCandidate(ctx context.Context, resumeText string) (CandidateExtraction, *TokenUsage, error) {
	record, tokenUsage, err := s.Provider.ExtractCandidate(ctx, resumeText)
	if err != nil {
		if ctx.Err() != nil {
			return CandidateExtraction{}, nil, ctx.Err()
		}
		s.logger.Warn("Candidate extraction failed, substituting conservative defaults",
			"error", err.Error())
		return CandidateExtraction{
			Record:   DefaultCandidateRecord(),
			Fallback: true,
			Reason:   fmt.Sprintf("candidate extraction failed: %v", err),
		}, nil, nil
	}

	if err := s.validate.Struct(&record); err != nil {
		s.logger.Warn("Candidate extraction returned an invalid record, substituting conservative defaults",
			"error", err.Error())
		return CandidateExtraction{
			Record:   DefaultCandidateRecord(),
			Fallback: true,
			Reason:   fmt.Sprintf("invalid candidate record: %v", err),
		}, tokenUsage, nil
	}

	return CandidateExtraction{Record: record}, tokenUsage, nil
}

// TailorResume passes the tailoring request through to the provider.
// Tailoring has no meaningful fallback, so failures surface as errors.
func (s *Service) TailorResume(ctx context.Context, input TailorInput) (types.TailorOutput, *TokenUsage, error) {
	return s.Provider.TailorResume(ctx, input)
}

// GetModelInfo returns information about the AI model for health checks
func (s *Service) GetModelInfo(ctx context.Context) any {
	return s.Provider.GetModelInfo(ctx)
}
