package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"resumatch/internal/ai"
	resumatchErrors "resumatch/internal/errors"
	"resumatch/internal/observability"
	"resumatch/internal/pipeline"
	"resumatch/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// buildPipeline assembles a matching pipeline from per-operation AI
// configuration. A fresh pipeline is built per request so that each request
// picks up the current configuration.
func (s *Server) buildPipeline() (*pipeline.Pipeline, error) {
	extractConfig := s.AppConfig.GetExtractConfig()
	extractService, err := ai.NewService(&extractConfig, "extract", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create extract service: %w", err)
	}

	tailorConfig := s.AppConfig.GetTailorConfig()
	tailorService, err := ai.NewService(&tailorConfig, "tailor", s.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create tailor service: %w", err)
	}

	return pipeline.New(extractService, tailorService, extractConfig.Model, s.Logger), nil
}

// localPipeline returns a pipeline without AI collaborators for the
// deterministic endpoints (score, ATS validate, ATS optimize).
func (s *Server) localPipeline() *pipeline.Pipeline {
	return pipeline.New(nil, nil, "", s.Logger)
}

// matchErrorStatus maps pipeline errors to HTTP status codes.
func matchErrorStatus(err error) int {
	var appErr *resumatchErrors.AppError
	if errors.As(err, &appErr) && appErr.Type == resumatchErrors.ErrorTypeValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// createMatchHandler wraps the full match pipeline with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resume_text field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobText) == "" {
			err := fmt.Errorf("missing job text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job text", "job_text field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resume_text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}
		if len(req.JobText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("job text too large: %d chars", len(req.JobText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Job text too large", fmt.Sprintf("job_text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.job_length", len(req.JobText)),
			attribute.Bool("request.ats_validation", req.IncludeATSValidation),
			attribute.String("operation", "match"),
		)

		p, err := s.buildPipeline()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		input := types.MatchInput{
			ResumeText: req.ResumeText,
			JobText:    req.JobText,
		}
		opts := pipeline.Options{IncludeATSValidation: req.IncludeATSValidation}

		metrics := om.GetMetrics()
		var result *types.MatchOutput
		err = metrics.TrackOperation(ctx, "match", func(ctx context.Context) *observability.OperationResult {
			output, runErr := p.Run(ctx, input, opts)
			result = output
			return &observability.OperationResult{Error: runErr}
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "pipeline"))
			metrics.RecordBusinessMetric(ctx, "match_completed", false,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to match resume", err.Error(), matchErrorStatus(err))
			return
		}

		metrics.RecordBusinessMetric(ctx, "match_completed", true,
			attribute.Float64("score", result.Score),
			attribute.Int("flags_count", len(result.Flags)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.score", result.Score),
			attribute.String("response.language", result.Meta.DetectedLanguage),
			attribute.Int("response.flags_count", len(result.Flags)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createScoreHandler scores pre-extracted records without calling the AI
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Job.Title) == "" {
			err := fmt.Errorf("missing job title")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job title", "job.title field is required", http.StatusBadRequest)
			return
		}
		if err := types.ValidateRecords(&req.Job, &req.Candidate); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid record", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.must_have_count", len(req.Job.MustHaveSkills)),
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "score"),
		)

		result := s.localPipeline().ScoreOnly(types.ScoreInput{
			Job:        req.Job,
			Candidate:  req.Candidate,
			ResumeText: req.ResumeText,
		})

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "score_computed", true,
			attribute.Float64("score", result.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("response.score", result.Score),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createATSValidateHandler runs the ATS compliance checks on resume text
func (s *Server) createATSValidateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.ats_validate")
		defer span.End()

		req, ok := s.parseATSRequest(w, r)
		if !ok {
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.keywords_count", len(req.JobKeywords)),
			attribute.String("operation", "ats_validate"),
		)

		report := s.localPipeline().ValidateATS(types.ATSInput{
			ResumeText:  req.ResumeText,
			JobKeywords: req.JobKeywords,
		})

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "ats_validated", true,
			attribute.String("compliance_level", report.ComplianceLevel),
			attribute.Float64("score", report.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("response.compliance_level", report.ComplianceLevel),
			attribute.Float64("response.score", report.Score),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createATSOptimizeHandler rewrites resume text for ATS compatibility
func (s *Server) createATSOptimizeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.ats_optimize")
		defer span.End()

		req, ok := s.parseATSRequest(w, r)
		if !ok {
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.Int("request.keywords_count", len(req.JobKeywords)),
			attribute.String("operation", "ats_optimize"),
		)

		optimized := s.localPipeline().OptimizeATS(types.ATSInput{
			ResumeText:  req.ResumeText,
			JobKeywords: req.JobKeywords,
		})
		result := types.OptimizeOutput{OptimizedText: optimized}

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "ats_validated", true,
			attribute.String("mode", "optimize"))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.optimized_length", len(optimized)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// parseATSRequest parses and validates the shared ATS request shape.
func (s *Server) parseATSRequest(w http.ResponseWriter, r *http.Request) (ATSRequest, bool) {
	var req ATSRequest
	if err := parseJSONRequest(r, &req); err != nil {
		writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
		return req, false
	}
	if strings.TrimSpace(req.ResumeText) == "" {
		writeErrorResponse(w, "Missing resume text", "resume_text field is required", http.StatusBadRequest)
		return req, false
	}
	if len(req.ResumeText) > int(s.MaxRequestSize/2) {
		writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resume_text exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
