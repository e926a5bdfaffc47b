package jobposting

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"jobcraft/internal/ai"
	"jobcraft/internal/config"
	"jobcraft/internal/errors"
	"jobcraft/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Analyzer converts raw job posting text into a structured analysis. It
// prefers the configured AI provider and falls back to keyword heuristics
// whenever the provider is unavailable or returns something unusable.
type Analyzer struct {
	service *ai.Service
	cfg     config.OperationAIConfig
	logger  *errors.Logger
}

// NewAnalyzer creates an analyzer. When no API key is configured the AI path
// is skipped entirely and every analysis uses the heuristic fallback.
func NewAnalyzer(cfg config.OperationAIConfig, logger *errors.Logger) (*Analyzer, error) {
	a := &Analyzer{cfg: cfg, logger: logger}

	if cfg.APIKey != "" {
		service, err := ai.NewService(&cfg, "analyze_job", logger)
		if err != nil {
			return nil, err
		}
		a.service = service
	} else if logger != nil {
		logger.Info("No AI API key configured, job analysis will use heuristic fallback")
	}

	return a, nil
}

// Close releases the underlying AI client, if any.
func (a *Analyzer) Close() error {
	if a.service == nil {
		return nil
	}
	return a.service.Close()
}

// aiJobPayload is the JSON shape the model is instructed to return.
type aiJobPayload struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Location     string   `json:"location"`
}

// Analyze extracts the structured posting from raw description text.
func (a *Analyzer) Analyze(ctx context.Context, description string) (*types.JobPostingAnalysis, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyContent, "job description is empty", nil)
	}

	tracer := otel.Tracer("jobcraft.jobposting")
	ctx, span := tracer.Start(ctx, "jobposting.analyze")
	defer span.End()
	span.SetAttributes(attribute.Int("input.description_length", len(description)))

	if a.service != nil {
		posting, err := a.analyzeWithAI(ctx, description)
		if err == nil {
			span.SetAttributes(attribute.String("analysis.source", string(types.AnalysisSourceAI)))
			return &types.JobPostingAnalysis{JobPosting: *posting, Source: types.AnalysisSourceAI}, nil
		}
		span.RecordError(err)
		if a.logger != nil {
			a.logger.Warn("AI job analysis failed, using heuristic fallback", "error", err)
		}
	}

	posting := analyzeFallback(description)
	span.SetAttributes(attribute.String("analysis.source", string(types.AnalysisSourceFallback)))
	return &types.JobPostingAnalysis{JobPosting: posting, Source: types.AnalysisSourceFallback}, nil
}

// analyzeWithAI runs the provider round trip and validates the response.
func (a *Analyzer) analyzeWithAI(ctx context.Context, description string) (*types.JobPosting, error) {
	systemPrompt := a.cfg.CustomPrompts.SystemPrompts.AnalyzeJob
	if systemPrompt == "" {
		systemPrompt = ai.DefaultSystemPrompts.AnalyzeJob
	}
	userTemplate := a.cfg.CustomPrompts.UserPrompts.AnalyzeJob
	if userTemplate == "" {
		userTemplate = ai.DefaultUserPrompts.AnalyzeJob
	}

	result, err := a.service.Generate(ctx, fmt.Sprintf(userTemplate, description), ai.GenerateOptions{
		SystemPrompt: systemPrompt,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	var payload aiJobPayload
	if err := json.Unmarshal([]byte(result.Content), &payload); err != nil {
		return nil, errors.NewAIError(errors.ErrCodeAIParseFailed, "failed to parse job analysis response", err)
	}

	if strings.TrimSpace(payload.Title) == "" {
		return nil, errors.NewAIError(errors.ErrCodeAIParseFailed, "job analysis response is missing a title", nil)
	}

	posting := &types.JobPosting{
		Title:           strings.TrimSpace(payload.Title),
		Company:         strings.TrimSpace(payload.Company),
		Requirements:    payload.Requirements,
		PreferredSkills: payload.Skills,
		Location:        strings.TrimSpace(payload.Location),
		Description:     description,
	}
	if posting.Location == "" {
		posting.Location = FallbackLocation
	}
	return posting, nil
}
