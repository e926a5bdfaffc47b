package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobcraft/internal/extract"
	"jobcraft/internal/jobposting"
	"jobcraft/internal/match"
	"jobcraft/internal/observability"
	"jobcraft/internal/pdfgen"
	"jobcraft/internal/psych"
	"jobcraft/internal/tailor"
	"jobcraft/internal/types"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// createExtractHandler wraps the resume extraction handler with observability
func (s *Server) createExtractHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobcraft.api")
		ctx, span := tracer.Start(ctx, "api.extract")
		defer span.End()

		var req ExtractRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Content) == "" {
			err := fmt.Errorf("missing resume content")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume content", "content field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.content_length", len(req.Content)),
			attribute.String("operation", "extract"),
		)

		result, err := extract.ParseDocument(req.Filename, req.Content)
		metrics := om.GetMetrics()
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om)
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("experience_entries", len(result.Experience)),
			attribute.Int("technical_skills", len(result.Skills.Technical)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.experience_entries", len(result.Experience)),
		)

		writeJSONResponse(w, span, result)
	}
}

// createAnalyzeHandler wraps the job posting analysis handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobcraft.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		analyzeConfig := s.AppConfig.GetAnalyzeConfig()
		analyzer, err := jobposting.NewAnalyzer(analyzeConfig, s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create analyzer", err.Error(), http.StatusInternalServerError)
			return
		}
		defer analyzer.Close()

		metrics := om.GetMetrics()
		result, err := analyzer.Analyze(ctx, req.JobDescription)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "job_analyzed", false, om)
			writeErrorResponse(w, "Failed to analyze job description", err.Error(), http.StatusBadRequest)
			return
		}

		metrics.RecordBusinessMetric(ctx, "job_analyzed", true, om,
			attribute.String("analysis.source", result.Source),
			attribute.Int("requirements_count", len(result.Requirements)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("analysis.source", result.Source),
		)

		writeJSONResponse(w, span, result)
	}
}

// createMatchHandler wraps the match scoring handler with observability
func (s *Server) createMatchHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobcraft.api")
		ctx, span := tracer.Start(ctx, "api.match")
		defer span.End()

		var req MatchRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Job.Title) == "" {
			err := fmt.Errorf("missing job title")
			span.RecordError(err)
			writeErrorResponse(w, "Missing job", "job.title field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.profile_skills", len(req.Profile.Skills)),
			attribute.String("operation", "match"),
		)

		result := match.Score(req.Profile, req.Job)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "match_scored", true, om,
			attribute.Int("match_score", result.MatchScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("match_score", result.MatchScore),
			attribute.Float64("confidence", result.Confidence),
		)

		writeJSONResponse(w, span, result)
	}
}

// createAssessHandler wraps the psychological assessment handler with observability
func (s *Server) createAssessHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("jobcraft.api")
		_, span := tracer.Start(r.Context(), "api.assess")
		defer span.End()

		if r.Method == http.MethodGet {
			// The question battery is public so clients can render the form.
			writeJSONResponse(w, span, psych.Battery)
			return
		}

		var req AssessRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.response_count", len(req.Responses)),
			attribute.String("operation", "assess"),
		)

		result := psych.Analyze(req.Responses)

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("strength_level", result.StrengthLevel),
			attribute.String("risk_level", result.RiskLevel),
		)

		writeJSONResponse(w, span, result)
	}
}

// createGenerateHandler wraps the document generation handler with observability
func (s *Server) createGenerateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobcraft.api")
		ctx, span := tracer.Start(ctx, "api.generate")
		defer span.End()

		var req GenerateRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("document.type", req.Type),
			attribute.String("document.format", req.Format),
			attribute.String("operation", "generate"),
		)

		generator, err := tailor.NewGenerator(s.AppConfig.GetResumeConfig(), s.AppConfig.GetLetterConfig(), s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create generator", err.Error(), http.StatusInternalServerError)
			return
		}
		defer generator.Close()

		metrics := om.GetMetrics()
		doc, err := generator.Generate(ctx, &req.GenerateDocumentInput)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "document_generated", false, om)
			writeErrorResponse(w, "Failed to generate document", err.Error(), http.StatusBadRequest)
			return
		}

		if s.Store != nil {
			if err := s.Store.SaveDocument(ctx, doc); err != nil {
				s.Logger.LogError(err, "Failed to persist generated document", "document_id", doc.ID)
			}
		}

		metrics.RecordBusinessMetric(ctx, "document_generated", true, om,
			attribute.String("document.type", doc.Type),
			attribute.Int("document.content_length", len(doc.Content)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("document.id", doc.ID),
		)

		if req.Format == "pdf" {
			s.writePDFResponse(w, span, doc, &req)
			return
		}

		writeJSONResponse(w, span, doc)
	}
}

// writePDFResponse renders the generated document as a PDF and streams it.
func (s *Server) writePDFResponse(w http.ResponseWriter, span trace.Span, doc *types.GeneratedDocument, req *GenerateRequest) {
	var buf bytes.Buffer
	var pages int
	var err error

	if doc.Type == types.DocumentTypeCoverLetter {
		letter := pdfgen.Letter{
			Company:  doc.Company,
			JobTitle: doc.JobTitle,
			Date:     time.Now().Format("January 2, 2006"),
			Body:     doc.Content,
		}
		if req.Job != nil {
			letter.Location = req.Job.Location
		}
		if req.Parsed != nil {
			pi := req.Parsed.PersonalInfo
			letter.Name = pi.Name
			letter.Contact = []string{pi.Email, pi.Phone, pi.Location}
		}
		pages, err = pdfgen.RenderCoverLetter(letter, &buf)
	} else {
		pages, err = pdfgen.RenderResume(doc.Content, &buf)
	}

	if err != nil {
		span.RecordError(err)
		writeErrorResponse(w, "Failed to render PDF", err.Error(), http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("document.pages", pages))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Type+".pdf"))
	if _, err := w.Write(buf.Bytes()); err != nil {
		span.RecordError(err)
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
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

