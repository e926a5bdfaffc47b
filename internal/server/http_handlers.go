package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"jobcraft/internal/ai"
	"jobcraft/internal/config"

	"go.opentelemetry.io/otel/trace"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a health check endpoint including AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "jobcraft",
		"version": s.Version,
	}

	aiStatus := s.checkAIModelsHealth()
	response["ai_models"] = aiStatus

	if certStatus := s.checkCertificateHealth(); certStatus != nil {
		response["certificates"] = certStatus
	}

	if s.Store != nil {
		response["store"] = s.checkStoreHealth(r.Context())
	}

	// Degrade overall status only when a configured AI model is unreachable.
	overallHealthy := true
	for _, modelStatus := range aiStatus {
		if modelInfo, ok := modelStatus.(map[string]any); ok {
			if available, exists := modelInfo["available"]; exists {
				if avail, ok := available.(bool); ok && !avail {
					overallHealthy = false
					break
				}
			}
		}
	}

	if certStatus, ok := response["certificates"].(map[string]any); ok {
		if healthy, exists := certStatus["healthy"]; exists {
			if certHealthy, ok := healthy.(bool); ok && !certHealthy {
				overallHealthy = false
			}
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkAIModelsHealth checks the models used by each AI-backed operation.
// Operations without an API key report fallback mode instead of an error.
func (s *Server) checkAIModelsHealth() map[string]any {
	timeout := s.getHealthCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	aiStatus := make(map[string]any)

	operations := map[string]config.OperationAIConfig{
		"analyze": s.AppConfig.GetAnalyzeConfig(),
		"resume":  s.AppConfig.GetResumeConfig(),
		"letter":  s.AppConfig.GetLetterConfig(),
	}
	for name, opCfg := range operations {
		aiStatus[name] = s.checkOperationModel(ctx, name, opCfg)
	}

	return aiStatus
}

// checkOperationModel reports model reachability for one AI operation.
func (s *Server) checkOperationModel(ctx context.Context, operation string, opCfg config.OperationAIConfig) map[string]any {
	if opCfg.APIKey == "" {
		return map[string]any{
			"mode":  "fallback",
			"model": opCfg.Model,
		}
	}

	service, err := ai.NewService(&opCfg, operation, s.Logger)
	if err != nil {
		return map[string]any{
			"available": false,
			"model":     opCfg.Model,
			"error":     err.Error(),
		}
	}
	defer func() {
		if err := service.Close(); err != nil {
			log.Printf("Failed to close AI service for %s health check: %v", operation, err)
		}
	}()

	info := service.GetModelInfo(ctx)
	status := map[string]any{
		"available": info.Available,
		"model":     info.Name,
	}
	if info.Error != "" {
		status["error"] = info.Error
	}
	if info.Version != "" {
		status["version"] = info.Version
	}
	return status
}

// checkCertificateHealth reports certificate status when a manager is running.
// Returns nil when TLS auto-reload is not in use.
func (s *Server) checkCertificateHealth() map[string]any {
	if s.CertificateManager == nil {
		return nil
	}

	status := map[string]any{"healthy": true}

	remaining, err := s.CertificateManager.CheckExpiry()
	if err != nil {
		status["healthy"] = false
		status["error"] = err.Error()
		return status
	}
	status["expires_in"] = remaining.String()
	if remaining <= 0 {
		status["healthy"] = false
		status["error"] = "certificate has expired"
	}

	metrics := s.CertificateManager.GetMetrics()
	status["reload_count"] = metrics.ReloadCount
	if !metrics.LastReloadSuccess && metrics.LastReloadError != "" {
		status["last_reload_error"] = metrics.LastReloadError
	}

	return status
}

// checkStoreHealth verifies the database answers a trivial query.
func (s *Server) checkStoreHealth(ctx context.Context) map[string]any {
	if _, err := s.Store.ListProfiles(ctx); err != nil {
		return map[string]any{
			"available": false,
			"error":     err.Error(),
		}
	}
	return map[string]any{"available": true}
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "jobcraft",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// documentsHandler lists stored documents, optionally filtered by profile.
func (s *Server) documentsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Store == nil {
		writeErrorResponse(w, "Store disabled", "document persistence is not enabled", http.StatusNotFound)
		return
	}

	docs, err := s.Store.ListDocuments(r.Context(), r.URL.Query().Get("profileId"))
	if err != nil {
		writeErrorResponse(w, "Failed to list documents", err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(docs); err != nil {
		log.Printf("Failed to encode documents response: %v", err)
	}
}

// documentHandler serves or deletes a single stored document by ID.
func (s *Server) documentHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Store == nil {
		writeErrorResponse(w, "Store disabled", "document persistence is not enabled", http.StatusNotFound)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/documents/")
	if id == "" {
		writeErrorResponse(w, "Missing document ID", "document ID is required in the path", http.StatusBadRequest)
		return
	}

	if r.Method == http.MethodDelete {
		if err := s.Store.DeleteDocument(r.Context(), id); err != nil {
			writeErrorResponse(w, "Document not found", err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	doc, err := s.Store.GetDocument(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, "Document not found", err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		log.Printf("Failed to encode document response: %v", err)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeJSONResponse encodes a successful JSON payload, recording failures on the span.
func writeJSONResponse(w http.ResponseWriter, span trace.Span, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
