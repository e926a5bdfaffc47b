package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jobcraft/internal/config"
	jobcraftErrors "jobcraft/internal/errors"
	"jobcraft/internal/observability"
	"jobcraft/internal/store"
	"jobcraft/internal/types"
)

func testAppConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AI.Provider = "gemini"
	cfg.AI.Model = "gemini-2.5-flash"
	cfg.AI.Timeout = 90 * time.Second
	cfg.Observability.HealthCheck.Timeout = 5 * time.Second
	return cfg
}

func newTestServer(t *testing.T, cfg ServerConfig) *Server {
	t.Helper()
	logger, err := jobcraftErrors.New("error")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	cfg.Version = "test"
	return NewServer(testAppConfig(), cfg, logger)
}

func disabledObservability(t *testing.T) *observability.ObservabilityManager {
	t.Helper()
	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, testAppConfig())
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}
	return om
}

func TestAuthMiddleware(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	tests := []struct {
		name       string
		apiKeys    []string
		header     map[string]string
		wantStatus int
	}{
		{name: "no keys configured", apiKeys: nil, wantStatus: http.StatusOK},
		{
			name:       "missing key",
			apiKeys:    []string{"secret-key-123"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid key",
			apiKeys:    []string{"secret-key-123"},
			header:     map[string]string{"X-API-Key": "wrong"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid header key",
			apiKeys:    []string{"secret-key-123"},
			header:     map[string]string{"X-API-Key": "secret-key-123"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid bearer token",
			apiKeys:    []string{"secret-key-123"},
			header:     map[string]string{"Authorization": "Bearer secret-key-123"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, ServerConfig{APIKeys: tt.apiKeys})

			req := httptest.NewRequest(http.MethodGet, "/extract", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			s.authMiddleware(next)(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "****"},
		{in: "short", want: "****"},
		{in: "12345678", want: "****"},
		{in: "123456789abcdef", want: "12345678****"},
	}
	for _, tt := range tests {
		if got := maskAPIKey(tt.in); got != tt.want {
			t.Errorf("maskAPIKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseJSONRequest(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"test"}`))
		req.Header.Set("Content-Type", "application/json")

		var p payload
		if err := parseJSONRequest(req, &p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "test" {
			t.Errorf("unexpected payload %+v", p)
		}
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")

		var p payload
		if err := parseJSONRequest(req, &p); err == nil {
			t.Error("expected a content-type error")
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")

		var p payload
		if err := parseJSONRequest(req, &p); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestHealthHandlerFallbackMode(t *testing.T) {
	s := newTestServer(t, ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.healthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid health response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}

	aiModels, ok := body["ai_models"].(map[string]any)
	if !ok {
		t.Fatalf("expected ai_models map, got %T", body["ai_models"])
	}
	for _, op := range []string{"analyze", "resume", "letter"} {
		info, ok := aiModels[op].(map[string]any)
		if !ok {
			t.Fatalf("missing status for operation %s", op)
		}
		if info["mode"] != "fallback" {
			t.Errorf("expected fallback mode for %s without an API key, got %v", op, info)
		}
	}
}

func TestHealthHandlerRejectsPost(t *testing.T) {
	s := newTestServer(t, ServerConfig{})

	rec := httptest.NewRecorder()
	s.healthHandler(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestStatsHandler(t *testing.T) {
	s := newTestServer(t, ServerConfig{MaxRequestSize: 1024})

	rec := httptest.NewRecorder()
	s.statsHandler(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid stats response: %v", err)
	}
	rl, ok := body["rate_limiting"].(map[string]any)
	if !ok || rl["enabled"] != false {
		t.Errorf("expected rate limiting reported disabled, got %v", body["rate_limiting"])
	}
	srv, ok := body["server"].(map[string]any)
	if !ok || srv["max_request_size_bytes"] != float64(1024) {
		t.Errorf("expected max request size in stats, got %v", body["server"])
	}
}

func TestDocumentsHandlerWithoutStore(t *testing.T) {
	s := newTestServer(t, ServerConfig{})

	rec := httptest.NewRecorder()
	s.documentsHandler(rec, httptest.NewRequest(http.MethodGet, "/documents", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 when the store is disabled, got %d", rec.Code)
	}
}

func TestDocumentEndpoints(t *testing.T) {
	docStore, err := store.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { docStore.Close() })

	doc := &types.GeneratedDocument{
		ID: "doc-1", Type: types.DocumentTypeResume, Title: "Resume",
		Content: "body", ProfileID: "p1", CreatedAt: "2026-08-01T10:00:00Z",
	}
	if err := docStore.SaveDocument(context.Background(), doc); err != nil {
		t.Fatalf("failed to save document: %v", err)
	}

	s := newTestServer(t, ServerConfig{Store: docStore})

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.documentsHandler(rec, httptest.NewRequest(http.MethodGet, "/documents", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var docs []types.GeneratedDocument
		if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
			t.Fatalf("invalid list response: %v", err)
		}
		if len(docs) != 1 || docs[0].ID != "doc-1" {
			t.Errorf("unexpected documents %+v", docs)
		}
	})

	t.Run("get by ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.documentHandler(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var got types.GeneratedDocument
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid document response: %v", err)
		}
		if got.ID != "doc-1" || got.Title != "Resume" {
			t.Errorf("unexpected document %+v", got)
		}
	})

	t.Run("missing ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.documentHandler(rec, httptest.NewRequest(http.MethodGet, "/documents/", nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown ID", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.documentHandler(rec, httptest.NewRequest(http.MethodGet, "/documents/nope", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.documentHandler(rec, httptest.NewRequest(http.MethodDelete, "/documents/doc-1", nil))
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		s.documentHandler(rec, httptest.NewRequest(http.MethodGet, "/documents/doc-1", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", rec.Code)
		}
	})
}

func TestMatchEndpoint(t *testing.T) {
	s := newTestServer(t, ServerConfig{})
	handler := s.createMatchHandler(disabledObservability(t))

	t.Run("valid request", func(t *testing.T) {
		body := `{"profile":{"skills":["go"]},"job":{"title":"Backend Engineer","preferredSkills":["go","sql"]}}`
		req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var result types.JobMatchAnalysis
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid match response: %v", err)
		}
		if result.JobID != "Backend Engineer" {
			t.Errorf("unexpected job ID %q", result.JobID)
		}
		if result.MatchScore <= 0 || result.MatchScore > 100 {
			t.Errorf("match score out of range: %d", result.MatchScore)
		}
	})

	t.Run("missing job title", func(t *testing.T) {
		body := `{"profile":{"skills":["go"]},"job":{}}`
		req := httptest.NewRequest(http.MethodPost, "/match", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestAssessEndpoint(t *testing.T) {
	s := newTestServer(t, ServerConfig{})
	handler := s.createAssessHandler(disabledObservability(t))

	t.Run("GET returns the questionnaire", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/assess", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var questions []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &questions); err != nil {
			t.Fatalf("invalid battery response: %v", err)
		}
		if len(questions) == 0 {
			t.Error("expected a non-empty question battery")
		}
	})

	t.Run("POST scores responses", func(t *testing.T) {
		body := `{"responses":[{"questionId":"stress_handling","optionIndex":5}]}`
		req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		var result types.PsychologicalAnalysis
		if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
			t.Fatalf("invalid assessment response: %v", err)
		}
		if result.StrengthLevel != types.LevelHigh {
			t.Errorf("expected High strength for a top answer, got %q", result.StrengthLevel)
		}
	})
}

func TestLimiterManagerBurstAndStats(t *testing.T) {
	m := NewLimiterManager(60, 2, nil)
	defer m.Close()

	// Burst capacity of 2 admits two immediate requests for a key and
	// rejects the third until tokens refill.
	if !m.Allow("ip:10.0.0.1") || !m.Allow("ip:10.0.0.1") {
		t.Error("expected the burst capacity to admit two requests")
	}
	if m.Allow("ip:10.0.0.1") {
		t.Error("expected the third immediate request to be rejected")
	}

	// A different key gets its own limiter.
	if !m.Allow("api:other-key") {
		t.Error("expected an untouched key to be admitted")
	}

	stats := m.GetStats()
	if stats["active_limiters"] != 2 {
		t.Errorf("expected 2 active limiters, got %v", stats["active_limiters"])
	}
	if stats["burst_capacity"] != 2 {
		t.Errorf("expected burst capacity 2, got %v", stats["burst_capacity"])
	}
	if stats["rate_per_minute"] != 60.0 {
		t.Errorf("expected 60 requests per minute, got %v", stats["rate_per_minute"])
	}
}
