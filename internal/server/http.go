package server

import (
	"time"

	"jobcraft/internal/config"
	jobcraftErrors "jobcraft/internal/errors"
	"jobcraft/internal/psych"
	"jobcraft/internal/store"
	"jobcraft/internal/types"
)

// ExtractRequest is the request body for the extract endpoint
type ExtractRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// AnalyzeRequest is the request body for the analyze endpoint
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription"`
}

// MatchRequest is the request body for the match endpoint
type MatchRequest struct {
	Profile types.UserProfile `json:"profile"`
	Job     types.JobPosting  `json:"job"`
}

// AssessRequest is the request body for the assess endpoint
type AssessRequest struct {
	Responses []psych.Response `json:"responses"`
}

// GenerateRequest is the request body for the generate endpoint. Format
// selects the response encoding: "pdf" streams the rendered document,
// anything else returns the stored record as JSON.
type GenerateRequest struct {
	types.GenerateDocumentInput
	Format string `json:"format,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Certificate management
	CertificateManager *CertificateManager

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *LimiterManager

	// Persistence (nil when the store is disabled)
	Store store.Store

	// Logger
	Logger *jobcraftErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
	Store          store.Store
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *jobcraftErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *LimiterManager
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewLimiterManager(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Store:          cfg.Store,
		Logger:         logger,
	}
}
