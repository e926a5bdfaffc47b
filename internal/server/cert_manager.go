package server

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"sync"
	"time"

	"jobcraft/internal/config"
	"jobcraft/internal/errors"
	"jobcraft/internal/observability"
)

// CertificateMetrics tracks certificate reload activity
type CertificateMetrics struct {
	ReloadCount       int64      `json:"reloadCount"`
	SuccessCount      int64      `json:"successCount"`
	FailureCount      int64      `json:"failureCount"`
	LastReloadTime    *time.Time `json:"lastReloadTime,omitempty"`
	LastReloadSuccess bool       `json:"lastReloadSuccess"`
	LastReloadError   string     `json:"lastReloadError,omitempty"`
}

// ReloadCallback is invoked after each reload attempt
type ReloadCallback func(success bool, err error)

// CertificateManager keeps the server certificate current. Certificates come
// from PEM content in config or from files on disk; file-backed certificates
// are reloaded automatically when a CertWatcher reports a change.
type CertificateManager struct {
	mu sync.RWMutex

	tlsConfig *config.TLSConfig
	om        *observability.ObservabilityManager
	logger    *errors.Logger

	serverCert *tls.Certificate
	watcher    *CertWatcher

	metrics   CertificateMetrics
	callbacks []ReloadCallback

	running bool
}

// NewCertificateManager creates a certificate manager for the given TLS config
func NewCertificateManager(tlsConfig *config.TLSConfig, om *observability.ObservabilityManager, logger *errors.Logger) *CertificateManager {
	return &CertificateManager{
		tlsConfig: tlsConfig,
		om:        om,
		logger:    logger,
	}
}

// Start performs the initial certificate load and begins file watching
func (cm *CertificateManager) Start() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.running {
		return fmt.Errorf("certificate manager is already running")
	}

	if err := cm.loadCertificateLocked(); err != nil {
		return fmt.Errorf("initial certificate load failed: %w", err)
	}

	// Content-based certificates have no files to watch
	if cm.tlsConfig.CertFile != "" && cm.tlsConfig.KeyFile != "" {
		watcher, err := NewCertWatcher(
			cm.tlsConfig.CertFile,
			cm.tlsConfig.KeyFile,
			cm.tlsConfig.CAFile,
			cm.tlsConfig.AutoReload.DebounceDelay,
			cm.reload,
			cm.logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create certificate watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start certificate watcher: %w", err)
		}
		cm.watcher = watcher
	}

	cm.running = true
	return nil
}

// Stop stops the certificate manager and its watcher
func (cm *CertificateManager) Stop() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.running {
		return nil
	}

	if cm.watcher != nil {
		if err := cm.watcher.Stop(); err != nil {
			return err
		}
		cm.watcher = nil
	}

	cm.running = false
	return nil
}

// AddReloadCallback registers a callback invoked after each reload attempt
func (cm *CertificateManager) AddReloadCallback(cb ReloadCallback) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, cb)
}

// GetServerCertificate implements tls.Config.GetCertificate
func (cm *CertificateManager) GetServerCertificate(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.serverCert == nil {
		return nil, fmt.Errorf("no server certificate loaded")
	}
	return cm.serverCert, nil
}

// GetMetrics returns a snapshot of reload metrics
func (cm *CertificateManager) GetMetrics() CertificateMetrics {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.metrics
}

// CheckExpiry reports how long until the current certificate expires
func (cm *CertificateManager) CheckExpiry() (time.Duration, error) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.serverCert == nil || len(cm.serverCert.Certificate) == 0 {
		return 0, fmt.Errorf("no server certificate loaded")
	}

	leaf, err := x509.ParseCertificate(cm.serverCert.Certificate[0])
	if err != nil {
		return 0, fmt.Errorf("failed to parse server certificate: %w", err)
	}

	return time.Until(leaf.NotAfter), nil
}

// reload re-reads the certificate and notifies callbacks
func (cm *CertificateManager) reload() {
	cm.mu.Lock()

	err := cm.loadCertificateLocked()
	now := time.Now()
	cm.metrics.ReloadCount++
	cm.metrics.LastReloadTime = &now
	cm.metrics.LastReloadSuccess = err == nil
	if err != nil {
		cm.metrics.FailureCount++
		cm.metrics.LastReloadError = err.Error()
	} else {
		cm.metrics.SuccessCount++
		cm.metrics.LastReloadError = ""
	}
	callbacks := make([]ReloadCallback, len(cm.callbacks))
	copy(callbacks, cm.callbacks)

	cm.mu.Unlock()

	for _, cb := range callbacks {
		cb(err == nil, err)
	}
}

// loadCertificateLocked loads the certificate; caller must hold cm.mu
func (cm *CertificateManager) loadCertificateLocked() error {
	var cert tls.Certificate
	var err error

	switch {
	case cm.tlsConfig.CertContent != "" && cm.tlsConfig.KeyContent != "":
		cert, err = tls.X509KeyPair([]byte(cm.tlsConfig.CertContent), []byte(cm.tlsConfig.KeyContent))
	case cm.tlsConfig.CertFile != "" && cm.tlsConfig.KeyFile != "":
		cert, err = tls.LoadX509KeyPair(cm.tlsConfig.CertFile, cm.tlsConfig.KeyFile)
	default:
		return fmt.Errorf("no certificate source configured")
	}
	if err != nil {
		return fmt.Errorf("failed to load certificate: %w", err)
	}

	cm.serverCert = &cert
	return nil
}
