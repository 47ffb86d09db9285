package config

import (
	"fmt"
	"time"
)

// ServerConfig is the server-side projection of [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address of the HTTP server.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
	// DSN selects and configures the database backend.
	DSN string
	// CacheSize is the get-by-id LRU capacity; zero disables the cache.
	CacheSize int
	// HashKey enables HashSHA256 integrity checking when non-empty.
	HashKey string
	// Version is reported by /api/version/.
	Version string
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		CacheSize:      cfg.Storage.CacheSize,
		HashKey:        cfg.App.HashKey,
		Version:        cfg.App.Version,
	}
}
