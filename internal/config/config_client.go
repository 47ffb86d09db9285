package config

import (
	"fmt"
	"time"
)

// ClientConfig is the client-side projection of [StructuredConfig].
type ClientConfig struct {
	// ServerAddress is the base URL of the repository server.
	ServerAddress string
	// RequestTimeout is the timeout for outbound client requests.
	RequestTimeout time.Duration
	// HashKey signs upsert bodies when non-empty.
	HashKey string
	// SyncInterval is the background sync period; zero disables the job.
	SyncInterval time.Duration
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		ServerAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		HashKey:        cfg.App.HashKey,
		SyncInterval:   cfg.Workers.SyncInterval,
	}
}
