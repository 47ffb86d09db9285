// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the fields shared by both roles.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.CacheSize < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidTimeoutConfigs
	}

	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.DSN == "" || cfg.CacheSize < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
