// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client. It is populated by merging environment variables,
// command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: integrity hash key and version.
	App App `envPrefix:"APP_"`

	// Storage holds the database and cache settings of the server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the repository server as seen by the
	// client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for client background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables signing and checking.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the version string exposed via /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the server persistence settings.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// CacheSize is the number of entities kept in the get-by-id LRU cache.
	// Zero disables the cache.
	// Env: STORAGE_CACHE_SIZE
	CacheSize int `env:"CACHE_SIZE"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the repository server.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the repository server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for client background workers.
type Workers struct {
	// SyncInterval is the period of the background sync job. Zero disables it.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// environment variables, os.Args flags, the JSON file (path resolved from
// the first two sources) and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
