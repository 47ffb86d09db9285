package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-list-sync/internal/config"
	"github.com/MKhiriev/go-list-sync/internal/logger"
)

// Storages aggregates the server repositories and owns the database
// connection behind them.
type Storages struct {
	EntityRepository EntityRepository

	db *DB
}

// NewStorages connects to the database selected by cfg.DSN, applies the
// migrations and builds the (optionally cached) entity repository.
func NewStorages(ctx context.Context, cfg *config.ServerConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	repo, err := NewCachedEntityRepository(NewEntityRepository(db), cfg.CacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating entity cache: %w", err)
	}

	return &Storages{EntityRepository: repo, db: db}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
