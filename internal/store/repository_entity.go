// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/utils"
	"github.com/MKhiriev/go-list-sync/models"
)

// entityRepository is the SQL implementation of [EntityRepository] over the
// "entities" table. It works with both PostgreSQL and SQLite; the dialect
// differences live in [DB].
type entityRepository struct {
	*DB
	now   func() time.Time
	newID func() string
}

// NewEntityRepository constructs an [EntityRepository] backed by db.
func NewEntityRepository(db *DB) EntityRepository {
	return &entityRepository{
		DB:    db,
		now:   func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID: utils.NewUUIDGenerator().Generate,
	}
}

func (r *entityRepository) GetAll(ctx context.Context) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entities, err := withRetry(ctx, r.DB, "entityRepository.GetAll", func(ctx context.Context) ([]models.Entity, error) {
		return r.queryEntities(ctx, query, args...)
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetAll").Msg("failed to get all entities")
		return nil, err
	}

	log.Debug().Str("func", "entityRepository.GetAll").Int("count", len(entities)).Msg("entities fetched")
	return entities, nil
}

func (r *entityRepository) GetByID(ctx context.Context, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetByIDQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetByID").Str("entity_id", id).Msg("failed to build query")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := withRetry(ctx, r.DB, "entityRepository.GetByID", func(ctx context.Context) (models.Entity, error) {
		return r.queryEntity(ctx, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("func", "entityRepository.GetByID").Str("entity_id", id).Msg("entity not found")
		return models.Entity{}, fmt.Errorf("%w: %s", ErrEntityNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.GetByID").Str("entity_id", id).Msg("failed to get entity")
		return models.Entity{}, err
	}

	return entity, nil
}

// Search returns entities whose name starts with prefix. An empty prefix
// returns the same result as GetAll.
func (r *entityRepository) Search(ctx context.Context, prefix string) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchQuery(r.builder(), prefix)
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Search").Str("prefix", prefix).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entities, err := withRetry(ctx, r.DB, "entityRepository.Search", func(ctx context.Context) ([]models.Entity, error) {
		return r.queryEntities(ctx, query, args...)
	})
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Search").Str("prefix", prefix).Msg("failed to search entities")
		return nil, err
	}

	log.Debug().Str("func", "entityRepository.Search").Str("prefix", prefix).Int("count", len(entities)).Msg("search done")
	return entities, nil
}

// Upsert inserts entity or overwrites the stored one with the same id.
// An empty id is replaced with a fresh UUIDv7.
func (r *entityRepository) Upsert(ctx context.Context, entity models.Entity) (models.Entity, error) {
	log := logger.FromContext(ctx)

	if entity.ID == "" {
		entity.ID = r.newID()
	}

	query, args, err := buildUpsertQuery(r.builder(), entity, r.now())
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Upsert").Str("entity_id", entity.ID).Msg("failed to build query")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := withRetry(ctx, r.DB, "entityRepository.Upsert", func(ctx context.Context) (models.Entity, error) {
		return r.queryEntity(ctx, query, args...)
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Error().Str("func", "entityRepository.Upsert").Str("entity_id", entity.ID).Msg("upsert returned no row")
		return models.Entity{}, ErrEntityNotSaved
	}
	if err != nil {
		log.Err(err).Str("func", "entityRepository.Upsert").Str("entity_id", entity.ID).Msg("failed to upsert entity")
		return models.Entity{}, err
	}

	log.Info().Str("func", "entityRepository.Upsert").Str("entity_id", stored.ID).Msg("entity saved")
	return stored, nil
}

func (r *entityRepository) queryEntities(ctx context.Context, query string, args ...any) ([]models.Entity, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryErr(err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0, 50)
	for rows.Next() {
		var e models.Entity
		if err = rows.Scan(&e.ID, &e.Name, &e.Description, &e.Price, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entities = append(entities, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

// queryEntity returns sql.ErrNoRows unwrapped so callers can map it.
func (r *entityRepository) queryEntity(ctx context.Context, query string, args ...any) (models.Entity, error) {
	var e models.Entity
	err := r.DB.QueryRowContext(ctx, query, args...).
		Scan(&e.ID, &e.Name, &e.Description, &e.Price, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, sql.ErrNoRows
	}
	if err != nil {
		return models.Entity{}, wrapQueryErr(err)
	}
	return e, nil
}
