package store

import (
	"context"

	"github.com/MKhiriev/go-list-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityRepository is the persistence contract of the entity collection.
//
// GetAll and Search return entities ordered by (created_at, id); the order
// is stable across calls as long as the data does not change. Search
// matches Name by case-sensitive prefix, and an empty prefix matches every
// entity. Upsert replaces the stored business fields wholesale; CreatedAt
// survives an overwrite and UpdatedAt is bumped.
type EntityRepository interface {
	GetAll(ctx context.Context) ([]models.Entity, error)
	GetByID(ctx context.Context, id string) (models.Entity, error)
	Search(ctx context.Context, prefix string) ([]models.Entity, error)
	Upsert(ctx context.Context, entity models.Entity) (models.Entity, error)
}
