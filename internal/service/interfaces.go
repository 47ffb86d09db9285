package service

import (
	"context"

	"github.com/MKhiriev/go-list-sync/models"
)

// EntityService is the server-side use-case layer over the entity repository.
type EntityService interface {
	GetAll(ctx context.Context) ([]models.Entity, error)
	GetByID(ctx context.Context, id string) (models.Entity, error)
	Search(ctx context.Context, prefix string) ([]models.Entity, error)
	Upsert(ctx context.Context, entity models.Entity) (models.Entity, error)
}

// EntityServiceWrapper defines middleware composition for EntityService.
// Implementations wrap an existing EntityService to add behavior such as
// logging or validating.
type EntityServiceWrapper interface {
	Wrap(EntityService) EntityService // returns a decorated EntityService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
