package service

import (
	"context"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/store"
	"github.com/MKhiriev/go-list-sync/models"
)

type entityService struct {
	entityRepository store.EntityRepository

	logger *logger.Logger
}

func NewEntityService(entityRepository store.EntityRepository, logger *logger.Logger) EntityService {
	return &entityService{
		entityRepository: entityRepository,
		logger:           logger,
	}
}

func (e *entityService) GetAll(ctx context.Context) ([]models.Entity, error) {
	entities, err := e.entityRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []models.Entity{}
	}

	return entities, nil
}

func (e *entityService) GetByID(ctx context.Context, id string) (models.Entity, error) {
	return e.entityRepository.GetByID(ctx, id)
}

func (e *entityService) Search(ctx context.Context, prefix string) ([]models.Entity, error) {
	entities, err := e.entityRepository.Search(ctx, prefix)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []models.Entity{}
	}

	return entities, nil
}

func (e *entityService) Upsert(ctx context.Context, entity models.Entity) (models.Entity, error) {
	stored, err := e.entityRepository.Upsert(ctx, entity)
	if err != nil {
		return models.Entity{}, err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*entityService.Upsert").
		Str("entity_id", stored.ID).
		Msg("entity stored")

	return stored, nil
}
