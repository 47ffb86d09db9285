package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-list-sync/internal/validators"
	"github.com/MKhiriev/go-list-sync/models"
)

// EntityValidationService rejects malformed entities before they reach the
// wrapped EntityService. Reads pass through untouched.
type EntityValidationService struct {
	inner     EntityService
	validator validators.Validator
}

func NewEntityValidationService() EntityServiceWrapper {
	return &EntityValidationService{
		validator: validators.NewEntityValidator(),
	}
}

func (v *EntityValidationService) GetAll(ctx context.Context) ([]models.Entity, error) {
	return v.inner.GetAll(ctx)
}

func (v *EntityValidationService) GetByID(ctx context.Context, id string) (models.Entity, error) {
	if id == "" {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}
	return v.inner.GetByID(ctx, id)
}

func (v *EntityValidationService) Search(ctx context.Context, prefix string) ([]models.Entity, error) {
	return v.inner.Search(ctx, prefix)
}

func (v *EntityValidationService) Upsert(ctx context.Context, entity models.Entity) (models.Entity, error) {
	if err := v.validator.Validate(ctx, entity); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Upsert(ctx, entity)
}

func (v *EntityValidationService) Wrap(wrapper EntityService) EntityService {
	v.inner = wrapper
	return v
}
