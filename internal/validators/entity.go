package validators

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-list-sync/models"
)

// Field name constants used to restrict validation to a subset of entity
// fields.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
)

const (
	MaxIDLength          = 64
	MaxDescriptionLength = 4096
)

// ReservedID is the path segment of the search route. An entity with this
// id could not be fetched by GET /api/entities/{id}.
const ReservedID = "search"

// EntityValidator implements [Validator] for [models.Entity].
type EntityValidator struct{}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate checks an entity before it is upserted.
//
// Default validated fields: id, name, description, price. The id may be
// empty (the store assigns one), but a given id must not be blank, must
// fit in MaxIDLength characters and must be addressable as a single path
// segment: no '/' and not [ReservedID].
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entity:
		return v.validateEntity(value, fields...)
	case *models.Entity:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateEntity(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateEntity(e models.Entity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldDescription, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if e.ID == "" {
				continue
			}
			if strings.TrimSpace(e.ID) == "" || utf8.RuneCountInString(e.ID) > MaxIDLength {
				return ErrInvalidID
			}
			if strings.Contains(e.ID, "/") || e.ID == ReservedID {
				return ErrInvalidID
			}
		case FieldName:
			if strings.TrimSpace(e.Name) == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if utf8.RuneCountInString(e.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldPrice:
			if e.Price < 0 || math.IsNaN(e.Price) || math.IsInf(e.Price, 0) {
				return ErrInvalidPrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
