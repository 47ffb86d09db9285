package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid entity id")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidPrice       = errors.New("price must be a non-negative finite number")
	ErrDescriptionTooLong = errors.New("description is too long")
)
