package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID     = errors.New("invalid ID")
	ErrInvalidUserID = errors.New("invalid user ID")
	ErrEmptyName     = errors.New("missing required name field")
	ErrEmptyText     = errors.New("missing required text field")
)
