package services

import "errors"

// Shared error kinds. Services wrap these with fmt.Errorf("%w: ...") detail;
// handlers dispatch on them with errors.Is. Every failure is rejected before
// side effects or rolled back whole, never partially applied.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrRestricted = errors.New("blocked by existing references")
)
