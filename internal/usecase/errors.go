package usecase

import (
	"errors"

	"classic-rentals/pkg/utils"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries per-field messages back to the handler layer
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return utils.FormatValidationErrors(e.Fields)
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
