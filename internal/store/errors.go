package store

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the addressed record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrProtected means a delete was rejected because dispatches still
	// reference the record.
	ErrProtected = errors.New("record is referenced by existing dispatches")
)

// ValidationError carries field-level detail for a rejected write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Translate maps driver and GORM errors onto the store taxonomy. Unknown
// errors pass through untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return NewValidationError(constraintField(pqErr.Constraint), "already in use")
		case "23503":
			return NewValidationError("detail", "invalid reference")
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return NewValidationError("detail", "duplicate value violates a unique constraint")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return NewValidationError("detail", "invalid reference")
	}
	return err
}

// constraintField guesses the offending column from an index name such as
// "idx_clients_code".
func constraintField(constraint string) string {
	if constraint == "" {
		return "detail"
	}
	for i := len(constraint) - 1; i >= 0; i-- {
		if constraint[i] == '_' {
			return constraint[i+1:]
		}
	}
	return constraint
}
