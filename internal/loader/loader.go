package loader

import (
	"errors"

	"nrclassify/internal/domain"
)

// ErrNotFound marks an identifier with no backing record. Callers test
// for it with errors.Is.
var ErrNotFound = errors.New("record not found")

// Loader resolves record identifiers to structured records.
type Loader interface {
	Load(id string) (*domain.Record, error)
}
