package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nrclassify/internal/domain"
	"nrclassify/internal/loader"
)

// Loader reads one JSON file per record from a data directory,
// named <ID>.json.
type Loader struct {
	dataDir string
}

// New creates a file-backed record loader rooted at dataDir.
// An empty dataDir defaults to "data".
func New(dataDir string) *Loader {
	if dataDir == "" {
		dataDir = "data"
	}
	return &Loader{dataDir: dataDir}
}

// Load reads and decodes the record for id. A missing file maps to
// loader.ErrNotFound.
func (l *Loader) Load(id string) (*domain.Record, error) {
	path := filepath.Join(l.dataDir, id+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", id, loader.ErrNotFound)
		}
		return nil, err
	}
	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &rec, nil
}
