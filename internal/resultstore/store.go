// Package resultstore writes aggregated tables to the output area as csv
// files, one file per table, one row per repository.
package resultstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Store is a directory of aggregated table files.
type Store struct {
	dir string
}

// NewStore creates new Store instance, creating the directory when needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("result store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating result store directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Write stores header and rows as the named table, fully overwriting any
// previous version. Returns the written path.
func (s *Store) Write(table string, header []string, rows [][]string) (string, error) {
	path := filepath.Join(s.dir, table+".csv")

	tmp, err := os.CreateTemp(s.dir, table+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing table file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replacing table file: %w", err)
	}

	return path, nil
}
