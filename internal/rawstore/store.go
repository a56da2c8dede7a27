// Package rawstore persists extracted entity records as one JSON snapshot
// file per resource type per organization. It is the contract boundary
// between extraction and transformation: files are written once per run and
// never mutated afterwards.
package rawstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// Store is a directory of snapshot files.
type Store struct {
	dir string
}

// NewStore creates new Store instance, creating the directory when needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("raw store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating raw store directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Write serializes records to the snapshot file for given resource type and
// organization, overwriting any previous snapshot. An empty record set is a
// valid snapshot and still produces a file. Returns the written path.
//
// The write goes through a temp file and rename, so readers never observe a
// partial snapshot.
func (s *Store) Write(resource app.Resource, org string, records interface{}) (string, error) {
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshalling %s records: %w", resource, err)
	}

	path := s.Path(resource, org)
	tmp, err := os.CreateTemp(s.dir, string(resource)+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replacing snapshot: %w", err)
	}

	return path, nil
}

// Read returns the raw snapshot document for given resource type and
// organization.
func (s *Store) Read(resource app.Resource, org string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(resource, org))
	if err != nil {
		return nil, fmt.Errorf("reading %s snapshot: %w", resource, err)
	}

	return data, nil
}

// Path returns the snapshot file path for given resource type and
// organization.
func (s *Store) Path(resource app.Resource, org string) string {
	name := fmt.Sprintf("%s_%s.json", normalizeOrg(org), resource)
	return filepath.Join(s.dir, name)
}

// normalizeOrg lowercases the organization name and replaces dashes, so file
// names stay shell and tool friendly.
func normalizeOrg(org string) string {
	return strings.ToLower(strings.ReplaceAll(org, "-", "_"))
}
