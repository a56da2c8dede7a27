// Package transform turns raw snapshots into analysis-ready summary tables:
// it loads typed tables from the raw store, joins them on repository
// identifiers and aggregates per-repository metrics.
package transform

import (
	"encoding/json"
	"fmt"

	"github.com/kmichalik/orgmetrics/internal/app"
)

// RawReader returns raw snapshot documents written by extraction.
type RawReader interface {
	Read(resource app.Resource, org string) ([]byte, error)
}

// Tables holds the typed tabular form of one extraction run.
type Tables struct {
	Repositories   []app.Repository
	Contributors   []app.Contributor
	CommitActivity []app.CommitActivity
	PullRequests   []app.PullRequest
}

// Loader reads raw snapshots into typed tables with a fixed column set.
// Unknown fields are dropped; fields missing from individual records default
// to zero values; a required field absent from every record of a non-empty
// snapshot is a SchemaError for that resource type.
type Loader struct {
	store RawReader
}

// NewLoader creates new Loader instance.
func NewLoader(store RawReader) *Loader {
	return &Loader{store: store}
}

// requiredFields lists the columns that must occur in at least one record of
// each resource type's snapshot.
var requiredFields = map[app.Resource][]string{
	app.ResourceRepositories:   {"id", "name", "owner_login"},
	app.ResourceContributors:   {"repository_id", "id", "commits"},
	app.ResourceCommitActivity: {"repository_id", "weeks"},
	app.ResourcePullRequests:   {"repository_id", "number"},
}

// Load reads all resource snapshots of given organization.
func (l *Loader) Load(org string) (*Tables, error) {
	var t Tables
	if err := l.loadResource(app.ResourceRepositories, org, &t.Repositories); err != nil {
		return nil, err
	}
	if err := l.loadResource(app.ResourceContributors, org, &t.Contributors); err != nil {
		return nil, err
	}
	if err := l.loadResource(app.ResourceCommitActivity, org, &t.CommitActivity); err != nil {
		return nil, err
	}
	if err := l.loadResource(app.ResourcePullRequests, org, &t.PullRequests); err != nil {
		return nil, err
	}

	return &t, nil
}

func (l *Loader) loadResource(resource app.Resource, org string, out interface{}) error {
	doc, err := l.store.Read(resource, org)
	if err != nil {
		return fmt.Errorf("loading %s: %w", resource, err)
	}

	if err := checkSchema(resource, doc); err != nil {
		return err
	}

	if err := json.Unmarshal(doc, out); err != nil {
		return &app.DecodeError{Err: fmt.Errorf("parsing %s table: %w", resource, err)}
	}

	return nil
}

// checkSchema verifies that every required column of the resource occurs in
// at least one record. A field missing everywhere signals an incompatible or
// corrupted extraction rather than sparse data.
func checkSchema(resource app.Resource, doc []byte) error {
	var rows []map[string]json.RawMessage
	if err := json.Unmarshal(doc, &rows); err != nil {
		return &app.DecodeError{Err: fmt.Errorf("parsing %s snapshot: %w", resource, err)}
	}
	if len(rows) == 0 {
		return nil
	}

	for _, field := range requiredFields[resource] {
		found := false
		for _, row := range rows {
			if _, ok := row[field]; ok {
				found = true
				break
			}
		}
		if !found {
			return &app.SchemaError{Resource: resource, Field: field}
		}
	}

	return nil
}
