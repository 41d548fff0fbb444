package cargo

import (
	"encoding/json"
	"fmt"
	"path/filepath"
)

// Metadata is the subset of the `cargo metadata` document that cratepub
// consumes.
type Metadata struct {
	Packages      []Package `json:"packages"`
	WorkspaceRoot string    `json:"workspace_root"`
}

// Package describes a single crate in the metadata document.
type Package struct {
	Name         string    `json:"name"`
	Version      string    `json:"version"`
	ID           string    `json:"id"`
	ManifestPath string    `json:"manifest_path"`
	Source       *string   `json:"source"`
	Publish      *[]string `json:"publish"`
}

// IsLocal reports whether the package comes from the workspace's own source
// tree rather than a remote registry. Cargo emits source: null for path
// packages; that null is the only signal used.
func (p *Package) IsLocal() bool {
	return p.Source == nil
}

// Publishable reports whether cargo would accept a publish for this package.
// A non-nil empty publish list means `publish = false` in the manifest.
func (p *Package) Publishable() bool {
	return p.Publish == nil || len(*p.Publish) > 0
}

// Dir returns the directory containing the package manifest.
func (p *Package) Dir() string {
	return filepath.Dir(p.ManifestPath)
}

// ParseMetadata decodes a format-version-1 metadata document.
func ParseMetadata(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing cargo metadata JSON: %w", err)
	}
	return &m, nil
}
