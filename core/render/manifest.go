// Package render — manifest renderer.
// Serializes the minutes as YAML so downstream publishing scripts can pick up
// every generated URL without parsing Markdown.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/photominutes/core"
	"gopkg.in/yaml.v3"
)

// ManifestRenderer produces a YAML manifest of sections and image URLs.
type ManifestRenderer struct{}

// NewManifestRenderer creates a ManifestRenderer.
func NewManifestRenderer() *ManifestRenderer {
	return &ManifestRenderer{}
}

// Render marshals the minutes into YAML.
func (r *ManifestRenderer) Render(minutes core.Minutes) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(minutes); err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for the manifest.
func (r *ManifestRenderer) Extension() string {
	return ".yaml"
}
