// Package ingest reads an input root directory into sections.
// Every immediate subdirectory is a section named after the directory; the
// image files inside it are the section's source images.
package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/photominutes/core"
)

// DirectoryIngestor implements core.Ingestor for a local directory tree.
type DirectoryIngestor struct {
	Logger *slog.Logger
}

// New creates a DirectoryIngestor logging to logger (slog.Default when nil).
func New(logger *slog.Logger) *DirectoryIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &DirectoryIngestor{Logger: logger}
}

// Load returns the sections below root in name order. Image paths are
// absolute. Hidden entries, loose files in root, nested directories and
// non-image files are skipped.
func (d *DirectoryIngestor) Load(root string) ([]core.Section, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving input root %s: %w", root, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("reading input root: %w", err)
	}

	sections := make([]core.Section, 0, len(entries))
	for _, e := range entries {
		if IsHidden(e.Name()) || !e.IsDir() {
			d.Logger.Debug("Skipping root entry", "name", e.Name())
			continue
		}

		section, err := d.loadSection(filepath.Join(abs, e.Name()))
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	d.Logger.Debug("Input loaded", "root", abs, "sections", len(sections))
	return sections, nil
}

func (d *DirectoryIngestor) loadSection(dir string) (core.Section, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return core.Section{}, fmt.Errorf("reading section %s: %w", dir, err)
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if IsHidden(name) || !e.Type().IsRegular() || !IsImage(name) {
			d.Logger.Debug("Skipping section entry", "section", filepath.Base(dir), "name", name)
			continue
		}
		images = append(images, filepath.Join(dir, name))
	}

	return core.Section{
		Name:   filepath.Base(dir),
		Images: images,
	}, nil
}
