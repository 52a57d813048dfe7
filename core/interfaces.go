// Package core defines the pipeline types and interfaces for photominutes.
// Each stage of the pipeline is a clean, testable interface.
package core

// Section is a named group of source images, one per input subdirectory.
type Section struct {
	Name   string
	Images []string // absolute source image paths
}

// DerivedOutputPaths holds the two output paths computed for one source image.
// Small and Large always share the same parent directory.
type DerivedOutputPaths struct {
	Source string
	Small  string
	Large  string
}

// OnlineLink holds the public URLs of the two variants of one image.
type OnlineLink struct {
	SmallURL string `yaml:"small"`
	LargeURL string `yaml:"large"`

	// Local files backing the URLs. Only the PDF edition reads them.
	SmallPath string `yaml:"-"`
	LargePath string `yaml:"-"`
}

// RenderSection is the per-section view model consumed by renderers.
type RenderSection struct {
	Name  string       `yaml:"name"`
	Links []OnlineLink `yaml:"images"`
}

// Minutes is the complete document handed to every Renderer.
type Minutes struct {
	Title    string          `yaml:"title"`
	Sections []RenderSection `yaml:"sections"`
}

// Ingestor reads a root directory into sections.
type Ingestor interface {
	Load(root string) ([]Section, error)
}

// Transformer writes a resized copy of a source image.
type Transformer interface {
	ResizeAndWrite(source, dest string, ratio float64) error
}

// Renderer converts the minutes into a final output format.
type Renderer interface {
	Render(minutes Minutes) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
