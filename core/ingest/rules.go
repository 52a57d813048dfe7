// Package ingest — file filtering rules.
// Decides which directory entries take part in a run.
package ingest

import (
	"path/filepath"
	"strings"
)

// imageExtensions are the source file extensions picked up from a section.
var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".jpe": true,
	".png": true, ".gif": true, ".bmp": true,
	".tif": true, ".tiff": true, ".webp": true,
}

// IsImage checks whether a file name has a known image extension.
// The comparison ignores case; output names keep the extension as written.
func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// IsHidden reports dot-files such as .DS_Store or .thumbnails.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
