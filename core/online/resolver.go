// Package online maps generated output files to the public URLs they are
// served under.
package online

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/photominutes/core"
)

var (
	ErrPathTooShallow = errors.New("could not derive base path of image")
	ErrOutsideBase    = errors.New("image is not located below its base path")
)

// URL returns baseURL + "/" + the part of outputPath below its grandparent
// directory, always with forward slashes.
func URL(outputPath, baseURL string) (string, error) {
	parent, ok := parentOf(outputPath)
	if !ok {
		return "", fmt.Errorf("%w %s", ErrPathTooShallow, outputPath)
	}
	base, ok := parentOf(parent)
	if !ok {
		return "", fmt.Errorf("%w %s", ErrPathTooShallow, outputPath)
	}

	rel, err := filepath.Rel(base, outputPath)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrOutsideBase, outputPath, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBase, outputPath)
	}

	return baseURL + "/" + filepath.ToSlash(rel), nil
}

// Link resolves both output paths of an image.
func Link(derived core.DerivedOutputPaths, baseURL string) (core.OnlineLink, error) {
	small, err := URL(derived.Small, baseURL)
	if err != nil {
		return core.OnlineLink{}, err
	}
	large, err := URL(derived.Large, baseURL)
	if err != nil {
		return core.OnlineLink{}, err
	}

	return core.OnlineLink{
		SmallURL:  small,
		LargeURL:  large,
		SmallPath: derived.Small,
		LargePath: derived.Large,
	}, nil
}

// parentOf returns the parent directory of p. A filesystem root, "." and the
// empty path have none.
func parentOf(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	clean := filepath.Clean(p)
	dir := filepath.Dir(clean)
	if dir == clean {
		return "", false
	}
	return dir, true
}
