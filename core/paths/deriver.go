// Package paths derives the output file names of the small and large
// variants of a source image. Nothing here touches the filesystem.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/photominutes/core"
)

// Variant suffixes appended to the source file stem.
const (
	SuffixSmall = "small"
	SuffixLarge = "large"
)

var (
	ErrNoParent     = errors.New("path has no parent")
	ErrNoParentName = errors.New("cannot find direct parent")
	ErrNoStem       = errors.New("path has no file stem")
	ErrNoExtension  = errors.New("path has no extension")
)

// Derive computes the small and large output paths for source under outputRoot:
// outputRoot/<parent name>/<stem>_small<ext> and .../<stem>_large<ext>.
func Derive(source, outputRoot string) (core.DerivedOutputPaths, error) {
	small, err := OutputName(source, SuffixSmall)
	if err != nil {
		return core.DerivedOutputPaths{}, err
	}
	large, err := OutputName(source, SuffixLarge)
	if err != nil {
		return core.DerivedOutputPaths{}, err
	}

	return core.DerivedOutputPaths{
		Source: source,
		Small:  filepath.Join(outputRoot, small),
		Large:  filepath.Join(outputRoot, large),
	}, nil
}

// OutputName returns the relative output name <parent name>/<stem>_<suffix><ext>.
func OutputName(source, suffix string) (string, error) {
	source = normalize(source)
	if source == "" || filepath.Dir(source) == source {
		return "", fmt.Errorf("%w: <%s>", ErrNoParent, source)
	}

	parentName, ok := baseName(filepath.Dir(source))
	if !ok {
		return "", fmt.Errorf("%w for %s", ErrNoParentName, source)
	}

	stem, ext, err := splitName(source)
	if err != nil {
		return "", err
	}

	return filepath.Join(parentName, stem+"_"+suffix+ext), nil
}

// splitName splits the final element of p into stem and extension (with dot).
// A leading dot belongs to the stem, so ".env" has no extension.
func splitName(p string) (string, string, error) {
	name, ok := baseName(p)
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrNoStem, p)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem, ext = name, ""
	}
	if ext == "" || ext == "." {
		return "", "", fmt.Errorf("%w: <%s>", ErrNoExtension, p)
	}
	return stem, ext, nil
}

// normalize cleans p so trailing separators and "." elements do not shift
// the parent. A final ".." is kept so it is reported as a missing stem.
func normalize(p string) string {
	if p == "" || filepath.Base(p) == ".." {
		return p
	}
	return filepath.Clean(p)
}

// baseName returns the last path element, or false when p ends in a root,
// "." or "..".
func baseName(p string) (string, bool) {
	clean := filepath.Clean(p)
	if filepath.Dir(clean) == clean {
		return "", false
	}
	name := filepath.Base(clean)
	if name == "." || name == ".." {
		return "", false
	}
	return name, true
}
