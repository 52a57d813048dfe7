package transform

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// jpegQuality is the fixed encoder quality for every generated image.
const jpegQuality = 100

func writeJPEG(dest string, img image.Image) error {
	return writeExclusive(dest, func(w io.Writer) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	})
}

// writeExclusive creates dest (and any missing parent directories) with
// O_EXCL, streams content into it and syncs it to disk. The file is removed
// again if writing fails.
func writeExclusive(dest string, content func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCreateDir, filepath.Dir(dest), err)
	}

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, dest)
		}
		return fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}

	w := bufio.NewWriter(f)
	err = content(w)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dest)
		return fmt.Errorf("%w: %s: %v", ErrWrite, dest, err)
	}
	return nil
}
