// Package transform writes resized, orientation-corrected JPEG copies of
// source images. Destinations are created exclusively and never overwritten.
package transform

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidRatio      = errors.New("ratio must be in (0, 1]")
	ErrSourceOpen        = errors.New("source file does not exist")
	ErrSourceDecode      = errors.New("source file cannot be decoded")
	ErrCreateDir         = errors.New("cannot create destination directory")
	ErrDestinationExists = errors.New("destination file exists")
	ErrWrite             = errors.New("cannot write destination file")
)

// Transformer implements core.Transformer.
type Transformer struct {
	Logger *slog.Logger
}

// New creates a Transformer logging to logger (slog.Default when nil).
func New(logger *slog.Logger) *Transformer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transformer{Logger: logger}
}

// ResizeAndWrite writes source scaled by ratio to dest.
//
// ratio scales the area: each axis is multiplied by sqrt(ratio). A ratio of
// exactly 1 copies the source bytes unchanged, keeping format and EXIF data.
func (t *Transformer) ResizeAndWrite(source, dest string, ratio float64) error {
	if ratio <= 0 || ratio > 1 || math.IsNaN(ratio) {
		return fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}

	if ratio == 1 {
		return copyFile(source, dest)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceOpen, source, err)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceDecode, source, err)
	}

	bounds := src.Bounds()
	width := scaledDimension(ratio, bounds.Dx())
	height := scaledDimension(ratio, bounds.Dy())
	resized := resize.Resize(uint(width), uint(height), src, resize.Bilinear)

	orientation := ReadOrientation(data)
	if !orientation.Known() {
		t.logger().Debug("No readable EXIF data, keeping orientation", "source", source, "format", format)
	}
	corrected := flatten(orientation.Apply(resized))

	if err := writeJPEG(dest, corrected); err != nil {
		return err
	}

	t.logger().Debug("Image written",
		"source", source,
		"dest", dest,
		"width", width,
		"height", height,
		"orientation", int(orientation),
	)
	return nil
}

func (t *Transformer) logger() *slog.Logger {
	if t == nil || t.Logger == nil {
		return slog.Default()
	}
	return t.Logger
}

// scaledDimension returns floor(sqrt(ratio) * dim), never less than 1.
func scaledDimension(ratio float64, dim int) int {
	scaled := int(math.Sqrt(ratio) * float64(dim))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// flatten converts an opaque image to *image.RGBA. Orientation transforms
// return NRGBA images; the JPEG encoder has a fast path for RGBA.
func flatten(img image.Image) image.Image {
	opaque, ok := img.(interface{ Opaque() bool })
	if !ok || !opaque.Opaque() {
		return img
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// copyFile copies source to a newly created dest byte for byte.
func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceOpen, source, err)
	}
	defer in.Close()

	return writeExclusive(dest, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}
