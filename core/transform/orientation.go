package transform

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Orientation is the EXIF orientation tag value (1-8).
type Orientation int

const (
	// OrientationUnknown means the EXIF container could not be parsed.
	OrientationUnknown Orientation = 0
	// OrientationUpright means no transform is needed.
	OrientationUpright Orientation = 1
)

// Known reports whether the orientation was read from valid EXIF data.
// Unknown and upright both render without a transform.
func (o Orientation) Known() bool {
	return o != OrientationUnknown
}

// ReadOrientation reads the orientation tag from encoded image data.
// Unparseable EXIF yields OrientationUnknown; a missing or unreadable tag
// yields OrientationUpright.
func ReadOrientation(data []byte) Orientation {
	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return OrientationUnknown
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return OrientationUpright
	}
	v, err := tag.Int(0)
	if err != nil {
		return OrientationUpright
	}
	return Orientation(v)
}

// Apply returns img transformed so that it displays upright. Rotations are
// clockwise; imaging rotates counter-clockwise, hence Rotate270 for 90.
func (o Orientation) Apply(img image.Image) image.Image {
	switch o {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.FlipH(imaging.Rotate270(img))
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.FlipH(imaging.Rotate90(img))
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
