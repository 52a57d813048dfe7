// Package render — PDF renderer.
// Lays the minutes out as an A4 PDF using gofpdf: a heading per section and
// the small image of every link embedded, each image linking to its large URL.
package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/gaurav-prasanna/photominutes/core"
	"github.com/jung-kurt/gofpdf"
)

// pdfImageWidth is the printed width of each thumbnail in millimetres.
const pdfImageWidth = 120

// pdfImageTypes maps image.DecodeConfig format names to gofpdf image types.
var pdfImageTypes = map[string]string{
	"jpeg": "JPG",
	"png":  "PNG",
	"gif":  "GIF",
}

// PDFRenderer renders the minutes as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render builds the PDF. Links without a local small image are written as
// text links instead of embedded images.
func (r *PDFRenderer) Render(minutes core.Minutes) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	left, _, _, _ := pdf.GetMargins()

	pdf.AddPage()
	if minutes.Title != "" {
		pdf.SetFont("Helvetica", "B", 20)
		pdf.MultiCell(0, 10, tr(minutes.Title), "", "L", false)
		pdf.Ln(4)
	}

	for i, s := range minutes.Sections {
		if i > 0 {
			pdf.Ln(6)
		}
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 9, tr(s.Name), "", "L", false)
		pdf.Ln(2)

		for _, l := range s.Links {
			imageType, err := sniffImageType(l.SmallPath)
			if err != nil {
				pdf.SetFont("Helvetica", "U", 10)
				pdf.SetTextColor(0, 0, 200)
				pdf.WriteLinkString(5, l.LargeURL, l.LargeURL)
				pdf.SetTextColor(0, 0, 0)
				pdf.Ln(7)
				continue
			}

			pdf.ImageOptions(l.SmallPath, left, 0, pdfImageWidth, 0, true,
				gofpdf.ImageOptions{ImageType: imageType, ReadDpi: true}, 0, l.LargeURL)
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// sniffImageType reports the gofpdf image type of the file at path. The small
// variant is JPEG data even when its name keeps the source extension.
func sniffImageType(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no local image")
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	_, format, err := image.DecodeConfig(f)
	if err != nil {
		return "", err
	}
	imageType, ok := pdfImageTypes[format]
	if !ok {
		return "", fmt.Errorf("unsupported image format %q", format)
	}
	return imageType, nil
}
