// Package pipeline orchestrates a conversion run:
// derive → transform → resolve → render.
//
// Processing is sequential and fail-fast: the first error aborts the run and
// no document is produced.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaurav-prasanna/photominutes/core"
	"github.com/gaurav-prasanna/photominutes/core/online"
	"github.com/gaurav-prasanna/photominutes/core/paths"
	"github.com/gaurav-prasanna/photominutes/core/render"
)

// Pipeline converts sections into resized images and the minutes document.
type Pipeline struct {
	Transformer core.Transformer
	Logger      *slog.Logger

	OutputRoot string
	BaseURL    string
	Title      string

	SmallRatio float64
	LargeRatio float64

	// SkipConversion renders the document from derived paths without
	// writing any image.
	SkipConversion bool
}

// Result is the outcome of a successful run.
type Result struct {
	Minutes   core.Minutes
	Markdown  string
	Converted int // number of source images written
}

// derivedSection pairs a section name with the output paths of its images.
type derivedSection struct {
	name   string
	images []core.DerivedOutputPaths
}

// Run processes sections in order and returns the rendered minutes.
func (p *Pipeline) Run(ctx context.Context, sections []core.Section) (*Result, error) {
	log := p.logger()

	// 1. Derive output paths for every image before touching the disk.
	derived, err := p.derive(sections)
	if err != nil {
		return nil, err
	}

	// 2. Write the small and large variants.
	converted := 0
	if p.SkipConversion {
		log.Info("Skipping image conversion")
	} else {
		total := countImages(derived)
		for _, s := range derived {
			for _, img := range s.images {
				if err := ctx.Err(); err != nil {
					return nil, fmt.Errorf("conversion interrupted: %w", err)
				}
				log.Info("Converting image",
					"section", s.name,
					"source", img.Source,
					"progress", fmt.Sprintf("%d/%d", converted+1, total),
				)
				if err := p.convert(img); err != nil {
					return nil, err
				}
				converted++
			}
		}
	}

	// 3. Resolve public URLs.
	minutes, err := p.resolve(derived)
	if err != nil {
		return nil, err
	}

	// 4. Render Markdown.
	return &Result{
		Minutes:   minutes,
		Markdown:  render.Markdown(minutes.Sections),
		Converted: converted,
	}, nil
}

func (p *Pipeline) derive(sections []core.Section) ([]derivedSection, error) {
	out := make([]derivedSection, 0, len(sections))
	for _, s := range sections {
		images := make([]core.DerivedOutputPaths, 0, len(s.Images))
		for _, source := range s.Images {
			d, err := paths.Derive(source, p.OutputRoot)
			if err != nil {
				return nil, fmt.Errorf("derive: %w", err)
			}
			images = append(images, d)
		}
		out = append(out, derivedSection{name: s.Name, images: images})
	}
	return out, nil
}

func (p *Pipeline) convert(img core.DerivedOutputPaths) error {
	if p.Transformer == nil {
		return fmt.Errorf("transform: no transformer configured")
	}
	if err := p.Transformer.ResizeAndWrite(img.Source, img.Small, p.SmallRatio); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if err := p.Transformer.ResizeAndWrite(img.Source, img.Large, p.LargeRatio); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	return nil
}

func (p *Pipeline) resolve(derived []derivedSection) (core.Minutes, error) {
	sections := make([]core.RenderSection, 0, len(derived))
	for _, s := range derived {
		links := make([]core.OnlineLink, 0, len(s.images))
		for _, img := range s.images {
			link, err := online.Link(img, p.BaseURL)
			if err != nil {
				return core.Minutes{}, fmt.Errorf("resolve: %w", err)
			}
			links = append(links, link)
		}
		sections = append(sections, core.RenderSection{Name: s.name, Links: links})
	}
	return core.Minutes{Title: p.Title, Sections: sections}, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

func countImages(derived []derivedSection) int {
	n := 0
	for _, s := range derived {
		n += len(s.images)
	}
	return n
}
