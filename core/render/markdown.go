// Package render provides output renderers for the photominutes pipeline.
// This file implements the Markdown renderer, which produces the canonical
// document every other edition is built from.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/photominutes/core"
)

// MarkdownRenderer renders the minutes as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the Markdown document as bytes.
func (r *MarkdownRenderer) Render(minutes core.Minutes) ([]byte, error) {
	return []byte(Markdown(minutes.Sections)), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// Markdown renders one level-1 heading per section followed by a linked
// thumbnail per image. Blocks and sections are separated by a blank line.
func Markdown(sections []core.RenderSection) string {
	return markdown(sections, imageLink)
}

func markdown(sections []core.RenderSection, link func(string, core.OnlineLink) string) string {
	formatted := make([]string, 0, len(sections))
	for _, s := range sections {
		formatted = append(formatted, formatSection(s, link))
	}
	return strings.Join(formatted, "\n\n")
}

func formatSection(s core.RenderSection, link func(string, core.OnlineLink) string) string {
	body := "\n"
	if len(s.Links) > 0 {
		images := make([]string, 0, len(s.Links))
		for _, l := range s.Links {
			images = append(images, link(s.Name, l))
		}
		body = strings.Join(images, "\n\n")
	}
	return fmt.Sprintf("# %s\n\n%s", s.Name, body)
}

// imageLink is a small-image thumbnail linking to the large image.
func imageLink(name string, l core.OnlineLink) string {
	return fmt.Sprintf("[![%s](%s)](%s)", name, l.SmallURL, l.LargeURL)
}

// bracketedImageLink wraps the destinations in <...> so URLs containing
// spaces still parse as links.
func bracketedImageLink(name string, l core.OnlineLink) string {
	return fmt.Sprintf("[![%s](<%s>)](<%s>)", name, l.SmallURL, l.LargeURL)
}
