// Package render — HTML renderer.
// Converts the Markdown document to a standalone HTML page with goldmark,
// then post-processes the thumbnails with goquery.
package render

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/photominutes/core"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// HTMLRenderer renders the minutes as a standalone HTML page.
type HTMLRenderer struct {
	engine goldmark.Markdown
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render converts the Markdown edition into HTML bytes.
func (r *HTMLRenderer) Render(minutes core.Minutes) ([]byte, error) {
	var body bytes.Buffer
	source := markdown(minutes.Sections, bracketedImageLink)
	if err := r.engine.Convert([]byte(source), &body); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	page := fmt.Sprintf(
		"<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n%s</body></html>",
		html.EscapeString(minutes.Title), body.String(),
	)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	// Thumbnails load lazily; the large image opens in a new tab.
	doc.Find("img").SetAttr("loading", "lazy")
	doc.Find("a").Has("img").SetAttr("target", "_blank")

	out, err := goquery.OuterHtml(doc.Find("html"))
	if err != nil {
		return nil, fmt.Errorf("serializing HTML: %w", err)
	}
	return []byte("<!DOCTYPE html>\n" + out + "\n"), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
