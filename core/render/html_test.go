package render

import (
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/photominutes/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderer(t *testing.T) {
	r := NewHTMLRenderer()
	assert.Equal(t, ".html", r.Extension())

	data, err := r.Render(core.Minutes{
		Title: "Board <meeting>",
		Sections: []core.RenderSection{
			{Name: "abc", Links: []core.OnlineLink{link("http://x/y/abc/1_small.jpg", "http://x/y/abc/1_large.jpg")}},
			{Name: "empty"},
		},
	})
	require.NoError(t, err)

	page := string(data)
	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>\n"))
	assert.Contains(t, page, "<title>Board &lt;meeting&gt;</title>")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Find("h1").Length())
	assert.Equal(t, "abc", doc.Find("h1").First().Text())

	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	assert.Equal(t, "http://x/y/abc/1_small.jpg", src)
	loading, _ := img.Attr("loading")
	assert.Equal(t, "lazy", loading)

	a := doc.Find("a")
	require.Equal(t, 1, a.Length())
	href, _ := a.Attr("href")
	assert.Equal(t, "http://x/y/abc/1_large.jpg", href)
	target, _ := a.Attr("target")
	assert.Equal(t, "_blank", target)
}

func TestHTMLRenderer_SectionNameWithSpace(t *testing.T) {
	data, err := NewHTMLRenderer().Render(core.Minutes{
		Sections: []core.RenderSection{
			{Name: "board meeting", Links: []core.OnlineLink{
				link("http://x/y/board meeting/1_small.jpg", "http://x/y/board meeting/1_large.jpg"),
			}},
		},
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	require.NoError(t, err)

	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	src, err = url.PathUnescape(src)
	require.NoError(t, err)
	assert.Equal(t, "http://x/y/board meeting/1_small.jpg", src)
	alt, _ := img.Attr("alt")
	assert.Equal(t, "board meeting", alt)

	a := doc.Find("a")
	require.Equal(t, 1, a.Length())
	href, _ := a.Attr("href")
	href, err = url.PathUnescape(href)
	require.NoError(t, err)
	assert.Equal(t, "http://x/y/board meeting/1_large.jpg", href)
	target, _ := a.Attr("target")
	assert.Equal(t, "_blank", target)
}

func TestMarkdown_KeepsBareDestinations(t *testing.T) {
	md := Markdown([]core.RenderSection{
		{Name: "board meeting", Links: []core.OnlineLink{
			link("http://x/y/board meeting/1_small.jpg", "http://x/y/board meeting/1_large.jpg"),
		}},
	})
	assert.Equal(t,
		"# board meeting\n\n[![board meeting](http://x/y/board meeting/1_small.jpg)](http://x/y/board meeting/1_large.jpg)",
		md,
	)
}
