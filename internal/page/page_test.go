package page

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-personal-sites/internal/model"
)

var (
	now  = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)
	meta = Meta{
		Title:     "HN Personal Websites",
		ReadmeURL: "https://example.org/readme",
		IRCURL:    "https://example.org/irc",
		OPMLFile:  "pwd.opml",
	}
)

func render(t *testing.T, list []model.Entry) *goquery.Document {
	t.Helper()
	out, err := Render(list, meta, now)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	require.NoError(t, err)
	return doc
}

func TestHost(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://www.example.com/page", "example.com"},
		{"https://blog.example.org", "blog.example.org"},
		{"http://www.x.io/", "x.io"},
		{"https://wwwx.io", "wwwx.io"},
		{"gopher://example.net/1/", "example.net"},
	}
	for _, tt := range tests {
		got, err := Host(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestHost_NoScheme(t *testing.T) {
	_, err := Host("//example.com/page")
	assert.ErrorIs(t, err, ErrNoScheme)
	_, err = Host("example.com")
	assert.ErrorIs(t, err, ErrNoScheme)
}

func TestRender_NavOrder(t *testing.T) {
	doc := render(t, []model.Entry{{
		Name: "Ada",
		Site: "https://www.ada.example/",
		Blog: "https://ada.example/blog",
		Feed: "https://ada.example/feed.xml",
	}})
	sec := doc.Find("section")
	require.Equal(t, 1, sec.Length())
	assert.Equal(t, "Ada", sec.Find("h2").Text())
	assert.Equal(t, "ada.example", sec.Find("p.site a").Text())

	nav := sec.Find("nav")
	var labels []string
	nav.Find("a").Each(func(_ int, s *goquery.Selection) { labels = append(labels, s.Text()) })
	assert.Equal(t, []string{"Website", "Blog", "Feed"}, labels)

	text := strings.Join(strings.Fields(nav.Text()), " ")
	assert.Equal(t, "Website | Blog | Feed", text)
	assert.Zero(t, sec.Find("p.bio").Length())
}

func TestRender_AllLinksAndBio(t *testing.T) {
	doc := render(t, []model.Entry{{
		Name:  "Ada",
		Site:  "https://ada.example",
		Blog:  "https://ada.example/blog",
		About: "https://ada.example/about",
		Now:   "https://ada.example/now",
		Feed:  "https://ada.example/feed.xml",
		HNUID: "ada",
		Bio:   "Writes about engines.",
	}})
	var labels, hrefs []string
	doc.Find("section nav a").Each(func(_ int, s *goquery.Selection) {
		labels = append(labels, s.Text())
		h, _ := s.Attr("href")
		hrefs = append(hrefs, h)
	})
	assert.Equal(t, []string{"Website", "Blog", "About", "Now", "Feed", "HN"}, labels)
	assert.Equal(t, "https://news.ycombinator.com/user?id=ada", hrefs[5])
	assert.Equal(t, "Writes about engines.", doc.Find("section p.bio").Text())
}

func TestRender_PageFrame(t *testing.T) {
	doc := render(t, []model.Entry{
		{Name: "Ada", Site: "https://ada.example"},
		{Name: "Bob", Site: "https://bob.example"},
	})
	assert.Equal(t, "HN Personal Websites", doc.Find("title").Text())
	assert.Equal(t, "2 websites", doc.Find("#count").Text())
	assert.Equal(t, 2, doc.Find("section").Length())

	css, _ := doc.Find(`link[rel="stylesheet"]`).Attr("href")
	assert.Equal(t, "style.css", css)
	icon, _ := doc.Find(`link[rel="icon"]`).Attr("href")
	assert.Equal(t, "favicon.png", icon)
	js, _ := doc.Find("script").Attr("src")
	assert.Equal(t, "script.js", js)

	var footer []string
	doc.Find("footer nav a").Each(func(_ int, s *goquery.Selection) { footer = append(footer, s.Text()) })
	assert.Equal(t, []string{"README", "OPML", "IRC"}, footer)
	assert.Contains(t, doc.Find("footer p.updated").Text(), "Wed, 14 Oct 2026 09:30:00 UTC")
}

func TestRender_BadSite(t *testing.T) {
	_, err := Render([]model.Entry{{Name: "Ada", Site: "ada.example"}}, meta, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoScheme)
	assert.Contains(t, err.Error(), "Ada")
}

func TestRender_EscapesText(t *testing.T) {
	out, err := Render([]model.Entry{{Name: "<b>Ada</b>", Site: "https://ada.example"}}, meta, now)
	require.NoError(t, err)
	assert.Contains(t, string(out), "&lt;b&gt;Ada&lt;/b&gt;")
}
