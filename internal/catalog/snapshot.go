package catalog

import (
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/scrape"
)

// Snapshot is the raw catalog page held for the session. It is kept for
// display only; products are not extracted from it.
type Snapshot struct {
	URL       string         `json:"url"`
	Title     string         `json:"title,omitempty"`
	Markdown  string         `json:"markdown"`
	HTML      string         `json:"html"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Raw       []byte         `json:"-"`
	FetchedAt time.Time      `json:"fetched_at"`
}

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// NewSnapshot builds a snapshot from a scrape result. The HTML is sanitised
// down to allowTags, and markdown is derived from it when the provider sent
// none.
func NewSnapshot(pageURL string, res *scrape.Result, allowTags []string) *Snapshot {
	snap := &Snapshot{
		URL:       pageURL,
		Markdown:  res.Markdown,
		Metadata:  res.Metadata,
		Raw:       res.Raw,
		FetchedAt: time.Now(),
	}

	snap.Title = metadataTitle(res.Metadata)
	if snap.Title == "" && res.HTML != "" {
		snap.Title = findTitle(res.HTML)
	}

	if res.HTML != "" {
		snap.HTML = sanitizer(allowTags).Sanitize(res.HTML)
	}

	if strings.TrimSpace(snap.Markdown) == "" && snap.HTML != "" {
		md, err := mdConverter.ConvertString(snap.HTML, converter.WithDomain(pageURL))
		if err != nil {
			logger.L.Warn("markdown conversion failed", "url", pageURL, "error", err)
		} else {
			snap.Markdown = md
		}
	}
	return snap
}

func sanitizer(allowTags []string) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(allowTags...)
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "title", "width", "height").OnElements("img")
	p.RequireNoFollowOnLinks(true)
	return p
}

func metadataTitle(meta map[string]any) string {
	for _, k := range []string{"title", "ogTitle", "og:title"} {
		if s, ok := meta[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// findTitle extracts the <title> text.
func findTitle(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	var walk func(*html.Node) string
	walk = func(n *html.Node) string {
		if n.Type == html.ElementNode && n.DataAtom == atom.Title {
			if n.FirstChild != nil {
				return strings.TrimSpace(n.FirstChild.Data)
			}
			return ""
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if t := walk(c); t != "" {
				return t
			}
		}
		return ""
	}
	return walk(doc)
}
