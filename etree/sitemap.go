// Package etree builds sitemap XML for the published site.
package etree

import (
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/wikidaily"
)

// SitemapNamespace is the sitemaps.org schema namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapBuilder implements wikidaily.SitemapBuilder at compile time.
var _ wikidaily.SitemapBuilder = (*SitemapBuilder)(nil)

// SitemapBuilder renders a <urlset> listing published files.
type SitemapBuilder struct {
	// Indent is the number of spaces per nesting level. Zero writes
	// the document on a single line.
	Indent int
}

// NewSitemapBuilder creates a SitemapBuilder with two-space indentation.
func NewSitemapBuilder() *SitemapBuilder {
	return &SitemapBuilder{Indent: 2}
}

// Build returns sitemap XML with one <url> per name, resolved against
// baseURL. An empty lastMod omits <lastmod>.
func (b *SitemapBuilder) Build(baseURL string, names []string, lastMod string) ([]byte, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	for _, name := range names {
		name = strings.TrimLeft(name, "/")
		if name == "" {
			continue
		}
		ref, err := url.Parse(name)
		if err != nil {
			return nil, wikidaily.Errorf(wikidaily.EINVALID, "invalid file name %q: %v", name, err)
		}

		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base.ResolveReference(ref).String())
		if lastMod != "" {
			u.CreateElement("lastmod").SetText(lastMod)
		}
	}

	if b.Indent > 0 {
		doc.Indent(b.Indent)
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, wikidaily.Errorf(wikidaily.EINTERNAL, "writing sitemap: %v", err)
	}
	return out, nil
}

// parseBase validates baseURL and gives it a trailing slash so names
// resolve beneath its path.
func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, wikidaily.Errorf(wikidaily.EINVALID, "invalid base URL: %v", err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, wikidaily.Errorf(wikidaily.EINVALID, "base URL %q must be absolute http(s)", baseURL)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	base.RawQuery = ""
	base.Fragment = ""
	return base, nil
}
