// Package sitemap writes sitemaps.org urlset documents for generated sites.
package sitemap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
)

// Namespace is the sitemaps.org schema namespace.
const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// FileName is where the builder writes the sitemap.
const FileName = "sitemap.xml"

// Build returns a sitemap listing one absolute URL per page path, in input
// order. Duplicate paths are listed once.
func Build(baseURL string, paths []string) ([]byte, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("sitemap: base url is required")
	}
	if parsed, err := url.Parse(base); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("sitemap: invalid base url %q", baseURL)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", Namespace)

	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		loc := Location(base, p)
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		urlset.CreateElement("url").CreateElement("loc").SetText(loc)
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: encode: %w", err)
	}
	return data, nil
}

// Location joins a base URL and a site-relative page path.
func Location(baseURL, pagePath string) string {
	base := strings.TrimRight(baseURL, "/")
	if pagePath == "" {
		pagePath = "/"
	}
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	return base + pagePath
}
