package config

import "github.com/goliatone/go-sitegen/pkg/page"

// DefaultOutputDir is where pages are written unless configured otherwise.
const DefaultOutputDir = "public"

// Defaults returns the flattened default configuration loaded before any
// file or environment values.
func Defaults() map[string]interface{} {
	site := page.DefaultSite()

	nav := make([]interface{}, 0, len(site.Nav))
	for _, link := range site.Nav {
		nav = append(nav, map[string]interface{}{
			"label": link.Label,
			"href":  link.Href,
		})
	}

	return map[string]interface{}{
		"output_dir":       DefaultOutputDir,
		"stylesheet":       "",
		"sitemap":          true,
		"static_assets":    true,
		"site.name":        site.Name,
		"site.base_url":    site.BaseURL,
		"site.description": site.Description,
		"site.repository":  site.Repository,
		"site.attribution": site.Attribution,
		"site.font_url":    site.FontURL,
		"site.nav":         nav,
		"theme.disabled":   false,
		"theme.name":       page.DefaultThemeName,
		"theme.variant":    "",
		"theme.manifest":   "",
	}
}
