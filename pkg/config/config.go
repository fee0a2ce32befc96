package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/page"
)

// Config is the effective configuration of a generation run.
type Config struct {
	OutputDir    string      `koanf:"output_dir" yaml:"output_dir" toml:"output_dir"`
	Stylesheet   string      `koanf:"stylesheet" yaml:"stylesheet" toml:"stylesheet"`
	Sitemap      bool        `koanf:"sitemap" yaml:"sitemap" toml:"sitemap"`
	StaticAssets bool        `koanf:"static_assets" yaml:"static_assets" toml:"static_assets"`
	Site         SiteConfig  `koanf:"site" yaml:"site" toml:"site"`
	Theme        ThemeConfig `koanf:"theme" yaml:"theme" toml:"theme"`
}

// SiteConfig mirrors page.Site.
type SiteConfig struct {
	Name        string         `koanf:"name" yaml:"name" toml:"name"`
	BaseURL     string         `koanf:"base_url" yaml:"base_url" toml:"base_url"`
	Description string         `koanf:"description" yaml:"description" toml:"description"`
	Repository  string         `koanf:"repository" yaml:"repository" toml:"repository"`
	Attribution string         `koanf:"attribution" yaml:"attribution" toml:"attribution"`
	FontURL     string         `koanf:"font_url" yaml:"font_url" toml:"font_url"`
	Nav         []page.NavLink `koanf:"nav" yaml:"nav" toml:"nav"`
}

// ThemeConfig selects a theme and variant and overrides tokens. Manifest
// optionally names a go-theme manifest file registered next to the built-in
// theme.
type ThemeConfig struct {
	Disabled bool              `koanf:"disabled" yaml:"disabled" toml:"disabled"`
	Name     string            `koanf:"name" yaml:"name" toml:"name"`
	Variant  string            `koanf:"variant" yaml:"variant" toml:"variant"`
	Manifest string            `koanf:"manifest" yaml:"manifest" toml:"manifest"`
	Tokens   map[string]string `koanf:"tokens" yaml:"tokens,omitempty" toml:"tokens,omitempty"`
}

// Validate reports the first invalid setting as a CONFIG_VALID error.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return siteerrors.New(siteerrors.ErrConfigValid, "output_dir must not be empty").
			WithDetail("key", "output_dir")
	}
	if c.Site.BaseURL != "" {
		parsed, err := url.Parse(c.Site.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return siteerrors.Newf(siteerrors.ErrConfigValid, "site.base_url %q is not an absolute URL", c.Site.BaseURL).
				WithDetail("key", "site.base_url")
		}
	}
	for i, link := range c.Site.Nav {
		if strings.TrimSpace(link.Label) == "" || strings.TrimSpace(link.Href) == "" {
			return siteerrors.Newf(siteerrors.ErrConfigValid, "site.nav[%d] needs a label and an href", i).
				WithDetail("key", "site.nav")
		}
	}
	if err := page.ValidateTokens(c.Theme.Tokens); err != nil {
		return siteerrors.Wrap(err, siteerrors.ErrConfigValid, "invalid theme.tokens").
			WithDetail("key", "theme.tokens")
	}
	if _, err := c.themeManifest(); err != nil {
		return siteerrors.Wrapf(err, siteerrors.ErrConfigValid, "theme.manifest %q", c.Theme.Manifest).
			WithDetail("key", "theme.manifest")
	}
	return nil
}

// SiteChrome returns the page chrome described by the configuration.
func (c *Config) SiteChrome() page.Site {
	return page.Site{
		Name:        c.Site.Name,
		BaseURL:     c.Site.BaseURL,
		Description: c.Site.Description,
		Repository:  c.Site.Repository,
		Attribution: c.Site.Attribution,
		FontURL:     c.Site.FontURL,
		Nav:         append([]page.NavLink(nil), c.Site.Nav...),
	}
}

// ThemeSelector returns a go-theme selector over the built-in theme and the
// configured manifest, or nil when theming is disabled.
func (c *Config) ThemeSelector() (theme.ThemeSelector, error) {
	if c.Theme.Disabled {
		return nil, nil
	}
	manifest, err := c.themeManifest()
	if err != nil {
		return nil, err
	}
	registry, err := page.NewThemeRegistry(manifest)
	if err != nil {
		return nil, err
	}
	return theme.Selector{Registry: registry, DefaultTheme: page.DefaultThemeName}, nil
}

// ResolvedTheme returns the theme view for the template, or nil when theming
// is disabled.
func (c *Config) ResolvedTheme() (*theme.RendererConfig, error) {
	selector, err := c.ThemeSelector()
	if err != nil {
		return nil, err
	}
	return page.ResolveTheme(selector, c.Theme.Name, c.Theme.Variant, c.Theme.Tokens)
}

func (c *Config) themeManifest() (*theme.Manifest, error) {
	if c.Theme.Manifest == "" {
		return nil, nil
	}
	manifest, err := theme.LoadFile(os.DirFS(filepath.Dir(c.Theme.Manifest)), filepath.Base(c.Theme.Manifest))
	if err != nil {
		return nil, siteerrors.Wrapf(err, siteerrors.ErrMalformedCustomization, "load theme manifest %s", c.Theme.Manifest).
			WithDetail("path", c.Theme.Manifest)
	}
	return manifest, nil
}

// BaseStylesheet returns the shared stylesheet: the configured file when set,
// the embedded one otherwise.
func (c *Config) BaseStylesheet() *page.Stylesheet {
	if c.Stylesheet == "" {
		return page.EmbeddedStylesheet()
	}
	return page.NewStylesheet(os.DirFS(filepath.Dir(c.Stylesheet)), filepath.Base(c.Stylesheet))
}

// TemplateOptions converts the configuration into page template options.
func (c *Config) TemplateOptions() ([]page.Option, error) {
	resolved, err := c.ResolvedTheme()
	if err != nil {
		return nil, err
	}
	return []page.Option{
		page.WithSite(c.SiteChrome()),
		page.WithThemeConfig(resolved),
		page.WithStylesheet(c.BaseStylesheet()),
	}, nil
}
