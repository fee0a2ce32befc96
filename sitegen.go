package sitegen

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/page"
	"github.com/goliatone/go-sitegen/pkg/site"
)

// Page aliases page.Page so callers can describe pages from the top-level
// module.
type Page = page.Page

// Result aliases site.Result.
type Result = site.Result

// NewTemplate exposes the page template constructor.
func NewTemplate(options ...page.Option) *page.Template {
	return page.New(options...)
}

// NewBuilder returns a site builder configured from cfg. Extra options are
// applied last and win over the configuration. It fails when the configured
// theme cannot be resolved.
func NewBuilder(cfg *config.Config, logger zerolog.Logger, options ...site.Option) (*site.Builder, error) {
	tmplOptions, err := cfg.TemplateOptions()
	if err != nil {
		return nil, err
	}
	tmplOptions = append(tmplOptions, page.WithLogger(logger))

	base := []site.Option{
		site.WithTemplate(page.New(tmplOptions...)),
		site.WithOutputDir(cfg.OutputDir),
		site.WithSitemap(cfg.Sitemap),
		site.WithLogger(logger),
	}
	if !cfg.StaticAssets {
		base = append(base, site.WithStaticAssets(nil))
	}
	return site.New(append(base, options...)...), nil
}

// Generate loads the configuration at configPath (defaults and environment
// only when empty) and builds the site. It is the simplest entry point for
// callers that just want the files on disk.
func Generate(ctx context.Context, configPath string, options ...site.Option) (Result, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return Result{}, err
	}
	builder, err := NewBuilder(cfg, zerolog.Nop(), options...)
	if err != nil {
		return Result{}, err
	}
	return builder.Build(ctx)
}
