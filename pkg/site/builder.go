package site

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-sitegen/internal/output"
	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/logging"
	"github.com/goliatone/go-sitegen/pkg/page"
	"github.com/goliatone/go-sitegen/pkg/pages"
	"github.com/goliatone/go-sitegen/pkg/sitemap"
)

const (
	// DefaultOutputDir is used when no output directory is configured.
	DefaultOutputDir = "public"

	// AssetsDir is the output subdirectory static assets are copied into.
	AssetsDir = "assets"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithTemplate injects the page template shared by every page.
func WithTemplate(tmpl *page.Template) Option {
	return func(b *Builder) {
		b.template = tmpl
	}
}

// WithRegistry injects the pages to generate.
func WithRegistry(registry *pages.Registry) Option {
	return func(b *Builder) {
		b.registry = registry
	}
}

// WithOutputDir sets the directory pages are written to.
func WithOutputDir(dir string) Option {
	return func(b *Builder) {
		b.outputDir = dir
	}
}

// WithSitemap toggles writing sitemap.xml.
func WithSitemap(enabled bool) Option {
	return func(b *Builder) {
		b.sitemap = enabled
	}
}

// WithLogger sets the logger for per-page progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithStaticAssets supplies the files copied under the assets directory. Pass
// nil to skip copying.
func WithStaticAssets(fsys fs.FS) Option {
	return func(b *Builder) {
		b.assets = fsys
		b.assetsSpecified = true
	}
}

// Builder coordinates a generation run. Missing dependencies fall back to the
// jless defaults: the built-in template, the default page set and the
// embedded assets.
type Builder struct {
	template        *page.Template
	registry        *pages.Registry
	outputDir       string
	sitemap         bool
	logger          zerolog.Logger
	assets          fs.FS
	assetsSpecified bool
	initialiseErr   error
}

// Output records one generated page.
type Output struct {
	Path string
	File string
}

// Result summarises a build. Paths are absolute or relative in the same way
// the output directory was given.
type Result struct {
	Pages   []Output
	Sitemap string
	Assets  []string
}

// New constructs a Builder applying any provided options.
func New(options ...Option) *Builder {
	b := &Builder{
		outputDir: DefaultOutputDir,
		sitemap:   true,
		logger:    zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.applyDefaults()
	return b
}

func (b *Builder) applyDefaults() {
	if b.template == nil {
		b.template = page.New(page.WithLogger(b.logger))
	}
	if b.registry == nil {
		registry, err := pages.Default()
		if err != nil {
			b.initialiseErr = fmt.Errorf("site: default pages: %w", err)
		}
		b.registry = registry
	}
	if !b.assetsSpecified {
		b.assets = page.AssetsFS()
	}
	if b.outputDir == "" {
		b.outputDir = DefaultOutputDir
	}
}

// OutputDir returns the configured output directory.
func (b *Builder) OutputDir() string {
	return b.outputDir
}

type planned struct {
	Output
	page page.Page
}

// Plan returns the pages that Build would write, without writing anything.
func (b *Builder) Plan() ([]Output, error) {
	steps, err := b.plan()
	if err != nil {
		return nil, err
	}
	outputs := make([]Output, 0, len(steps))
	for _, step := range steps {
		outputs = append(outputs, step.Output)
	}
	return outputs, nil
}

func (b *Builder) plan() ([]planned, error) {
	if b.initialiseErr != nil {
		return nil, b.initialiseErr
	}
	all := b.registry.Pages()
	steps := make([]planned, 0, len(all))
	for _, p := range all {
		key := pages.NormalizePath(p.Path)
		steps = append(steps, planned{
			Output: Output{
				Path: key,
				File: filepath.Join(b.outputDir, filepath.FromSlash(pages.OutputName(key))),
			},
			page: p,
		})
	}
	return steps, nil
}

// Build generates every registered page, copies static assets and writes the
// sitemap. Page failures do not stop the remaining pages; they are returned
// joined. A canceled context stops the run before the next page.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	var result Result

	steps, err := b.plan()
	if err != nil {
		return result, err
	}

	logger := b.logger.With().Str("output_dir", b.outputDir).Logger()
	done := logging.LogOperationStart(logger, "build")
	defer done()

	if err := os.MkdirAll(b.outputDir, 0o755); err != nil {
		return result, siteerrors.Wrapf(err, siteerrors.ErrResourceUnavailable, "create output directory %s", b.outputDir).
			WithDetail("path", b.outputDir)
	}

	var pageErrs []error
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return result, errors.Join(append(pageErrs, err)...)
		}
		target := step.Output

		if dir := filepath.Dir(target.File); dir != filepath.Clean(b.outputDir) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				pageErrs = append(pageErrs, siteerrors.Wrapf(err, siteerrors.ErrResourceUnavailable, "create directory %s", dir).
					WithDetail("path", dir))
				continue
			}
		}

		if err := b.template.Generate(ctx, step.page, target.File); err != nil {
			logger.Error().Err(err).Str("page", target.Path).Msg("Page failed")
			pageErrs = append(pageErrs, fmt.Errorf("site: page %s: %w", target.Path, err))
			continue
		}
		logger.Info().Str("page", target.Path).Str("file", target.File).Msg("Page written")
		result.Pages = append(result.Pages, target)
	}

	if b.assets != nil {
		written, err := output.CopyFS(filepath.Join(b.outputDir, AssetsDir), b.assets)
		result.Assets = written
		if err != nil {
			return result, errors.Join(append(pageErrs, siteerrors.Wrap(err, siteerrors.ErrResourceUnavailable, "copy static assets").
				WithDetail("path", filepath.Join(b.outputDir, AssetsDir)))...)
		}
		logger.Debug().Int("files", len(written)).Msg("Static assets copied")
	}

	if b.sitemap {
		file, err := b.writeSitemap(result.Pages)
		if err != nil {
			pageErrs = append(pageErrs, err)
		}
		result.Sitemap = file
	}

	return result, errors.Join(pageErrs...)
}

func (b *Builder) writeSitemap(written []Output) (string, error) {
	baseURL := b.template.Site().BaseURL
	if baseURL == "" || len(written) == 0 {
		b.logger.Debug().Msg("Sitemap skipped")
		return "", nil
	}

	paths := make([]string, 0, len(written))
	for _, out := range written {
		paths = append(paths, sitemapPath(out.Path))
	}

	data, err := sitemap.Build(baseURL, paths)
	if err != nil {
		return "", fmt.Errorf("site: %w", err)
	}

	file := filepath.Join(b.outputDir, sitemap.FileName)
	if err := output.WriteFile(file, data); err != nil {
		return "", siteerrors.Wrapf(err, siteerrors.ErrResourceUnavailable, "write %s", file).
			WithDetail("path", file)
	}
	return file, nil
}

// sitemapPath turns a registry path into the URL path the file is served at.
func sitemapPath(pagePath string) string {
	name := pages.OutputName(pagePath)
	if name == "index.html" {
		return "/"
	}
	if path.Base(name) == "index.html" {
		return "/" + path.Dir(name) + "/"
	}
	return "/" + name
}
