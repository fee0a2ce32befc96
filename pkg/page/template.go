package page

import (
	"context"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-sitegen/internal/output"
	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/html"
)

// Doctype opens every generated document.
const Doctype = "<!DOCTYPE html>"

type Option func(*Template)

// WithSite sets the site-wide chrome.
func WithSite(site Site) Option {
	return func(t *Template) {
		t.site = site
	}
}

// WithStylesheet sets the shared base stylesheet. The same value should be
// passed to every template of a run so the file is read once.
func WithStylesheet(stylesheet *Stylesheet) Option {
	return func(t *Template) {
		if stylesheet != nil {
			t.stylesheet = stylesheet
		}
	}
}

// WithThemeSelector resolves the theme through selector. Pass nil to disable
// theming.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(t *Template) {
		t.selector = selector
		t.themeFixed = false
	}
}

// WithThemeProvider builds a go-theme selector over provider with the given
// default theme and variant.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(t *Template) {
		if provider == nil {
			t.selector = nil
		} else {
			t.selector = theme.Selector{
				Registry:       provider,
				DefaultTheme:   defaultTheme,
				DefaultVariant: defaultVariant,
			}
		}
		t.themeFixed = false
	}
}

// WithTheme picks the theme name and variant handed to the selector. Empty
// values use the selector defaults.
func WithTheme(name, variant string) Option {
	return func(t *Template) {
		t.themeName = name
		t.themeVariant = variant
	}
}

// WithThemeTokens overrides individual tokens of the selected theme.
func WithThemeTokens(tokens map[string]string) Option {
	return func(t *Template) {
		t.themeTokens = tokens
	}
}

// WithThemeConfig injects an already resolved theme view and skips
// selection. A nil config disables theming.
func WithThemeConfig(cfg *theme.RendererConfig) Option {
	return func(t *Template) {
		t.theme = cfg
		t.themeFixed = true
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Template) {
		t.logger = logger
	}
}

// WithWriter replaces the atomic file writer.
func WithWriter(write func(path string, data []byte) error) Option {
	return func(t *Template) {
		if write != nil {
			t.write = write
		}
	}
}

// Template assembles pages into complete documents: doctype, head metadata,
// shared and per-page styles, header, page content and footer.
type Template struct {
	site       Site
	stylesheet *Stylesheet
	logger     zerolog.Logger
	write      func(path string, data []byte) error

	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
	themeTokens  map[string]string
	themeFixed   bool
	theme        *theme.RendererConfig
	themeErr     error
}

// New constructs a Template. Without options it uses the jless chrome, the
// embedded base stylesheet and the default theme.
func New(options ...Option) *Template {
	t := &Template{
		site:     DefaultSite(),
		selector: DefaultThemeSelector(),
		logger:   zerolog.Nop(),
		write:    output.WriteFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}
	if t.stylesheet == nil {
		t.stylesheet = EmbeddedStylesheet()
	}
	if !t.themeFixed {
		t.theme, t.themeErr = ResolveTheme(t.selector, t.themeName, t.themeVariant, t.themeTokens)
	}
	return t
}

// Site returns the chrome the template renders.
func (t *Template) Site() Site {
	return t.site
}

// Theme returns the resolved theme view, nil when theming is disabled.
func (t *Template) Theme() *theme.RendererConfig {
	return t.theme
}

// Render returns the full document for p. It fails when the theme could not
// be selected or the shared stylesheet cannot be read.
func (t *Template) Render(p Page) (string, error) {
	if t.themeErr != nil {
		return "", t.themeErr
	}
	base, err := t.stylesheet.Load()
	if err != nil {
		return "", err
	}

	css := base
	if t.theme != nil {
		css += cssVarsBlock(t.theme.CSSVars)
	}
	css += p.ExtraCSS

	content := ""
	if p.Content != nil {
		content = p.Content()
	}

	document := html.HTML(html.Func(func() string {
		return t.head(p, css) + html.Body(html.Func(func() string {
			return t.header() + content + t.footer(p)
		}))
	}))
	return Doctype + document, nil
}

// Generate renders p and writes it to outputPath, replacing any existing
// file. Read and write failures are reported as RESOURCE_UNAVAILABLE errors
// carrying the offending path.
func (t *Template) Generate(ctx context.Context, p Page, outputPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	document, err := t.Render(p)
	if err != nil {
		return fmt.Errorf("page: render %q: %w", p.Path, err)
	}

	if err := t.write(outputPath, []byte(document)); err != nil {
		return siteerrors.Wrapf(err, siteerrors.ErrResourceUnavailable, "write %s", outputPath).
			WithDetail("path", outputPath)
	}

	t.logger.Debug().
		Str("page", p.Path).
		Str("output", outputPath).
		Int("bytes", len(document)).
		Msg("Page generated")
	return nil
}
