package page

import (
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
)

// Asset keys resolved through the theme.
const (
	AssetLogo    = "logo"
	AssetFavicon = "favicon"
	AssetFooter  = "footer"
)

// DefaultTheme returns the jless theme manifest. Tokens become CSS custom
// properties; asset files are served under the /assets prefix.
func DefaultTheme() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"background":      "#fdfdfd",
			"foreground":      "#1d1f21",
			"accent":          "#2a7ae2",
			"muted":           "#6a737d",
			"code-background": "#f3f4f6",
		},
		Assets: theme.Assets{
			Prefix: "/assets",
			Files: map[string]string{
				AssetLogo:    "logo.svg",
				AssetFavicon: "favicon.svg",
				AssetFooter:  "footer.svg",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"background":      "#1d1f21",
					"foreground":      "#e6e6e6",
					"accent":          "#6cb6ff",
					"muted":           "#9aa0a6",
					"code-background": "#2b2d31",
				},
			},
		},
	}
}

// DefaultThemeName is the name DefaultTheme registers under.
const DefaultThemeName = "jless"

// NewThemeRegistry returns a go-theme registry holding DefaultTheme plus any
// extra manifests. Every manifest is validated on registration; a manifest
// with the default name and a higher version replaces the built-in one.
func NewThemeRegistry(manifests ...*theme.Manifest) (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	for _, manifest := range append([]*theme.Manifest{DefaultTheme()}, manifests...) {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, siteerrors.Wrapf(err, siteerrors.ErrMalformedCustomization, "register theme %q", manifest.Name).
				WithDetail("theme", manifest.Name)
		}
	}
	return registry, nil
}

// DefaultThemeSelector selects from a registry that only holds DefaultTheme.
func DefaultThemeSelector() theme.Selector {
	registry, err := NewThemeRegistry()
	if err != nil {
		panic(err)
	}
	return theme.Selector{Registry: registry, DefaultTheme: DefaultThemeName}
}

// ResolveTheme selects name and variant through selector and applies the
// token overrides on top. A nil selector yields nil. Empty name and variant
// fall back to the selector defaults.
func ResolveTheme(selector theme.ThemeSelector, name, variant string, overrides map[string]string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, nil
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, siteerrors.Wrapf(err, siteerrors.ErrMalformedCustomization, "select theme %q", name).
			WithDetail("theme", name).
			WithDetail("variant", variant)
	}

	cfg := selection.RendererTheme(nil)
	for key, value := range overrides {
		cfg.Tokens[key] = value
		cfg.CSSVars["--"+key] = value
	}
	if err := ValidateTokens(cfg.Tokens); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateTokens rejects token names and values that would escape the
// :root rule they are rendered into.
func ValidateTokens(tokens map[string]string) error {
	for key, value := range tokens {
		if strings.TrimSpace(key) == "" {
			return siteerrors.New(siteerrors.ErrMalformedCustomization, "theme token name must not be empty")
		}
		if strings.ContainsAny(key, unsafeTokenChars+" \t\n:") {
			return siteerrors.Newf(siteerrors.ErrMalformedCustomization, "theme token name %q is not allowed", key).
				WithDetail("token", key)
		}
		if strings.ContainsAny(value, unsafeTokenChars) {
			return siteerrors.Newf(siteerrors.ErrMalformedCustomization, "theme token %q has a disallowed value", key).
				WithDetail("token", key)
		}
	}
	return nil
}

const unsafeTokenChars = "<>{};"

// cssVarsBlock renders the custom properties as a :root rule, sorted by name.
func cssVarsBlock(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(vars[key])
		b.WriteByte(';')
	}
	b.WriteString("}\n")
	return b.String()
}
