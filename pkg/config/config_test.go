package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/page"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
		assert.True(t, cfg.Sitemap)
		assert.True(t, cfg.StaticAssets)
		assert.Equal(t, page.DefaultSite(), cfg.SiteChrome())
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "sitegen.yaml", `
output_dir: dist
sitemap: false
site:
  name: demo
  base_url: https://example.com
  nav:
    - label: Home
      href: /
theme:
  variant: dark
  tokens:
    accent: "#ff0000"
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "dist", cfg.OutputDir)
		assert.False(t, cfg.Sitemap)
		assert.Equal(t, "demo", cfg.Site.Name)
		assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
		assert.Equal(t, []page.NavLink{{Label: "Home", Href: "/"}}, cfg.Site.Nav)
		assert.Equal(t, page.DefaultSite().Attribution, cfg.Site.Attribution)

		resolved, err := cfg.ResolvedTheme()
		require.NoError(t, err)
		require.NotNil(t, resolved)
		assert.Equal(t, "dark", resolved.Variant)
		assert.Equal(t, "#ff0000", resolved.CSSVars["--accent"])
	})

	t.Run("toml file", func(t *testing.T) {
		path := writeConfig(t, "sitegen.toml", `
output_dir = "out"

[site]
name = "tomlsite"
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "out", cfg.OutputDir)
		assert.Equal(t, "tomlsite", cfg.Site.Name)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "sitegen.yaml", "output_dir: dist\nsite:\n  name: demo\n")
		t.Setenv("SITEGEN_OUTPUT_DIR", "from-env")
		t.Setenv("SITEGEN_SITE__BASE_URL", "https://env.example.com")
		t.Setenv("SITEGEN_SITEMAP", "false")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.OutputDir)
		assert.Equal(t, "https://env.example.com", cfg.Site.BaseURL)
		assert.Equal(t, "demo", cfg.Site.Name)
		assert.False(t, cfg.Sitemap)
	})
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		path func(t *testing.T) string
		code siteerrors.ErrorCode
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.yaml") },
			code: siteerrors.ErrConfigLoad,
		},
		{
			name: "unsupported extension",
			path: func(t *testing.T) string { return writeConfig(t, "sitegen.json", "{}") },
			code: siteerrors.ErrConfigParse,
		},
		{
			name: "malformed yaml",
			path: func(t *testing.T) string { return writeConfig(t, "sitegen.yaml", "site: [") },
			code: siteerrors.ErrConfigParse,
		},
		{
			name: "empty output dir",
			path: func(t *testing.T) string { return writeConfig(t, "sitegen.yaml", `output_dir: ""`) },
			code: siteerrors.ErrConfigValid,
		},
		{
			name: "relative base url",
			path: func(t *testing.T) string { return writeConfig(t, "sitegen.yaml", "site:\n  base_url: /docs\n") },
			code: siteerrors.ErrConfigValid,
		},
		{
			name: "token closing the style block",
			path: func(t *testing.T) string {
				return writeConfig(t, "sitegen.yaml", "theme:\n  tokens:\n    accent: \"red}</style>\"\n")
			},
			code: siteerrors.ErrConfigValid,
		},
		{
			name: "missing theme manifest",
			path: func(t *testing.T) string { return writeConfig(t, "sitegen.yaml", "theme:\n  manifest: /nonexistent/theme.yaml\n") },
			code: siteerrors.ErrConfigValid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.path(t))
			require.Error(t, err)
			assert.Equal(t, tc.code, siteerrors.GetErrorCode(err), "error: %v", err)
		})
	}
}

func TestValidate_Nav(t *testing.T) {
	cfg := &Config{OutputDir: "public", Site: SiteConfig{Nav: []page.NavLink{{Label: "", Href: "/"}}}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "site.nav", siteerrors.GetErrorDetails(err)["key"])
}

func TestValidate_ThemeTokens(t *testing.T) {
	cases := []struct {
		name   string
		tokens map[string]string
		valid  bool
	}{
		{name: "hex color", tokens: map[string]string{"accent": "#fff"}, valid: true},
		{name: "semicolon", tokens: map[string]string{"accent": "red;x:y"}},
		{name: "open brace", tokens: map[string]string{"accent": "red{"}},
		{name: "angle bracket", tokens: map[string]string{"accent": "<b>"}},
		{name: "unsafe name", tokens: map[string]string{"a;b": "red"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{OutputDir: "public", Theme: ThemeConfig{Tokens: tc.tokens}}
			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, siteerrors.ErrConfigValid, siteerrors.GetErrorCode(err))
			assert.Equal(t, "theme.tokens", siteerrors.GetErrorDetails(err)["key"])
		})
	}
}

func TestConfig_ThemeManifest(t *testing.T) {
	manifestPath := writeConfig(t, "theme.yaml", `
name: ocean
version: 1.0.0
tokens:
  accent: "#0077be"
assets:
  prefix: /assets
  files:
    logo: logo.svg
variants:
  night:
    tokens:
      accent: "#003366"
`)
	path := writeConfig(t, "sitegen.yaml", "theme:\n  name: ocean\n  variant: night\n  manifest: "+manifestPath+"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	resolved, err := cfg.ResolvedTheme()
	require.NoError(t, err)
	assert.Equal(t, "ocean", resolved.Theme)
	assert.Equal(t, "night", resolved.Variant)
	assert.Equal(t, "#003366", resolved.CSSVars["--accent"])
	assert.Equal(t, "/assets/logo.svg", resolved.AssetURL(page.AssetLogo))
	assert.Empty(t, resolved.AssetURL(page.AssetFavicon))
}

func TestConfig_InvalidThemeManifest(t *testing.T) {
	manifestPath := writeConfig(t, "theme.yaml", "name: broken\n")
	cfg := &Config{OutputDir: "public", Theme: ThemeConfig{Manifest: manifestPath}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, siteerrors.ErrConfigValid, siteerrors.GetErrorCode(err))
	assert.Equal(t, "theme.manifest", siteerrors.GetErrorDetails(err)["key"])

	_, err = cfg.ResolvedTheme()
	assert.True(t, siteerrors.IsErrorCode(err, siteerrors.ErrMalformedCustomization), "error: %v", err)
}

func TestConfig_ThemeDisabledOrUnknown(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, page.DefaultThemeName, cfg.Theme.Name)

	cfg.Theme.Name = "unknown"
	resolved, err := cfg.ResolvedTheme()
	require.NoError(t, err)
	assert.Equal(t, "#2a7ae2", resolved.CSSVars["--accent"], "unknown theme falls back to the default")

	cfg.Theme.Disabled = true
	resolved, err = cfg.ResolvedTheme()
	require.NoError(t, err)
	assert.Nil(t, resolved)

	selector, err := cfg.ThemeSelector()
	require.NoError(t, err)
	assert.Nil(t, selector)
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitegen.toml"), []byte(""), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitegen.yml"), []byte(""), 0o644))

	assert.Equal(t, filepath.Join(dir, "sitegen.yml"), Discover(dir))
}

func TestConfig_TemplateOptions(t *testing.T) {
	dir := t.TempDir()
	stylesheetPath := filepath.Join(dir, "custom.css")
	require.NoError(t, os.WriteFile(stylesheetPath, []byte("body{color:red}"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Stylesheet = stylesheetPath
	cfg.Theme.Disabled = true

	options, err := cfg.TemplateOptions()
	require.NoError(t, err)
	out, err := page.New(options...).Render(page.Page{Path: "/"})
	require.NoError(t, err)
	assert.Contains(t, out, "<style>body{color:red}</style>")
	assert.NotContains(t, out, ":root{")
}

func TestConfig_Marshal(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	yamlOut, err := cfg.Marshal("yaml")
	require.NoError(t, err)
	assert.Contains(t, string(yamlOut), "output_dir: public")
	assert.Contains(t, string(yamlOut), "base_url: https://jless.io")

	tomlOut, err := cfg.Marshal("toml")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(tomlOut), "[site]"), "toml: %s", tomlOut)

	var decoded Config
	require.NoError(t, toml.Unmarshal(tomlOut, &decoded))
	assert.Equal(t, cfg.OutputDir, decoded.OutputDir)
	assert.Equal(t, cfg.Site.Nav, decoded.Site.Nav)

	_, err = cfg.Marshal("json")
	assert.True(t, siteerrors.IsErrorCode(err, siteerrors.ErrInvalidInput))
}
