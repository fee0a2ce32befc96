package sitegen

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-sitegen/pkg/config"
	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/testsupport"
)

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "base.css")
	if err != nil {
		t.Fatalf("expected base stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "var(--accent") {
		t.Fatalf("expected base stylesheet to use theme variables")
	}
}

func TestContentFSContainsChangelog(t *testing.T) {
	if _, err := fs.Stat(ContentFS(), "CHANGELOG.md"); err != nil {
		t.Fatalf("expected changelog to be embedded: %v", err)
	}
}

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")
	configPath := filepath.Join(t.TempDir(), "sitegen.yaml")
	if err := os.WriteFile(configPath, []byte("output_dir: "+out+"\nstatic_assets: false\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Generate(testsupport.Context(), configPath)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(result.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(result.Pages))
	}
	if len(result.Assets) != 0 {
		t.Fatalf("expected no assets to be copied, got %v", result.Assets)
	}
	if result.Sitemap != filepath.Join(out, "sitemap.xml") {
		t.Fatalf("unexpected sitemap path %q", result.Sitemap)
	}
}

func TestNewBuilderAppliesConfig(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.OutputDir = t.TempDir()
	cfg.Sitemap = false
	cfg.Site.Name = "custom"

	builder, err := NewBuilder(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	result, err := builder.Build(testsupport.Context())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result.Sitemap != "" {
		t.Fatalf("expected sitemap to be disabled")
	}
	home := testsupport.MustReadFile(t, filepath.Join(cfg.OutputDir, "index.html"))
	if !strings.Contains(home, "<span>custom</span>") {
		t.Fatalf("expected configured site name in header")
	}
	if !strings.Contains(home, `class="repository">Source</a>`) {
		t.Fatalf("expected the default repository link in the footer")
	}
}

func TestNewBuilderRejectsMissingThemeManifest(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Theme.Manifest = filepath.Join(t.TempDir(), "missing.yaml")

	if _, err := NewBuilder(cfg, zerolog.Nop()); !siteerrors.IsErrorCode(err, siteerrors.ErrMalformedCustomization) {
		t.Fatalf("expected MALFORMED_CUSTOMIZATION, got %v", err)
	}
}
