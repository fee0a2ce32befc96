package testsupport

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sitegen/pkg/page"
)

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadFile returns the content of a generated file.
func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// CountingFS wraps an fs.FS and counts Open calls so tests can assert how
// often a file was read.
type CountingFS struct {
	FS    fs.FS
	opens atomic.Int64
}

func (c *CountingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.FS.Open(name)
}

// Opens returns the number of Open calls so far.
func (c *CountingFS) Opens() int {
	return int(c.opens.Load())
}

// StylesheetFS returns an in-memory filesystem holding css under name.
func StylesheetFS(name, css string) fstest.MapFS {
	return fstest.MapFS{name: {Data: []byte(css)}}
}

// Stylesheet returns a read-once stylesheet backed by css.
func Stylesheet(css string) *page.Stylesheet {
	return page.NewStylesheet(StylesheetFS("style.css", css), "style.css")
}

// TestSite returns small, stable chrome for template assertions.
func TestSite() page.Site {
	return page.Site{
		Name:        "demo",
		BaseURL:     "https://example.com",
		Description: "d",
		Attribution: "a",
		Nav: []page.NavLink{
			{Label: "Home", Href: "/"},
		},
	}
}
