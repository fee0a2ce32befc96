package pages

import (
	"path"
	"strings"
	"sync"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
	"github.com/goliatone/go-sitegen/pkg/page"
)

// Registry stores pages by canonical path and keeps registration order, which
// is the order pages are generated and listed in the sitemap.
type Registry struct {
	mu    sync.RWMutex
	pages map[string]page.Page
	order []string
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		pages: make(map[string]page.Page),
	}
}

// Register adds p under its normalized path. Duplicate paths return a
// DUPLICATE_PAGE error.
func (r *Registry) Register(p page.Page) error {
	key := NormalizePath(p.Path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.pages[key]; exists {
		return siteerrors.Newf(siteerrors.ErrDuplicatePage, "page %q already registered", key).
			WithDetail("path", key)
	}

	r.pages[key] = p
	r.order = append(r.order, key)
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(p page.Page) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Get retrieves a page by path.
func (r *Registry) Get(pagePath string) (page.Page, error) {
	key := NormalizePath(pagePath)

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[key]
	if !ok {
		return page.Page{}, siteerrors.Newf(siteerrors.ErrInvalidInput, "page %q not found", key).
			WithDetail("path", key)
	}
	return p, nil
}

// Has reports whether a page is registered under pagePath.
func (r *Registry) Has(pagePath string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.pages[NormalizePath(pagePath)]
	return ok
}

// Paths returns the registered paths in registration order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.order...)
}

// Pages returns the registered pages in registration order.
func (r *Registry) Pages() []page.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]page.Page, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.pages[key])
	}
	return out
}

// Len returns the number of registered pages.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// Default returns the jless site: home, user guide and release notes.
func Default() (*Registry, error) {
	guide, err := UserGuide()
	if err != nil {
		return nil, err
	}
	notes, err := ReleaseNotes()
	if err != nil {
		return nil, err
	}

	registry := NewRegistry()
	for _, p := range []page.Page{Home(), guide, notes} {
		if err := registry.Register(p); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// NormalizePath maps the empty path to "/" and ensures a leading slash.
func NormalizePath(pagePath string) string {
	pagePath = strings.TrimSpace(pagePath)
	if pagePath == "" {
		return "/"
	}
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}
	return pagePath
}

// OutputName returns the slash separated file name a page path is written
// to, relative to the output directory:
//
//	""            -> index.html
//	"/"           -> index.html
//	"/user-guide" -> user-guide.html
//	"/docs/"      -> docs/index.html
func OutputName(pagePath string) string {
	clean := strings.TrimPrefix(NormalizePath(pagePath), "/")
	if clean == "" || strings.HasSuffix(clean, "/") {
		return clean + "index.html"
	}
	clean = path.Clean(clean)
	if path.Ext(clean) == "" {
		clean += ".html"
	}
	return clean
}
