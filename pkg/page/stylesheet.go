package page

import (
	"io/fs"
	"sync"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
)

// Stylesheet is the base stylesheet shared by every page of a generation run.
// It is read on the first Load and the result, text or error, is kept for the
// lifetime of the value. A Stylesheet is safe for concurrent use.
type Stylesheet struct {
	fsys fs.FS
	name string

	once sync.Once
	css  string
	err  error
}

// NewStylesheet returns a stylesheet that reads name from fsys on first use.
func NewStylesheet(fsys fs.FS, name string) *Stylesheet {
	return &Stylesheet{fsys: fsys, name: name}
}

// EmbeddedStylesheet returns the base stylesheet compiled into the binary.
func EmbeddedStylesheet() *Stylesheet {
	return NewStylesheet(AssetsFS(), BaseStylesheetName)
}

// Name returns the path the stylesheet is read from.
func (s *Stylesheet) Name() string {
	return s.name
}

// Load returns the stylesheet contents, reading them at most once.
func (s *Stylesheet) Load() (string, error) {
	s.once.Do(func() {
		if s.fsys == nil {
			s.err = siteerrors.Newf(siteerrors.ErrResourceUnavailable, "stylesheet %s: no filesystem configured", s.name).
				WithDetail("path", s.name)
			return
		}
		data, err := fs.ReadFile(s.fsys, s.name)
		if err != nil {
			s.err = siteerrors.Wrapf(err, siteerrors.ErrResourceUnavailable, "read stylesheet %s", s.name).
				WithDetail("path", s.name)
			return
		}
		s.css = string(data)
	})
	return s.css, s.err
}
