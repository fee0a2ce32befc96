package sitegen

import (
	"io/fs"

	"github.com/goliatone/go-sitegen/pkg/page"
	"github.com/goliatone/go-sitegen/pkg/pages"
)

// AssetsFS exposes the embedded static assets (base stylesheet, logo, favicon
// and footer images) so Go applications can serve them directly.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(sitegen.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return page.AssetsFS()
}

// ContentFS exposes the embedded page sources: the keyboard command table and
// the changelog.
func ContentFS() fs.FS {
	return pages.ContentFS()
}
