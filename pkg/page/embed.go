package page

import (
	"embed"
	"io/fs"
)

//go:embed assets/*
var embeddedAssets embed.FS

const (
	BaseStylesheetName = "base.css"

	// DefaultFooterImage is the footer image used when a page sets none and
	// no theme is configured.
	DefaultFooterImage = "/assets/footer.svg"

	// DefaultFavicon is linked when no theme provides a favicon.
	DefaultFavicon = "/assets/favicon.svg"
)

// AssetsFS exposes the embedded site assets (base stylesheet, logo, favicon,
// footer images) so callers can copy them next to the generated pages.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}
