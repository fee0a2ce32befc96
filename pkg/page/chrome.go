package page

import (
	"strings"

	"github.com/goliatone/go-sitegen/pkg/html"
)

const (
	googleFontsOrigin = "https://fonts.googleapis.com"
	googleFontsStatic = "https://fonts.gstatic.com"
)

func (t *Template) head(p Page, css string) string {
	title := t.documentTitle(p)
	return html.Head(html.Func(func() string {
		return html.Join(
			html.Meta(html.None(), html.Charset("utf-8")),
			html.Meta(html.None(), html.Name("viewport"), html.ContentAttr("width=device-width, initial-scale=1")),
			html.Title(html.Text(html.Escape(title))),
			html.Meta(html.None(), html.Name("description"), html.ContentAttr(t.site.Description)),
			html.Meta(html.None(), html.Property("og:title"), html.ContentAttr(title)),
			html.Meta(html.None(), html.Property("og:type"), html.ContentAttr("website")),
			html.Meta(html.None(), html.Property("og:url"), html.ContentAttr(t.canonicalURL(p.Path))),
			html.Meta(html.None(), html.Property("og:description"), html.ContentAttr(t.site.Description)),
			html.Meta(html.None(), html.Property("og:site_name"), html.ContentAttr(t.site.Name)),
			html.Link(html.None(), html.Rel("icon"), html.Href(t.assetURL(AssetFavicon, DefaultFavicon))),
			html.Link(html.None(), html.Rel("preconnect"), html.Href(googleFontsOrigin)),
			html.Link(html.None(), html.Rel("preconnect"), html.Href(googleFontsStatic), html.Bool("crossorigin", true)),
			t.fontLink(),
			html.Style(html.Text(css)),
		)
	}))
}

func (t *Template) fontLink() string {
	if t.site.FontURL == "" {
		return ""
	}
	return html.Link(html.None(), html.Href(t.site.FontURL), html.Rel("stylesheet"))
}

func (t *Template) header() string {
	return html.Header(html.Func(func() string {
		banner := html.A(html.Func(func() string {
			return html.Img(html.None(), html.Src(t.assetURL(AssetLogo, "/assets/logo.svg")), html.Alt(t.site.Name)) +
				html.Span(html.Text(html.Escape(t.site.Name)))
		}), html.Href("/"), html.Class("banner"))

		nav := html.Nav(html.Func(func() string {
			var b strings.Builder
			for _, link := range t.site.Nav {
				b.WriteString(html.A(html.Text(html.Escape(link.Label)), html.Href(link.Href)))
			}
			return b.String()
		}))

		return banner + nav
	}))
}

func (t *Template) footer(p Page) string {
	image := p.FooterImage
	if image == "" {
		image = t.assetURL(AssetFooter, DefaultFooterImage)
	}
	return html.Footer(html.Func(func() string {
		return html.Img(html.None(), html.Src(image), html.Alt("")) +
			html.P(html.Text(html.Escape(t.site.Attribution))) +
			t.repositoryLink()
	}))
}

func (t *Template) repositoryLink() string {
	if strings.TrimSpace(t.site.Repository) == "" {
		return ""
	}
	return html.P(html.Func(func() string {
		return html.A(html.Text("Source"), html.Href(t.site.Repository), html.Class("repository"))
	}))
}

func (t *Template) documentTitle(p Page) string {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return t.site.Name
	}
	if t.site.Name == "" {
		return title
	}
	return t.site.Name + " - " + title
}

func (t *Template) canonicalURL(pagePath string) string {
	base := strings.TrimRight(t.site.BaseURL, "/")
	if pagePath == "" {
		pagePath = "/"
	}
	return base + pagePath
}

func (t *Template) assetURL(key, fallback string) string {
	if t.theme == nil || t.theme.AssetURL == nil {
		return fallback
	}
	if resolved := t.theme.AssetURL(key); resolved != "" {
		return resolved
	}
	return fallback
}
