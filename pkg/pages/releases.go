package pages

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/goliatone/go-sitegen/pkg/html"
	"github.com/goliatone/go-sitegen/pkg/page"
)

// ReleaseNotesPath is the canonical path of the changelog page.
const ReleaseNotesPath = "/releases.html"

// ReleaseNotesFooter replaces the shared footer image on the changelog page.
const ReleaseNotesFooter = "/assets/changelog.svg"

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var (
	notesPolicyOnce sync.Once
	notesPolicy     *bluemonday.Policy
)

func notesSanitizer() *bluemonday.Policy {
	notesPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "pre")
		notesPolicy = policy
	})
	return notesPolicy
}

// RenderMarkdown converts GitHub flavoured markdown to sanitized HTML.
func RenderMarkdown(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("pages: convert markdown: %w", err)
	}
	return notesSanitizer().Sanitize(buf.String()), nil
}

// ReleaseNotes returns the changelog page rendered from the embedded
// CHANGELOG.md.
func ReleaseNotes() (page.Page, error) {
	return ReleaseNotesFrom(ContentFS(), ChangelogFile)
}

// ReleaseNotesFrom renders the changelog stored at name in fsys.
func ReleaseNotesFrom(fsys fs.FS, name string) (page.Page, error) {
	source, err := fs.ReadFile(fsys, name)
	if err != nil {
		return page.Page{}, fmt.Errorf("pages: read %s: %w", name, err)
	}
	notes, err := RenderMarkdown(source)
	if err != nil {
		return page.Page{}, err
	}

	return page.Page{
		Title:       "Release Notes",
		Path:        ReleaseNotesPath,
		ExtraCSS:    ".release-notes h2{border-bottom:1px solid var(--code-background);padding-bottom:.25rem}\n",
		FooterImage: ReleaseNotesFooter,
		Content: func() string {
			return html.Main(html.Func(func() string {
				return html.H1(html.Text("Release Notes")) +
					html.Div(html.Text(notes), html.Class("release-notes"))
			}))
		},
	}, nil
}
