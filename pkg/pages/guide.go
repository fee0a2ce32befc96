package pages

import (
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-sitegen/pkg/html"
	"github.com/goliatone/go-sitegen/pkg/page"
)

// UserGuidePath is the canonical path of the keyboard reference.
const UserGuidePath = "/user-guide.html"

// CommandSet is the decoded form of commands.yaml.
type CommandSet struct {
	Sections []CommandSection `yaml:"sections"`
}

type CommandSection struct {
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Commands    []Command `yaml:"commands"`
}

type Command struct {
	Keys   []string `yaml:"keys"`
	Action string   `yaml:"action"`
}

const guideCSS = `.commands{width:100%;border-collapse:collapse;margin-bottom:2rem}
.commands th,.commands td{text-align:left;padding:.35rem .5rem;border-bottom:1px solid var(--code-background)}
.commands td.keys{white-space:nowrap;width:30%}
kbd{padding:.1rem .35rem;border:1px solid var(--muted);border-radius:3px;background:var(--code-background)}
`

// LoadCommands decodes a command set from fsys.
func LoadCommands(fsys fs.FS, name string) (CommandSet, error) {
	var set CommandSet
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return set, fmt.Errorf("pages: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &set); err != nil {
		return set, fmt.Errorf("pages: parse %s: %w", name, err)
	}
	for i, section := range set.Sections {
		if strings.TrimSpace(section.Title) == "" {
			return set, fmt.Errorf("pages: %s: section %d has no title", name, i)
		}
	}
	return set, nil
}

// UserGuide returns the keyboard reference built from the embedded commands.
func UserGuide() (page.Page, error) {
	set, err := LoadCommands(ContentFS(), CommandsFile)
	if err != nil {
		return page.Page{}, err
	}
	return UserGuideFrom(set), nil
}

// UserGuideFrom renders set as one table per section.
func UserGuideFrom(set CommandSet) page.Page {
	return page.Page{
		Title:    "User Guide",
		Path:     UserGuidePath,
		ExtraCSS: guideCSS,
		Content: func() string {
			return html.Main(html.Func(func() string {
				var b strings.Builder
				b.WriteString(html.H1(html.Text("User Guide")))
				for _, section := range set.Sections {
					b.WriteString(renderSection(section))
				}
				return b.String()
			}))
		},
	}
}

func renderSection(section CommandSection) string {
	return html.Section(html.Func(func() string {
		out := html.H2(html.Text(html.Escape(section.Title)), html.ID(anchor(section.Title)))
		if section.Description != "" {
			out += html.P(html.Text(html.Escape(section.Description)))
		}
		return out + commandTable(section.Commands)
	}))
}

func commandTable(commands []Command) string {
	head := html.Thead(html.Func(func() string {
		return html.Tr(html.Func(func() string {
			return html.Th(html.Text("Keys")) + html.Th(html.Text("Action"))
		}))
	}))
	body := html.Tbody(html.Func(func() string {
		var b strings.Builder
		for _, cmd := range commands {
			b.WriteString(html.Tr(html.Func(func() string {
				return html.Td(html.Text(keyList(cmd.Keys)), html.Class("keys")) +
					html.Td(html.Text(html.Escape(cmd.Action)))
			})))
		}
		return b.String()
	}))
	return html.Table(html.Text(head+body), html.Class("commands"))
}

func keyList(keys []string) string {
	rendered := make([]string, 0, len(keys))
	for _, key := range keys {
		rendered = append(rendered, html.Kbd(html.Text(html.Escape(key))))
	}
	return strings.Join(rendered, " ")
}

func anchor(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
