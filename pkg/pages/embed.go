package pages

import (
	"embed"
	"io/fs"
)

//go:embed content/*
var embeddedContent embed.FS

const (
	CommandsFile  = "commands.yaml"
	ChangelogFile = "CHANGELOG.md"
)

// ContentFS exposes the embedded page sources (command tables, changelog).
func ContentFS() fs.FS {
	sub, err := fs.Sub(embeddedContent, "content")
	if err != nil {
		return embeddedContent
	}
	return sub
}
