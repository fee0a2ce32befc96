package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildCmd(t *testing.T) {
	out := filepath.Join(t.TempDir(), "public")
	configPath := writeConfig(t, "static_assets: false\n")

	stdout, err := execute(t, "--config", configPath, "build", "--out", out, "--no-sitemap")
	require.NoError(t, err)

	assert.Contains(t, stdout, "wrote "+filepath.Join(out, "index.html"))
	assert.Contains(t, stdout, "wrote "+filepath.Join(out, "user-guide.html"))
	assert.NotContains(t, stdout, "sitemap.xml")

	_, statErr := os.Stat(filepath.Join(out, "sitemap.xml"))
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(out, "releases.html"))
	assert.NoError(t, statErr)
}

func TestPagesCmd(t *testing.T) {
	configPath := writeConfig(t, "output_dir: dist\n")

	stdout, err := execute(t, "--config", configPath, "pages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "/ -> "+filepath.Join("dist", "index.html"), lines[0])
	assert.Equal(t, "/user-guide.html -> "+filepath.Join("dist", "user-guide.html"), lines[1])
}

func TestConfigCmd(t *testing.T) {
	configPath := writeConfig(t, "site:\n  name: demo\n")

	stdout, err := execute(t, "--config", configPath, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "name: demo")

	stdout, err = execute(t, "--config", configPath, "config", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[site]")

	_, err = execute(t, "--config", configPath, "config", "--format", "xml")
	assert.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	configPath := writeConfig(t, "output_dir: \"\"\n")

	_, err := execute(t, "--config", configPath, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_dir")
}

func TestVersionCmd(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sitegen version dev")
}
