package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScene(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultSceneMatchesPage(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Len(t, c.Sections, 5)
	assert.Equal(t, "dots", c.Sections[0].Variant)
	assert.Equal(t, "high", c.Sections[0].Density)
	assert.Equal(t, "waves", c.Sections[3].Variant)
	assert.Equal(t, 8, c.Shapes.Count)
}

func TestParseScene(t *testing.T) {
	path := writeScene(t, `
seed = 99
fps = 30

[shapes]
variant = "bubbles"
count = 4

[[section]]
name = "hero"
variant = "grid"
color = "purple"
opacity = 0.4

[[section]]
name = "contact"
variant = "waves"
`)
	c, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, 30, c.FPS)
	assert.Equal(t, "bubbles", c.Shapes.Variant)
	require.Len(t, c.Sections, 2)
	assert.Equal(t, "purple", c.Sections[0].Color)
	assert.Equal(t, 0.4, c.Sections[0].Opacity)
	assert.Equal(t, 1.0, c.Sections[1].Opacity)
}

func TestBundledPageScene(t *testing.T) {
	c, err := Parse(filepath.Join("..", "..", "scenes", "page.toml"))
	require.NoError(t, err)
	require.Len(t, c.Sections, 5)
	assert.Equal(t, Default().Sections, c.Sections)
	assert.Equal(t, "mixed", c.Shapes.Variant)
}

func TestParseWithoutSectionsKeepsDefaults(t *testing.T) {
	c, err := Parse(writeScene(t, "fps = 24\n"))
	require.NoError(t, err)
	assert.Equal(t, 24, c.FPS)
	assert.Len(t, c.Sections, len(Default().Sections))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Parse(writeScene(t, "fps = \"fast\"\n"))
	assert.ErrorContains(t, err, "decode scene")

	_, err = Parse(writeScene(t, "fps = 0\n"))
	assert.ErrorContains(t, err, "fps 0")

	_, err = Parse(writeScene(t, "[[section]]\nvariant = \"dots\"\n"))
	assert.ErrorContains(t, err, "has no name")

	_, err = Parse(writeScene(t, "[[section]]\nname = \"x\"\nopacity = 1.5\n"))
	assert.ErrorContains(t, err, "opacity")
}

func TestLoadAppliesEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeScene(t, "fps = 50\n")
	t.Setenv(EnvScene, path)
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvPort, "9090")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 50, c.FPS)
	assert.Equal(t, int64(1234), c.Seed)
	assert.Equal(t, "9090", c.Port)

	t.Setenv(EnvFPS, "soon")
	_, err = Load()
	assert.ErrorContains(t, err, EnvFPS)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(EnvSeed, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BACKDROP_FPS=15\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(EnvFPS) })

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 15, c.FPS)
}

