package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deepcopy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultMarkers(), c.Markers)
	assert.Equal(t, []string{"slice"}, c.Kinds[KindGrowableList])
	assert.Contains(t, c.Immutable, "time.Time")
	assert.Zero(t, c.Workers)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
markers:
  enhance: copy:gen
kinds:
  fixedList:
    - example.com/m/model.ReadOnlyIDs
  growableList:
    - slice
    - example.com/m/model.Bag
immutable:
  - example.com/m/model.Money
registered:
  - example.com/ext.Thing
workers: 3
outputDir: out
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "copy:gen", c.Markers.Enhance)
	assert.Equal(t, "deepcopy:registered", c.Markers.Registered, "unset marker keeps default")
	assert.Equal(t, []string{"example.com/m/model.ReadOnlyIDs"}, c.Kinds[KindFixedList])
	assert.Equal(t, []string{"slice", "example.com/m/model.Bag"}, c.Kinds[KindGrowableList])
	assert.Contains(t, c.Immutable, "time.Time")
	assert.Contains(t, c.Immutable, "example.com/m/model.Money")
	assert.Equal(t, []string{"example.com/ext.Thing"}, c.Registered)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, "out", c.OutputDir)
}

func TestLoad_RejectsUnknownKind(t *testing.T) {
	path := writeConfig(t, "kinds:\n  linkedList: [example.com/x.L]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linkedList")
}

func TestLoad_RejectsNegativeWorkers(t *testing.T) {
	_, err := Load(writeConfig(t, "workers: -1\n"))
	require.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "kinds: [unterminated\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing YAML config")
}
