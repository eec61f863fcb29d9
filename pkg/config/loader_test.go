package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ilweld/pkg/errors"
	"ilweld/pkg/paths"
)

// isolate keeps the user config layer out of the way
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
}

func TestDefault(t *testing.T) {
	s := Default()

	assert.Equal(t, "ilmerge", s.Tool.Name)
	assert.Empty(t, s.Tool.Path)
	assert.Equal(t, []string{"ILMerge.exe", "ILRepack.exe"}, s.Tool.Names)
	assert.Equal(t, "ILMergeOrder.txt", s.Order.File)
	assert.True(t, s.Order.Record)
	assert.Equal(t, "dll", s.Merge.Target)
	assert.True(t, s.Merge.DebugInfo)
	assert.False(t, s.Merge.Internalize)
}

func TestLoad(t *testing.T) {
	t.Run("no config files yields the defaults", func(t *testing.T) {
		isolate(t)
		s, err := LoadFromDir(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, Default(), s)
	})

	t.Run("project config overrides defaults", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeConfig(t, dir, "ilweld.toml", `
[tool]
name = "ilrepack"

[packages]
root = "/proj/packages"
`)

		s, err := LoadFromDir(dir)
		require.NoError(t, err)

		assert.Equal(t, "ilrepack", s.Tool.Name)
		assert.Equal(t, "/proj/packages", s.Packages.Root)
		// Untouched keys keep their defaults
		assert.Equal(t, "ILMergeOrder.txt", s.Order.File)
	})

	t.Run("hidden project config wins over the plain one", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeConfig(t, dir, ".ilweld.toml", "[tool]\nname = \"ilrepack\"\n")
		writeConfig(t, dir, "ilweld.toml", "[tool]\nname = \"ilmerge\"\n")

		s, err := LoadFromDir(dir)
		require.NoError(t, err)

		assert.Equal(t, "ilrepack", s.Tool.Name)
	})

	t.Run("yaml project config", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeConfig(t, dir, ".ilweld.yaml", "tool:\n  name: ilrepack\norder:\n  record: false\n")

		s, err := LoadFromDir(dir)
		require.NoError(t, err)

		assert.Equal(t, "ilrepack", s.Tool.Name)
		assert.False(t, s.Order.Record)
	})

	t.Run("user config layers under the project config", func(t *testing.T) {
		userDir := t.TempDir()
		t.Setenv(paths.EnvConfigDir, userDir)
		writeConfig(t, userDir, paths.ConfigFileName, `
[tool]
name = "ilrepack"

[order]
file = "UserOrder.txt"
`)

		workDir := t.TempDir()
		writeConfig(t, workDir, "ilweld.toml", "[order]\nfile = \"ProjectOrder.txt\"\n")

		s, err := LoadFromDir(workDir)
		require.NoError(t, err)

		// Project wins where both speak, user fills the rest
		assert.Equal(t, "ProjectOrder.txt", s.Order.File)
		assert.Equal(t, "ilrepack", s.Tool.Name)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeConfig(t, dir, "ilweld.toml", "[tool]\nname = \"ilmerge\"\n")

		t.Setenv("ILWELD_TOOL_NAME", "ilrepack")
		t.Setenv("ILWELD_MERGE_ALLOW_DUP", "true")

		s, err := LoadFromDir(dir)
		require.NoError(t, err)

		assert.Equal(t, "ilrepack", s.Tool.Name)
		assert.True(t, s.Merge.AllowDup)
	})

	t.Run("invalid project config reports a parse error", func(t *testing.T) {
		isolate(t)
		dir := t.TempDir()
		writeConfig(t, dir, "ilweld.toml", "[tool\nname = broken")

		_, err := LoadFromDir(dir)

		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}
