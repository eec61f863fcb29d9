package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ilweld/pkg/errors"
	"ilweld/pkg/paths"
	"ilweld/pkg/testutil"
)

var toolNames = []string{"ILMerge.exe", "ILRepack.exe"}

// quiet makes the environment-sensitive strategies miss deterministically
func quiet(t *testing.T) {
	t.Helper()
	t.Setenv(paths.EnvToolPath, "")
	t.Setenv(paths.EnvNuGetPackages, "/nowhere")
	t.Setenv("PATH", t.TempDir())
}

func TestExplicitStrategy(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/opt/ILMerge.exe", []byte("MZ"), 0755))

		path, found := explicitStrategy{}.Locate(Request{
			ExplicitPath: "/opt/ILMerge.exe",
			ToolNames:    toolNames,
			FS:           fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/opt/ILMerge.exe", path)
	})

	t.Run("miss when the path does not exist", func(t *testing.T) {
		_, found := explicitStrategy{}.Locate(Request{
			ExplicitPath: "/opt/ILMerge.exe",
			FS:           testutil.NewMemoryFS(),
		})

		assert.False(t, found)
	})

	t.Run("miss when unconfigured", func(t *testing.T) {
		_, found := explicitStrategy{}.Locate(Request{FS: testutil.NewMemoryFS()})

		assert.False(t, found)
	})

	t.Run("directories do not count", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.MkdirAll("/opt/ILMerge.exe", 0755))

		_, found := explicitStrategy{}.Locate(Request{
			ExplicitPath: "/opt/ILMerge.exe",
			FS:           fsys,
		})

		assert.False(t, found)
	})
}

func TestEnvStrategy(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/env/ILRepack.exe", []byte("MZ"), 0755))
		t.Setenv(paths.EnvToolPath, "/env/ILRepack.exe")

		path, found := envStrategy{}.Locate(Request{FS: fsys})

		assert.True(t, found)
		assert.Equal(t, "/env/ILRepack.exe", path)
	})

	t.Run("miss when unset", func(t *testing.T) {
		t.Setenv(paths.EnvToolPath, "")

		_, found := envStrategy{}.Locate(Request{FS: testutil.NewMemoryFS()})

		assert.False(t, found)
	})
}

func TestParentWalkStrategy(t *testing.T) {
	t.Run("finds a tools folder up the tree", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/sln/tools/ILMerge.exe", []byte("MZ"), 0755))

		path, found := parentWalkStrategy{}.Locate(Request{
			WorkDir:   "/sln/proj/bin/Release",
			ToolNames: toolNames,
			FS:        fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/sln/tools/ILMerge.exe", path)
	})

	t.Run("finds a dotted tools folder", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/sln/.tools/ILRepack.exe", []byte("MZ"), 0755))

		path, found := parentWalkStrategy{}.Locate(Request{
			WorkDir:   "/sln/proj",
			ToolNames: toolNames,
			FS:        fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/sln/.tools/ILRepack.exe", path)
	})

	t.Run("probes a packages folder like nuget", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile(
			"/sln/packages/ILMerge.3.0.41/tools/ILMerge.exe", []byte("MZ"), 0755))

		path, found := parentWalkStrategy{}.Locate(Request{
			WorkDir:   "/sln/proj/bin",
			ToolNames: toolNames,
			FS:        fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/sln/packages/ILMerge.3.0.41/tools/ILMerge.exe", path)
	})

	t.Run("walk depth is bounded", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/a/tools/ILMerge.exe", []byte("MZ"), 0755))

		_, found := parentWalkStrategy{}.Locate(Request{
			WorkDir:   "/a/b/c/d/e/f/g/h/i",
			ToolNames: toolNames,
			FS:        fsys,
		})

		assert.False(t, found)
	})
}

func TestPackagesRootStrategy(t *testing.T) {
	t.Run("newest version wins", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILRepack.2.0.5/tools/ILRepack.exe", []byte("MZ"), 0755))
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILRepack.2.0.18/tools/ILRepack.exe", []byte("MZ"), 0755))

		path, found := packagesRootStrategy{}.Locate(Request{
			WorkDir:      "/proj",
			PackagesRoot: "/pkgs",
			ToolNames:    toolNames,
			FS:           fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/pkgs/ILRepack.2.0.18/tools/ILRepack.exe", path)
	})

	t.Run("packages.config pins the version", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILRepack.2.0.5/tools/ILRepack.exe", []byte("MZ"), 0755))
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILRepack.2.0.18/tools/ILRepack.exe", []byte("MZ"), 0755))
		require.NoError(t, fsys.WriteFile("/proj/packages.config", []byte(
			`<?xml version="1.0" encoding="utf-8"?>
<packages>
  <package id="ILRepack" version="2.0.5" targetFramework="net48" />
</packages>`), 0644))

		path, found := packagesRootStrategy{}.Locate(Request{
			WorkDir:      "/proj",
			PackagesRoot: "/pkgs",
			ToolNames:    toolNames,
			FS:           fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/pkgs/ILRepack.2.0.5/tools/ILRepack.exe", path)
	})

	t.Run("first tool name wins over later ones", func(t *testing.T) {
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILMerge.3.0.41/tools/ILMerge.exe", []byte("MZ"), 0755))
		require.NoError(t, fsys.WriteFile(
			"/pkgs/ILRepack.2.0.18/tools/ILRepack.exe", []byte("MZ"), 0755))

		path, found := packagesRootStrategy{}.Locate(Request{
			WorkDir:      "/proj",
			PackagesRoot: "/pkgs",
			ToolNames:    toolNames,
			FS:           fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/pkgs/ILMerge.3.0.41/tools/ILMerge.exe", path)
	})

	t.Run("miss without a configured root", func(t *testing.T) {
		_, found := packagesRootStrategy{}.Locate(Request{
			WorkDir:   "/proj",
			ToolNames: toolNames,
			FS:        testutil.NewMemoryFS(),
		})

		assert.False(t, found)
	})
}

func TestNuGetCacheStrategy(t *testing.T) {
	t.Run("hit with newest version", func(t *testing.T) {
		t.Setenv(paths.EnvNuGetPackages, "/cache")
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile(
			"/cache/ilrepack/2.0.5/tools/ILRepack.exe", []byte("MZ"), 0755))
		require.NoError(t, fsys.WriteFile(
			"/cache/ilrepack/2.0.18/tools/ILRepack.exe", []byte("MZ"), 0755))

		path, found := nugetCacheStrategy{}.Locate(Request{
			ToolNames: toolNames,
			FS:        fsys,
		})

		assert.True(t, found)
		assert.Equal(t, "/cache/ilrepack/2.0.18/tools/ILRepack.exe", path)
	})

	t.Run("miss on an empty cache", func(t *testing.T) {
		t.Setenv(paths.EnvNuGetPackages, "/cache")

		_, found := nugetCacheStrategy{}.Locate(Request{
			ToolNames: toolNames,
			FS:        testutil.NewMemoryFS(),
		})

		assert.False(t, found)
	})
}

func TestPathStrategy(t *testing.T) {
	t.Run("finds the lowercased bare name on PATH", func(t *testing.T) {
		dir := t.TempDir()
		bin := filepath.Join(dir, "ilmerge")
		require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))
		t.Setenv("PATH", dir)

		path, found := pathStrategy{}.Locate(Request{ToolNames: toolNames})

		assert.True(t, found)
		assert.Equal(t, bin, path)
	})

	t.Run("miss on an empty PATH", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		_, found := pathStrategy{}.Locate(Request{ToolNames: toolNames})

		assert.False(t, found)
	})
}

func TestLocatorRun(t *testing.T) {
	t.Run("first hit wins and stops the chain", func(t *testing.T) {
		quiet(t)
		fsys := testutil.NewMemoryFS()
		require.NoError(t, fsys.WriteFile("/opt/ILMerge.exe", []byte("MZ"), 0755))

		outcome, err := New().Run(Request{
			WorkDir:      "/proj",
			ExplicitPath: "/opt/ILMerge.exe",
			ToolNames:    toolNames,
			FS:           fsys,
		})
		require.NoError(t, err)

		assert.True(t, outcome.Found)
		assert.Equal(t, "/opt/ILMerge.exe", outcome.Path)
		assert.Equal(t, strategyExplicit, outcome.Strategy)
		assert.Len(t, outcome.Probes, 1)
	})

	t.Run("configured but missing explicit path is a hard error", func(t *testing.T) {
		quiet(t)

		_, err := New().Run(Request{
			WorkDir:      "/proj",
			ExplicitPath: "/opt/ILMerge.exe",
			ToolNames:    toolNames,
			FS:           testutil.NewMemoryFS(),
		})

		assert.True(t, errors.IsErrorCode(err, errors.ErrToolNotFound))
	})

	t.Run("nothing found reports the whole trail", func(t *testing.T) {
		quiet(t)

		outcome, err := New().Run(Request{
			WorkDir:   "/proj",
			ToolNames: toolNames,
			FS:        testutil.NewMemoryFS(),
		})
		require.NoError(t, err)

		assert.False(t, outcome.Found)
		assert.Len(t, outcome.Probes, 6)
	})

	t.Run("Locate turns a miss into a coded error", func(t *testing.T) {
		quiet(t)

		_, err := New().Locate(Request{
			WorkDir:   "/proj",
			ToolNames: toolNames,
			FS:        testutil.NewMemoryFS(),
		})

		assert.True(t, errors.IsErrorCode(err, errors.ErrToolNotFound))
	})
}
