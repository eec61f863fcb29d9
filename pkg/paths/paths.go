// Package paths provides centralized path handling for ilweld.
// It implements XDG Base Directory compliance for ilweld's own files and
// the path predicates the input partitioning and tool discovery need.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"ilweld/pkg/errors"
)

// Environment variable names
const (
	// EnvToolPath points directly at the merge tool executable
	EnvToolPath = "ILWELD_TOOL_PATH"

	// EnvConfigDir overrides the XDG config directory for ilweld
	EnvConfigDir = "ILWELD_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for ilweld
	EnvCacheDir = "ILWELD_CACHE_DIR"

	// EnvNuGetPackages is NuGet's own override for its user-level
	// package cache; honored when probing for the tool
	EnvNuGetPackages = "NUGET_PACKAGES"
)

// Well-known file and directory names
const (
	// AppDirName is the directory name for ilweld-specific files
	AppDirName = "ilweld"

	// ConfigFileName is the project configuration file name
	ConfigFileName = "ilweld.toml"

	// HiddenConfigFileName is the dotted variant of the project config
	HiddenConfigFileName = ".ilweld.toml"

	// OrderFileName is the default merge-order directive file name
	OrderFileName = "ILMergeOrder.txt"

	// RecordExt is the extension of the informational order record
	// written next to the primary assembly
	RecordExt = ".mergeorder"

	// LogFileName is the name of the log file
	LogFileName = "ilweld.log"
)

// Paths provides centralized path management for ilweld
type Paths struct {
	workDir   string
	xdgConfig string
	xdgCache  string
	xdgState  string
}

// New creates a new Paths instance rooted at the given working directory.
// An empty workDir resolves to the current directory.
func New(workDir string) (*Paths, error) {
	p := &Paths{}

	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
		}
		p.workDir = cwd
	} else {
		abs, err := NormalizePath(workDir)
		if err != nil {
			return nil, err
		}
		p.workDir = abs
	}

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *Paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = ExpandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, AppDirName)
	}

	// XDG doesn't provide StateHome in older adrg/xdg releases, so we
	// check the variable manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	}
}

// WorkDir returns the working directory merges run from
func (p *Paths) WorkDir() string {
	return p.workDir
}

// ConfigDir returns the XDG config directory for ilweld
func (p *Paths) ConfigDir() string {
	return p.xdgConfig
}

// CacheDir returns the XDG cache directory for ilweld
func (p *Paths) CacheDir() string {
	return p.xdgCache
}

// StateDir returns the XDG state directory for ilweld
func (p *Paths) StateDir() string {
	return p.xdgState
}

// UserConfigPath returns the user-level configuration file path
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// LogFilePath returns the path of the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// NuGetCacheDir returns the user-level NuGet package cache, honoring
// the NUGET_PACKAGES override
func NuGetCacheDir() string {
	if dir := os.Getenv(EnvNuGetPackages); dir != "" {
		return ExpandHome(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nuget", "packages")
}

// ExpandHome expands a leading ~ in paths
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// NormalizePath expands ~, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded := ExpandHome(path)

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// IsUnder reports whether path is rooted under root. The test is
// case-insensitive and separator-aware: "C:\pkg" contains "c:\PKG\a.dll"
// but not "C:\pkgother\a.dll". Both arguments must already be absolute.
func IsUnder(root, path string) bool {
	if root == "" {
		return false
	}

	rel, err := filepath.Rel(fold(root), fold(path))
	if err != nil {
		return false
	}

	// If the relative path starts with .., it's outside the root
	return rel == "." || !strings.HasPrefix(rel, "..")
}

// ReplaceExt swaps the extension of path for ext (which must include
// the leading dot). A path without an extension gets ext appended.
func ReplaceExt(path, ext string) string {
	old := filepath.Ext(path)
	return path[:len(path)-len(old)] + ext
}

// fold lower-cases a path and normalizes its separators so prefix
// tests behave the same for Windows-style and native paths
func fold(path string) string {
	return strings.ToLower(filepath.ToSlash(path))
}
