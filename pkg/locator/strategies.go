package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"ilweld/pkg/paths"
	"ilweld/pkg/types"
)

// Strategy names, also the identifiers in the probe trail.
const (
	strategyExplicit     = "explicit"
	strategyEnv          = "env"
	strategyParentWalk   = "parent-walk"
	strategyPackagesRoot = "packages-root"
	strategyNuGetCache   = "nuget-cache"
	strategyPath         = "path"
)

// maxParentDepth bounds the upward walk from the working directory.
const maxParentDepth = 6

// wellKnownSubdirs are the folder names checked at every level of the
// parent walk.
var wellKnownSubdirs = []string{"tools", ".tools", "packages"}

// explicitStrategy uses the tool path from config or flag.
type explicitStrategy struct{}

func (explicitStrategy) Name() string { return strategyExplicit }

func (explicitStrategy) Locate(req Request) (string, bool) {
	if req.ExplicitPath == "" {
		return "", false
	}
	path := paths.ExpandHome(req.ExplicitPath)
	if isFile(req.FS, path) {
		return path, true
	}
	return "", false
}

// envStrategy reads the tool path from ILWELD_TOOL_PATH.
type envStrategy struct{}

func (envStrategy) Name() string { return strategyEnv }

func (envStrategy) Locate(req Request) (string, bool) {
	value := os.Getenv(paths.EnvToolPath)
	if value == "" {
		return "", false
	}
	path := paths.ExpandHome(value)
	if isFile(req.FS, path) {
		return path, true
	}
	return "", false
}

// parentWalkStrategy climbs from the working directory checking
// well-known subfolders at every level. A "packages" folder found this
// way is probed like a NuGet packages directory.
type parentWalkStrategy struct{}

func (parentWalkStrategy) Name() string { return strategyParentWalk }

func (parentWalkStrategy) Locate(req Request) (string, bool) {
	if req.WorkDir == "" {
		return "", false
	}

	pinned := PinnedVersions(req.FS, req.WorkDir)

	dir := req.WorkDir
	for depth := 0; depth <= maxParentDepth; depth++ {
		for _, sub := range wellKnownSubdirs {
			base := filepath.Join(dir, sub)
			if sub == "packages" {
				if path, ok := probePackagesDir(req.FS, base, req.ToolNames, pinned); ok {
					return path, true
				}
				continue
			}
			if path, ok := probeToolsDir(req.FS, base, req.ToolNames); ok {
				return path, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false
}

// packagesRootStrategy probes the configured NuGet packages directory.
type packagesRootStrategy struct{}

func (packagesRootStrategy) Name() string { return strategyPackagesRoot }

func (packagesRootStrategy) Locate(req Request) (string, bool) {
	if req.PackagesRoot == "" {
		return "", false
	}
	pinned := PinnedVersions(req.FS, req.WorkDir)
	return probePackagesDir(req.FS, paths.ExpandHome(req.PackagesRoot), req.ToolNames, pinned)
}

// nugetCacheStrategy probes the user-level NuGet cache, which lays
// packages out as <cache>/<id lowercase>/<version>/tools.
type nugetCacheStrategy struct{}

func (nugetCacheStrategy) Name() string { return strategyNuGetCache }

func (nugetCacheStrategy) Locate(req Request) (string, bool) {
	cache := paths.NuGetCacheDir()
	if cache == "" {
		return "", false
	}

	for _, name := range req.ToolNames {
		id := strings.ToLower(toolID(name))
		root := filepath.Join(cache, id)

		entries, err := req.FS.ReadDir(root)
		if err != nil {
			continue
		}

		best := ""
		bestPath := ""
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			candidate := filepath.Join(root, entry.Name(), "tools", name)
			if !isFile(req.FS, candidate) {
				continue
			}
			if best == "" || compareVersions(entry.Name(), best) > 0 {
				best = entry.Name()
				bestPath = candidate
			}
		}
		if bestPath != "" {
			return bestPath, true
		}
	}

	return "", false
}

// pathStrategy falls back to PATH lookup, trying the names as given and
// their lowercased, extension-free forms (distro packages install
// "ilrepack" rather than "ILRepack.exe").
type pathStrategy struct{}

func (pathStrategy) Name() string { return strategyPath }

func (pathStrategy) Locate(req Request) (string, bool) {
	var candidates []string
	for _, name := range req.ToolNames {
		candidates = append(candidates, name)
		if bare := strings.ToLower(toolID(name)); bare != name {
			candidates = append(candidates, bare)
		}
	}

	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, true
		}
	}
	return "", false
}

// probeToolsDir checks dir for the tool executables directly.
func probeToolsDir(fsys types.FS, dir string, names []string) (string, bool) {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if isFile(fsys, candidate) {
			return candidate, true
		}
	}
	return "", false
}

// probePackagesDir checks a classic NuGet packages directory, laid out
// as <root>/<id>.<version>/tools. A version pinned in packages.config
// wins; otherwise the newest versioned folder containing the tool does.
func probePackagesDir(fsys types.FS, root string, names []string, pinned map[string]string) (string, bool) {
	for _, name := range names {
		id := toolID(name)

		if version := pinned[strings.ToLower(id)]; version != "" {
			candidate := filepath.Join(root, id+"."+version, "tools", name)
			if isFile(fsys, candidate) {
				return candidate, true
			}
		}

		entries, err := fsys.ReadDir(root)
		if err != nil {
			continue
		}

		prefix := strings.ToLower(id) + "."
		best := ""
		bestPath := ""
		for _, entry := range entries {
			if !entry.IsDir() || !strings.HasPrefix(strings.ToLower(entry.Name()), prefix) {
				continue
			}
			version := entry.Name()[len(prefix):]
			candidate := filepath.Join(root, entry.Name(), "tools", name)
			if !isFile(fsys, candidate) {
				continue
			}
			if best == "" || compareVersions(version, best) > 0 {
				best = version
				bestPath = candidate
			}
		}
		if bestPath != "" {
			return bestPath, true
		}
	}

	return "", false
}

// toolID strips the executable extension: ILMerge.exe -> ILMerge.
func toolID(name string) string {
	return strings.TrimSuffix(strings.TrimSuffix(name, ".exe"), ".EXE")
}

// isFile reports whether path exists and is a regular file.
func isFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
