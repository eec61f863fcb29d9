// Package assembly collects and groups the input assemblies for a
// merge: the primary assembly, the project files and the library files
// (the ones rooted under the configured packages directory).
package assembly

import (
	"path/filepath"

	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
	"ilweld/pkg/ordering"
	"ilweld/pkg/paths"
)

// Set is the grouped input list for one merge. The primary assembly is
// always emitted first and never reordered; the two remaining groups
// are planned independently and never mixed.
type Set struct {
	Primary string   `json:"primary" yaml:"primary"`
	Project []string `json:"project" yaml:"project"`
	Library []string `json:"library" yaml:"library"`
}

// Partition groups the raw input list. The first path becomes the
// primary; every other path becomes a library file when it is rooted
// under packagesRoot (case-insensitive, separator-aware) and a project
// file otherwise. With an empty packagesRoot everything lands in the
// project group. All paths are normalized to absolute form.
func Partition(inputs []string, packagesRoot string) (Set, error) {
	if len(inputs) == 0 {
		return Set{}, errors.New(errors.ErrNoInputs, "no input assemblies given")
	}

	root := ""
	if packagesRoot != "" {
		normalized, err := paths.NormalizePath(packagesRoot)
		if err != nil {
			return Set{}, err
		}
		root = normalized
	}

	var set Set
	for i, input := range inputs {
		path, err := paths.NormalizePath(input)
		if err != nil {
			return Set{}, errors.Wrapf(err, errors.ErrInvalidInput,
				"invalid input assembly %q", input)
		}

		switch {
		case i == 0:
			set.Primary = path
		case root != "" && paths.IsUnder(root, path):
			set.Library = append(set.Library, path)
		default:
			set.Project = append(set.Project, path)
		}
	}

	logger := logging.GetLogger("assembly")
	logger.Debug().
		Str("primary", set.Primary).
		Int("project", len(set.Project)).
		Int("library", len(set.Library)).
		Str("packagesRoot", root).
		Msg("Partitioned input assemblies")

	return set, nil
}

// Ordered applies the order directives to each group independently and
// returns primary + ordered project files + ordered library files.
func (s Set) Ordered(d ordering.Directives) []string {
	out := make([]string, 0, s.Count())
	if s.Primary != "" {
		out = append(out, s.Primary)
	}
	out = append(out, ordering.Plan(s.Project, d.High, d.Low)...)
	out = append(out, ordering.Plan(s.Library, d.High, d.Low)...)
	return out
}

// Count returns the total number of assemblies in the set.
func (s Set) Count() int {
	n := len(s.Project) + len(s.Library)
	if s.Primary != "" {
		n++
	}
	return n
}

// SearchDirs returns the distinct parent directories of every assembly
// in the set, in first-seen order. They become the merge tool's library
// search path.
func (s Set) SearchDirs() []string {
	seen := make(map[string]bool)
	var dirs []string

	add := func(path string) {
		if path == "" {
			return
		}
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	add(s.Primary)
	for _, p := range s.Project {
		add(p)
	}
	for _, p := range s.Library {
		add(p)
	}

	return dirs
}
