// Package mergetool invokes the external assembly-merging executable.
//
// The tool itself (ILMerge, ILRepack) is a black box: this package builds
// its command line from an Options struct and an ordered input list, runs
// the binary, and reports the exit code plus whether the merged output
// lost its strong-name signature. Flavors are registered by name in a
// process-wide registry so the CLI can select one with --tool.
package mergetool
