package mergetool

import (
	"ilweld/pkg/errors"
)

// TargetKind selects the kind of assembly the tool produces.
type TargetKind string

const (
	TargetExe    TargetKind = "exe"
	TargetDLL    TargetKind = "dll"
	TargetWinExe TargetKind = "winexe"
)

// ValidTargetKind reports whether s names a target kind the tool accepts.
// The empty string is valid and means "let the tool pick from the primary".
func ValidTargetKind(s string) bool {
	switch TargetKind(s) {
	case "", TargetExe, TargetDLL, TargetWinExe:
		return true
	}
	return false
}

// Options mirrors the switch surface shared by the ILMerge tool family.
// Zero values mean "omit the switch" except DebugInfo, where false emits
// /ndebug (the tools default to emitting debug info).
type Options struct {
	Out                string
	Target             TargetKind
	KeyFile            string
	DelaySign          bool
	LogFile            string
	Internalize        bool
	InternalizeExclude string
	Union              bool
	CopyAttributes     bool
	AllowDup           bool
	DebugInfo          bool
	XMLDocs            bool
	Closed             bool
	Wildcards          bool
	Platform           string
	Version            string
	ExtraArgs          []string
}

// Validate catches option combinations the tool would reject, before the
// subprocess is ever started.
func (o Options) Validate() error {
	if o.Out == "" {
		return errors.New(errors.ErrToolOptions, "an output path is required")
	}
	if !ValidTargetKind(string(o.Target)) {
		return errors.Newf(errors.ErrToolOptions,
			"invalid target kind %q (want exe, dll or winexe)", o.Target)
	}
	if o.DelaySign && o.KeyFile == "" {
		return errors.New(errors.ErrToolOptions, "delay signing requires a key file")
	}
	return nil
}

// BuildArgs renders the full tool command line: switches first, then one
// /lib: per search directory, then the inputs in their planned order with
// the primary assembly leading.
func BuildArgs(opts Options, inputs, searchDirs []string) []string {
	args := make([]string, 0, 8+len(searchDirs)+len(inputs))

	args = append(args, "/out:"+opts.Out)
	if opts.Target != "" {
		args = append(args, "/target:"+string(opts.Target))
	}
	if opts.KeyFile != "" {
		args = append(args, "/keyfile:"+opts.KeyFile)
	}
	if opts.DelaySign {
		args = append(args, "/delaysign")
	}
	switch {
	case opts.InternalizeExclude != "":
		// an exclude file implies internalizing
		args = append(args, "/internalize:"+opts.InternalizeExclude)
	case opts.Internalize:
		args = append(args, "/internalize")
	}
	if opts.Union {
		args = append(args, "/union")
	}
	if opts.CopyAttributes {
		args = append(args, "/copyattrs")
	}
	if opts.AllowDup {
		args = append(args, "/allowDup")
	}
	if opts.Closed {
		args = append(args, "/closed")
	}
	if opts.Wildcards {
		args = append(args, "/wildcards")
	}
	if opts.XMLDocs {
		args = append(args, "/xmldocs")
	}
	if !opts.DebugInfo {
		args = append(args, "/ndebug")
	}
	if opts.Platform != "" {
		args = append(args, "/targetplatform:"+opts.Platform)
	}
	if opts.Version != "" {
		args = append(args, "/ver:"+opts.Version)
	}
	if opts.LogFile != "" {
		args = append(args, "/log:"+opts.LogFile)
	}
	for _, dir := range searchDirs {
		args = append(args, "/lib:"+dir)
	}
	args = append(args, opts.ExtraArgs...)
	args = append(args, inputs...)

	return args
}
