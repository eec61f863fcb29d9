package weld

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"ilweld/pkg/assembly"
	"ilweld/pkg/config"
	"ilweld/pkg/errors"
	"ilweld/pkg/filesystem"
	"ilweld/pkg/locator"
	"ilweld/pkg/logging"
	"ilweld/pkg/mergetool"
	"ilweld/pkg/ordering"
	"ilweld/pkg/paths"
	"ilweld/pkg/types"
)

// PlanOptions configures the planning half of the pipeline. Zero values
// fall back to the loaded settings; a nil Settings loads the layered
// configuration from the working directory.
type PlanOptions struct {
	WorkDir      string
	Inputs       []string
	PackagesRoot string
	OrderFile    string
	NoRecord     bool
	Settings     *config.Settings
	FileSystem   types.FS
}

// PlanResult is everything planning produced: the partitioned set, the
// directives that were applied and the final merge order.
type PlanResult struct {
	Set        assembly.Set        `json:"set" yaml:"set"`
	Directives ordering.Directives `json:"directives" yaml:"directives"`
	Order      []string            `json:"order" yaml:"order"`
	SearchDirs []string            `json:"searchDirs" yaml:"searchDirs"`
	OrderFile  string              `json:"orderFile" yaml:"orderFile"`
	RecordPath string              `json:"recordPath,omitempty" yaml:"recordPath,omitempty"`
}

// Plan expands response files, partitions the inputs, applies the order
// directives and writes the order record. It never invokes the tool.
//
// Two failures are deliberately soft: a missing directive file logs an
// error and planning continues with the inputs unordered, and a record
// write failure logs a warning. Everything else returns a coded error.
func Plan(opts PlanOptions) (*PlanResult, error) {
	logger := logging.GetLogger("weld.plan")

	p, err := paths.New(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	settings := opts.Settings
	if settings == nil {
		settings, err = config.LoadFromDir(p.WorkDir())
		if err != nil {
			return nil, err
		}
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// Step 1: expand response files and split the inputs
	inputs, err := assembly.ExpandArgs(fs, opts.Inputs)
	if err != nil {
		return nil, err
	}

	packagesRoot := pick(opts.PackagesRoot, settings.Packages.Root)
	set, err := assembly.Partition(inputs, packagesRoot)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("primary", set.Primary).
		Int("project", len(set.Project)).
		Int("library", len(set.Library)).
		Msg("Inputs partitioned")

	// Step 2: load the ordering directives. A relative file resolves
	// against the primary assembly's directory, not the working dir.
	orderFile := pick(opts.OrderFile, settings.Order.File, paths.OrderFileName)
	if !filepath.IsAbs(orderFile) {
		orderFile = filepath.Join(filepath.Dir(set.Primary), orderFile)
	}

	directives, err := ordering.LoadDirectives(fs, orderFile)
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrOrderFileMissing) {
			return nil, err
		}
		// absence is an error for the log, never for the merge
		logger.Error().
			Str("path", orderFile).
			Msg("Order directive file not found, inputs keep their given order")
	}

	// Step 3: plan each group
	result := &PlanResult{
		Set:        set,
		Directives: directives,
		Order:      set.Ordered(directives),
		SearchDirs: set.SearchDirs(),
		OrderFile:  orderFile,
	}

	// Step 4: record the final order next to the primary
	if settings.Order.Record && !opts.NoRecord {
		recordPath, err := ordering.WriteOrderRecord(fs, set.Primary, result.Order)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("path", recordPath).
				Msg("Could not write the order record")
		} else {
			result.RecordPath = recordPath
		}
	}

	logger.Info().
		Int("assemblies", set.Count()).
		Str("orderFile", orderFile).
		Msg("Merge order planned")

	return result, nil
}

// RunOptions configures a full merge run. The Merge options are used as
// given apart from Out, which falls back to the configured output path;
// seed them with MergeOptionsFrom to pick up the rest of the settings.
// Tool overrides the flavor registry and exists for tests.
type RunOptions struct {
	WorkDir      string
	Inputs       []string
	PackagesRoot string
	OrderFile    string
	NoRecord     bool

	Merge      mergetool.Options
	ToolFlavor string
	ToolPath   string
	ToolNames  []string
	SearchDirs []string
	Timeout    time.Duration
	DryRun     bool

	Settings   *config.Settings
	FileSystem types.FS
	Tool       mergetool.Tool
}

// RunResult reports a run back to the build pipeline: the planned order,
// which tool ran and where it was found, its exit code and whether the
// merged output lost its strong name.
type RunResult struct {
	Order          []string `json:"order" yaml:"order"`
	ProjectCount   int      `json:"projectCount" yaml:"projectCount"`
	LibraryCount   int      `json:"libraryCount" yaml:"libraryCount"`
	OrderFile      string   `json:"orderFile" yaml:"orderFile"`
	RecordPath     string   `json:"recordPath,omitempty" yaml:"recordPath,omitempty"`
	Out            string   `json:"out,omitempty" yaml:"out,omitempty"`
	ToolName       string   `json:"toolName" yaml:"toolName"`
	ToolPath       string   `json:"toolPath,omitempty" yaml:"toolPath,omitempty"`
	Strategy       string   `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	ExitCode       int      `json:"exitCode" yaml:"exitCode"`
	StrongNameLost bool     `json:"strongNameLost" yaml:"strongNameLost"`
	Output         string   `json:"output,omitempty" yaml:"output,omitempty"`
	DryRun         bool     `json:"dryRun" yaml:"dryRun"`
}

// Success reports whether the tool ran and exited cleanly. A dry run
// counts as success.
func (r *RunResult) Success() bool {
	return r.ExitCode == 0
}

// Run executes the whole pipeline. A tool that starts but exits nonzero
// is not a Go error: the exit code and output land in the result so the
// caller can mirror them. Errors mean the run never got that far.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	logger := logging.GetLogger("weld.run")
	defer logging.LogOperationStart(logger, "merge run")()
	logger.Info().
		Int("inputs", len(opts.Inputs)).
		Bool("dryRun", opts.DryRun).
		Msg("Starting merge run")

	p, err := paths.New(opts.WorkDir)
	if err != nil {
		return nil, err
	}

	settings := opts.Settings
	if settings == nil {
		settings, err = config.LoadFromDir(p.WorkDir())
		if err != nil {
			return nil, err
		}
	}

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	// Step 1: plan the order
	plan, err := Plan(PlanOptions{
		WorkDir:      p.WorkDir(),
		Inputs:       opts.Inputs,
		PackagesRoot: opts.PackagesRoot,
		OrderFile:    opts.OrderFile,
		NoRecord:     opts.NoRecord,
		Settings:     settings,
		FileSystem:   fs,
	})
	if err != nil {
		return nil, err
	}

	flavor := pick(opts.ToolFlavor, settings.Tool.Name, mergetool.FlavorILMerge)

	result := &RunResult{
		Order:        plan.Order,
		ProjectCount: len(plan.Set.Project),
		LibraryCount: len(plan.Set.Library),
		OrderFile:    plan.OrderFile,
		RecordPath:   plan.RecordPath,
		ToolName:     flavor,
		DryRun:       opts.DryRun,
	}

	if opts.DryRun {
		logger.Info().Msg("Dry run, stopping after planning")
		return result, nil
	}

	// Step 2: locate the tool binary
	toolNames := opts.ToolNames
	if len(toolNames) == 0 {
		switch {
		case opts.ToolFlavor != "":
			toolNames = mergetool.ExecutableNames(opts.ToolFlavor)
		case len(settings.Tool.Names) > 0:
			toolNames = settings.Tool.Names
		default:
			toolNames = mergetool.ExecutableNames(flavor)
		}
	}

	outcome, err := locator.New().Run(locator.Request{
		WorkDir:      p.WorkDir(),
		PackagesRoot: pick(opts.PackagesRoot, settings.Packages.Root),
		ExplicitPath: pick(opts.ToolPath, settings.Tool.Path),
		ToolNames:    toolNames,
		FS:           fs,
	})
	if err != nil {
		return nil, err
	}
	if !outcome.Found {
		return nil, errors.Newf(errors.ErrToolNotFound,
			"no merge tool found (tried %s); set %s or configure tool.path",
			strings.Join(toolNames, ", "), paths.EnvToolPath)
	}
	result.ToolPath = outcome.Path
	result.Strategy = outcome.Strategy

	// Step 3: assemble the invocation
	mergeOpts := opts.Merge
	mergeOpts.Out = pick(mergeOpts.Out, settings.Merge.Out, defaultOut(plan.Set.Primary))
	if err := mergeOpts.Validate(); err != nil {
		return nil, err
	}
	result.Out = mergeOpts.Out

	searchDirs := append([]string(nil), plan.SearchDirs...)
	searchDirs = append(searchDirs, opts.SearchDirs...)
	searchDirs = append(searchDirs, settings.Merge.SearchDirs...)
	searchDirs = distinct(searchDirs)

	tool := opts.Tool
	if tool == nil {
		tool, err = mergetool.GetTool(flavor)
		if err != nil {
			return nil, err
		}
	}
	result.ToolName = tool.Name()

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	// Step 4: run the tool
	merged, err := tool.Merge(ctx, mergetool.Invocation{
		ToolPath:   outcome.Path,
		Options:    mergeOpts,
		Inputs:     plan.Order,
		SearchDirs: searchDirs,
	})
	if err != nil {
		return nil, err
	}

	result.ExitCode = merged.ExitCode
	result.StrongNameLost = merged.StrongNameLost
	result.Output = merged.Output

	if merged.Success() {
		logger.Info().
			Str("tool", result.ToolName).
			Str("out", mergeOpts.Out).
			Bool("strongNameLost", result.StrongNameLost).
			Msg("Merge run finished")
	} else {
		logger.Error().
			Str("tool", result.ToolName).
			Int("exitCode", result.ExitCode).
			Msg("Merge tool reported failure")
	}

	return result, nil
}

// MergeOptionsFrom seeds tool options from the effective settings. The
// CLI overlays changed flags on top of this.
func MergeOptionsFrom(settings *config.Settings) mergetool.Options {
	m := settings.Merge
	return mergetool.Options{
		Out:                m.Out,
		Target:             mergetool.TargetKind(m.Target),
		KeyFile:            m.KeyFile,
		DelaySign:          m.DelaySign,
		LogFile:            m.LogFile,
		Internalize:        m.Internalize,
		InternalizeExclude: m.InternalizeExclude,
		Union:              m.Union,
		CopyAttributes:     m.CopyAttributes,
		AllowDup:           m.AllowDup,
		DebugInfo:          m.DebugInfo,
		XMLDocs:            m.XMLDocs,
		Closed:             m.Closed,
		Wildcards:          m.Wildcards,
		Platform:           m.Platform,
		Version:            m.Version,
		ExtraArgs:          append([]string(nil), m.ExtraArgs...),
	}
}

// defaultOut places the merged assembly in a "merged" subfolder next to
// the primary, keeping the unmerged original intact.
func defaultOut(primary string) string {
	return filepath.Join(filepath.Dir(primary), "merged", filepath.Base(primary))
}

// pick returns the first non-empty value.
func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// distinct keeps the first occurrence of each entry.
func distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
