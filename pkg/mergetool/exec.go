package mergetool

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"

	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
)

// ExecTool runs the merge binary as a subprocess. Windows runs the .exe
// directly; elsewhere it is handed to mono when one is on PATH.
type ExecTool struct {
	name   string
	logger zerolog.Logger
}

// NewExecTool creates a subprocess-backed tool for the given flavor name.
func NewExecTool(name string) *ExecTool {
	return &ExecTool{
		name:   name,
		logger: logging.GetLogger("mergetool.exec"),
	}
}

// Name returns the flavor name this tool was created for.
func (t *ExecTool) Name() string {
	return t.name
}

// Merge builds the command line, runs the tool and interprets its exit.
// A nonzero exit from the tool is reported through Result, not as a Go
// error; errors mean the tool could not be run at all.
func (t *ExecTool) Merge(ctx context.Context, inv Invocation) (*Result, error) {
	if inv.ToolPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "merge invocation requires a tool path")
	}
	if len(inv.Inputs) == 0 {
		return nil, errors.New(errors.ErrNoInputs, "merge invocation requires input assemblies")
	}
	if err := inv.Options.Validate(); err != nil {
		return nil, err
	}

	args := BuildArgs(inv.Options, inv.Inputs, inv.SearchDirs)
	command, argv := hostCommand(inv.ToolPath, args)

	t.logger.Info().
		Str("tool", t.name).
		Str("path", inv.ToolPath).
		Int("inputs", len(inv.Inputs)).
		Msg("Invoking merge tool")
	logging.LogCommand(command, argv)

	cmd := exec.CommandContext(ctx, command, argv...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	runErr := cmd.Run()

	if ctx.Err() != nil {
		return nil, errors.Wrapf(ctx.Err(), errors.ErrToolExecute,
			"merge tool %s did not finish", inv.ToolPath)
	}

	result := &Result{
		Output:         output.String(),
		StrongNameLost: strongNameLost(output.String()),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(runErr, &exitErr) {
			return nil, errors.Wrapf(runErr, errors.ErrToolExecute,
				"failed to run merge tool %s", inv.ToolPath)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	if result.Success() {
		t.logger.Info().
			Str("out", inv.Options.Out).
			Bool("strongNameLost", result.StrongNameLost).
			Msg("Merge tool finished")
	} else {
		t.logger.Error().
			Int("exitCode", result.ExitCode).
			Str("output", result.Output).
			Msg("Merge tool failed")
	}

	return result, nil
}

// hostCommand decides how to start the binary. CIL executables need a
// runtime host on non-Windows systems.
func hostCommand(toolPath string, args []string) (string, []string) {
	if runtime.GOOS != "windows" && strings.EqualFold(filepath.Ext(toolPath), ".exe") {
		if mono, err := exec.LookPath("mono"); err == nil {
			return mono, append([]string{toolPath}, args...)
		}
	}
	return toolPath, args
}

// Wordings the ILMerge family prints when a merge succeeds but the
// output assembly ends up without a strong-name signature.
var strongNameMarkers = []string{
	"will not be strong name signed",
	"not be strongly named",
	"merged assembly was not signed",
}

func strongNameLost(output string) bool {
	lower := strings.ToLower(output)
	for _, marker := range strongNameMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
