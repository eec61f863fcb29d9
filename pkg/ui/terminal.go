package ui

import (
	"fmt"
	"io"

	"ilweld/pkg/locator"
	"ilweld/pkg/style"
	"ilweld/pkg/weld"
)

// terminalRenderer provides rich output using the style package.
type terminalRenderer struct {
	output io.Writer
}

func newTerminalRenderer(output io.Writer) *terminalRenderer {
	return &terminalRenderer{output: output}
}

func (r *terminalRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *weld.RunResult:
		return r.renderRun(v)
	case *weld.PlanResult:
		return r.renderPlan(v)
	case *locator.Outcome:
		return r.renderOutcome(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n", style.ErrorIndicator, err.Error())
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.Render(msg))
	return err
}

func (r *terminalRenderer) renderPlan(plan *weld.PlanResult) error {
	if _, err := fmt.Fprintln(r.output, style.RenderOrder(orderRows(plan))); err != nil {
		return err
	}

	if plan.Directives.IsEmpty() {
		r.line("%s %s", style.InfoIndicator,
			style.MutedStyle.Render("no order directives applied"))
	} else {
		r.line("%s %d high, %d low directive patterns from %s",
			style.InfoIndicator, len(plan.Directives.High), len(plan.Directives.Low),
			style.PathStyle.Render(plan.OrderFile))
	}

	if plan.RecordPath != "" {
		r.line("%s order recorded at %s",
			style.InfoIndicator, style.PathStyle.Render(plan.RecordPath))
	}
	return nil
}

func (r *terminalRenderer) renderRun(run *weld.RunResult) error {
	if run.DryRun {
		r.line("%s dry run, tool not invoked", style.WarningIndicator)
		r.line("  %s assemblies in order (%d project, %d library)",
			style.Bold(fmt.Sprint(len(run.Order))), run.ProjectCount, run.LibraryCount)
		for i, path := range run.Order {
			r.line("  %2d  %s", i+1, path)
		}
		return nil
	}

	if run.Success() {
		r.line("%s merged %d assemblies into %s",
			style.SuccessIndicator, len(run.Order), style.PathStyle.Render(run.Out))
	} else {
		r.line("%s %s exited with code %d",
			style.ErrorIndicator, run.ToolName, run.ExitCode)
		if run.Output != "" {
			r.line("%s", run.Output)
		}
	}

	r.line("  tool: %s %s", style.PathStyle.Render(run.ToolPath),
		style.MutedStyle.Render("(via "+run.Strategy+")"))

	if run.StrongNameLost {
		r.line("%s the merged assembly lost its strong name", style.WarningIndicator)
	}
	if run.RecordPath != "" {
		r.line("  order recorded at %s", style.PathStyle.Render(run.RecordPath))
	}
	return nil
}

func (r *terminalRenderer) renderOutcome(outcome *locator.Outcome) error {
	if _, err := fmt.Fprintln(r.output, style.RenderProbeTrail(probeRows(outcome.Probes))); err != nil {
		return err
	}

	if outcome.Found {
		r.line("%s found %s %s", style.SuccessIndicator,
			style.PathStyle.Render(outcome.Path),
			style.MutedStyle.Render("(via "+outcome.Strategy+")"))
	} else {
		r.line("%s no merge tool found", style.ErrorIndicator)
	}
	return nil
}

func (r *terminalRenderer) line(format string, args ...interface{}) {
	fmt.Fprintf(r.output, format+"\n", args...)
}
