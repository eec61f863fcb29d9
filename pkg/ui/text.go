package ui

import (
	"fmt"
	"io"

	"ilweld/pkg/locator"
	"ilweld/pkg/weld"
)

// textRenderer provides plain output without colors or styling.
type textRenderer struct {
	output io.Writer
}

func newTextRenderer(output io.Writer) *textRenderer {
	return &textRenderer{output: output}
}

func (r *textRenderer) RenderResult(result interface{}) error {
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

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *textRenderer) renderPlan(plan *weld.PlanResult) error {
	return r.renderPlanLines(plan.Order)
}

func (r *textRenderer) renderRun(run *weld.RunResult) error {
	if run.DryRun {
		return r.renderPlanLines(run.Order)
	}

	if run.Success() {
		fmt.Fprintf(r.output, "merged %d assemblies into %s\n", len(run.Order), run.Out)
	} else {
		fmt.Fprintf(r.output, "%s exited with code %d\n", run.ToolName, run.ExitCode)
		if run.Output != "" {
			fmt.Fprintln(r.output, run.Output)
		}
	}
	if run.StrongNameLost {
		fmt.Fprintln(r.output, "warning: the merged assembly lost its strong name")
	}
	return nil
}

// renderPlanLines prints one full path per line, keeping the output
// pipe-friendly.
func (r *textRenderer) renderPlanLines(order []string) error {
	for _, path := range order {
		if _, err := fmt.Fprintln(r.output, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) renderOutcome(outcome *locator.Outcome) error {
	for _, probe := range outcome.Probes {
		mark := "miss"
		if probe.Found {
			mark = "hit "
		}
		fmt.Fprintf(r.output, "%s %-14s %s\n", mark, probe.Strategy, probe.Path)
	}
	if outcome.Found {
		fmt.Fprintln(r.output, outcome.Path)
	} else {
		fmt.Fprintln(r.output, "no merge tool found")
	}
	return nil
}
