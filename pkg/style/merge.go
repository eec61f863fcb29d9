package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Group labels an input's place in the partition.
type Group string

const (
	GroupPrimary Group = "primary"
	GroupProject Group = "project"
	GroupLibrary Group = "library"
)

// GroupStyle returns the pterm style for an assembly group label.
func GroupStyle(group Group) *pterm.Style {
	switch group {
	case GroupPrimary:
		return pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
	case GroupProject:
		return pterm.NewStyle(pterm.FgCyan)
	case GroupLibrary:
		return pterm.NewStyle(pterm.FgGreen)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// OrderRow is one position of the planned merge order.
type OrderRow struct {
	Position int
	Name     string
	Group    Group
	Moved    bool // a directive moved this file from its given position
}

// RenderOrderRow renders a single order line.
func RenderOrderRow(row OrderRow) string {
	group := fmt.Sprintf("%-7s", string(row.Group))
	line := fmt.Sprintf("  %2d  %s  %s", row.Position, GroupStyle(row.Group).Sprint(group), row.Name)
	if row.Moved {
		line += " " + MutedStyle.Render("(reordered)")
	}
	return line
}

// RenderOrder renders the planned order as a titled list.
func RenderOrder(rows []OrderRow) string {
	if len(rows) == 0 {
		return MutedStyle.Render("No assemblies to merge")
	}

	var result strings.Builder
	result.WriteString(SubtitleStyle.Render("Merge order") + "\n")
	for _, row := range rows {
		result.WriteString(RenderOrderRow(row) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// ProbeRow is one attempt of the tool locator.
type ProbeRow struct {
	Strategy string
	Path     string
	Found    bool
}

// RenderProbe renders a single locator attempt.
func RenderProbe(probe ProbeRow) string {
	indicator := MissIndicator
	if probe.Found {
		indicator = SuccessIndicator
	}

	line := fmt.Sprintf("  %s %-14s", indicator, probe.Strategy)
	if probe.Path != "" {
		line += " " + PathStyle.Render(probe.Path)
	}
	return line
}

// RenderProbeTrail renders every location the locator tried, in order.
func RenderProbeTrail(probes []ProbeRow) string {
	if len(probes) == 0 {
		return MutedStyle.Render("No locations probed")
	}

	var result strings.Builder
	result.WriteString(SubtitleStyle.Render("Probed locations") + "\n")
	for _, probe := range probes {
		result.WriteString(RenderProbe(probe) + "\n")
	}

	return strings.TrimRight(result.String(), "\n")
}
