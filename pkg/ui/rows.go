package ui

import (
	"ilweld/pkg/locator"
	"ilweld/pkg/ordering"
	"ilweld/pkg/style"
	"ilweld/pkg/weld"
)

// orderRows converts a plan into display rows: base names, group labels
// and a marker for files a directive took hold of.
func orderRows(plan *weld.PlanResult) []style.OrderRow {
	library := make(map[string]bool, len(plan.Set.Library))
	for _, path := range plan.Set.Library {
		library[path] = true
	}

	rows := make([]style.OrderRow, 0, len(plan.Order))
	for i, path := range plan.Order {
		group := style.GroupProject
		switch {
		case path == plan.Set.Primary:
			group = style.GroupPrimary
		case library[path]:
			group = style.GroupLibrary
		}

		rows = append(rows, style.OrderRow{
			Position: i + 1,
			Name:     ordering.BaseName(path),
			Group:    group,
			Moved:    group != style.GroupPrimary && directed(plan.Directives, path),
		})
	}
	return rows
}

// directed reports whether any directive pattern claims the file.
func directed(d ordering.Directives, path string) bool {
	for _, pattern := range d.High {
		if ordering.Matches(path, pattern) {
			return true
		}
	}
	for _, pattern := range d.Low {
		if ordering.Matches(path, pattern) {
			return true
		}
	}
	return false
}

func probeRows(probes []locator.Probe) []style.ProbeRow {
	rows := make([]style.ProbeRow, 0, len(probes))
	for _, p := range probes {
		rows = append(rows, style.ProbeRow{Strategy: p.Strategy, Path: p.Path, Found: p.Found})
	}
	return rows
}
