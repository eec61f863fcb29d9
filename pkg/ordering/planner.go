package ordering

import (
	"ilweld/pkg/logging"
)

// Plan orders one group of files according to the directive pattern
// lists. The push-down pass (low patterns) runs first, then the
// bubble-up pass (high patterns), so a file matched by both kinds ends
// up at the front.
//
// The result always holds exactly the input files: nothing is created,
// dropped or duplicated, and files matching no pattern keep their
// relative input order. The input slice is never modified. With empty
// pattern lists Plan is the identity.
func Plan(files, highPatterns, lowPatterns []string) []string {
	ordered := pushDown(files, lowPatterns)
	ordered = bubbleUp(ordered, highPatterns)

	logger := logging.GetLogger("ordering.planner")
	logger.Trace().
		Int("files", len(files)).
		Int("high", len(highPatterns)).
		Int("low", len(lowPatterns)).
		Strs("order", ordered).
		Msg("Planned group order")

	return ordered
}

// pushDown moves files matching lowPatterns behind the untouched files.
// Patterns are processed in reverse declaration order and each block of
// matches is prepended to the pushed accumulator, so matches of the
// first declared pattern sit closest to the untouched block and matches
// of the last declared pattern end at the very back. A file matching
// several low patterns is claimed by the last declared one.
func pushDown(files, lowPatterns []string) []string {
	remaining := append([]string(nil), files...)
	var pushed []string

	for i := len(lowPatterns) - 1; i >= 0; i-- {
		pattern := CompilePattern(lowPatterns[i])
		matched, rest := extract(remaining, pattern)
		remaining = rest
		pushed = append(matched, pushed...)
	}

	return append(remaining, pushed...)
}

// bubbleUp moves files matching highPatterns ahead of the untouched
// files. Patterns are processed in declaration order and each block of
// matches is appended to the raised accumulator, so matches of the first
// declared pattern come first.
func bubbleUp(files, highPatterns []string) []string {
	remaining := append([]string(nil), files...)
	var raised []string

	for _, raw := range highPatterns {
		pattern := CompilePattern(raw)
		matched, rest := extract(remaining, pattern)
		remaining = rest
		raised = append(raised, matched...)
	}

	return append(raised, remaining...)
}

// extract splits files into the ones matching pattern and the rest,
// both keeping their relative input order.
func extract(files []string, pattern Pattern) (matched, rest []string) {
	for _, file := range files {
		if pattern.Matches(file) {
			matched = append(matched, file)
		} else {
			rest = append(rest, file)
		}
	}
	return matched, rest
}
