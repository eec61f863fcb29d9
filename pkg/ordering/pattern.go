package ordering

import (
	"strings"
)

// Wildcard is the pattern segment that matches any single name segment.
const Wildcard = "*"

// Pattern is a dotted wildcard pattern from an order directive, compiled
// into its normalized segments. Matching is a prefix match over the
// dot-separated segments of an assembly name: "Newtonsoft.Json" matches
// Newtonsoft.Json.dll as well as Newtonsoft.Json.Schema.dll, and a "*"
// segment matches any single segment.
type Pattern struct {
	raw      string
	segments []string
}

// CompilePattern normalizes and splits raw once so it can be matched
// against many file names.
func CompilePattern(raw string) Pattern {
	return Pattern{
		raw:      raw,
		segments: strings.Split(NormalizeName(raw), "."),
	}
}

// String returns the pattern as written in the directive file.
func (p Pattern) String() string {
	return p.raw
}

// Matches reports whether fileName matches the pattern.
func (p Pattern) Matches(fileName string) bool {
	name := strings.Split(NormalizeName(fileName), ".")

	for i, seg := range p.segments {
		if i >= len(name) {
			// The name ran out before the pattern did. Only a trailing
			// "*" may match the missing tail.
			return i == len(p.segments)-1 && seg == Wildcard
		}
		if seg != Wildcard && seg != name[i] {
			return false
		}
	}

	// All pattern segments matched. Extra name segments are allowed
	// since patterns are segment prefixes, not exact names.
	return true
}

// Matches reports whether fileName matches pattern. Prefer
// CompilePattern when matching one pattern against many names.
func Matches(fileName, pattern string) bool {
	return CompilePattern(pattern).Matches(fileName)
}

// NormalizeName reduces a file path or pattern to its comparable form:
// the last path segment, lower-cased, with the extension removed when it
// is exactly .dll or .exe. Any other dotted suffix stays, it counts as a
// name segment rather than an extension here.
func NormalizeName(name string) string {
	name = strings.ToLower(BaseName(name))
	if strings.HasSuffix(name, ".dll") || strings.HasSuffix(name, ".exe") {
		name = name[:len(name)-len(".dll")]
	}
	return name
}

// BaseName returns the last path segment. Both separator styles are
// recognized so Windows-style inputs behave the same on every platform.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
