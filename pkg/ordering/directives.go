package ordering

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
	"ilweld/pkg/types"
)

// Sentinel is the directive line that switches collection from the high
// list to the low list.
const Sentinel = "..."

// Directives holds the two pattern lists read from an order file. High
// patterns bubble their matches to the front of a group, low patterns
// push theirs to the back.
type Directives struct {
	High []string `json:"high" yaml:"high"`
	Low  []string `json:"low" yaml:"low"`
}

// IsEmpty reports whether no pattern survived parsing.
func (d Directives) IsEmpty() bool {
	return len(d.High) == 0 && len(d.Low) == 0
}

// ParseDirectives reads directive lines from r. Blank lines and lines
// starting with "#" or "//" are dropped, all whitespace is stripped from
// kept lines, and the sentinel "..." switches collection from High to
// Low. A second sentinel has no effect.
func ParseDirectives(r io.Reader) (Directives, error) {
	var d Directives
	high := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := stripWhitespace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//"):
			continue
		case line == Sentinel:
			high = false
		case high:
			d.High = append(d.High, line)
		default:
			d.Low = append(d.Low, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return Directives{}, errors.Wrap(err, errors.ErrOrderFileRead,
			"failed to read order directives")
	}

	return d, nil
}

// LoadDirectives reads and parses the directive file at path. A missing
// file comes back as an ErrOrderFileMissing error together with empty
// directives; callers log it and continue, absence of the file is never
// fatal to a merge.
func LoadDirectives(fsys types.FS, path string) (Directives, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Directives{}, errors.Wrapf(err, errors.ErrOrderFileMissing,
				"order file not found: %s", path)
		}
		return Directives{}, errors.Wrapf(err, errors.ErrOrderFileRead,
			"failed to read order file: %s", path)
	}

	d, err := ParseDirectives(strings.NewReader(string(data)))
	if err != nil {
		return Directives{}, err
	}

	logger := logging.GetLogger("ordering.directives")
	logger.Debug().
		Str("path", path).
		Int("high", len(d.High)).
		Int("low", len(d.Low)).
		Msg("Loaded order directives")

	return d, nil
}

// stripWhitespace removes every whitespace rune from line, internal
// ones included.
func stripWhitespace(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
}
