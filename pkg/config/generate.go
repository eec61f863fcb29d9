package config

import (
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"ilweld/pkg/errors"
)

// GenerateConfigContent generates a starter configuration file: the
// embedded defaults with every value line commented out, so dropping it
// into a project changes nothing until lines are uncommented.
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// EffectiveConfigContent renders the fully resolved settings as TOML,
// the answer to "what is ilweld actually seeing" after all layers merge.
func EffectiveConfigContent(settings *Settings) (string, error) {
	data, err := toml.Marshal(settings)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal settings")
	}
	return string(data), nil
}

// GenerateOrderFileContent generates a starter order directive file.
func GenerateOrderFileContent() string {
	return strings.Join([]string{
		"# Merge order directives.",
		"# One dotted wildcard pattern per line, e.g. App.Core or Newtonsoft.*.",
		"# Patterns above the \"...\" line bubble their matches to the front of",
		"# each group; patterns below it push theirs to the back. Blank lines",
		"# and lines starting with # or // are ignored.",
		"",
		"...",
		"",
		"# Newtonsoft.*",
		"",
	}, "\n")
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [tool], [merge]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		// Comment out configuration value lines
		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
