package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser handles parsing and rendering of markup tags
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":    TitleStyle,
			"subtitle": SubtitleStyle,
			"success":  SuccessStyle,
			"error":    ErrorStyle,
			"warning":  WarningStyle,
			"info":     InfoStyle,
			"code":     CodeStyle,
			"path":     PathStyle,
			"muted":    MutedStyle,
			"bold":     lipgloss.NewStyle().Bold(true),
			"italic":   lipgloss.NewStyle().Italic(true),

			// Assembly group tags
			"primary": PrimaryAssemblyStyle,
			"project": ProjectGroupStyle,
			"library": LibraryGroupStyle,
		},
	}
}

// Render processes markup text and returns styled output
func (p *MarkupParser) Render(text string) string {
	result := text
	changed := true

	for changed {
		changed = false
		oldResult := result

		for tag, tagStyle := range p.styles {
			pattern := regexp.MustCompile(`\[` + tag + `\](.*?)\[/` + tag + `\]`)

			result = pattern.ReplaceAllStringFunc(result, func(match string) string {
				submatch := pattern.FindStringSubmatch(match)
				if len(submatch) != 2 {
					return match
				}

				changed = true
				return tagStyle.Render(submatch[1])
			})
		}

		if result == oldResult {
			break
		}
	}

	return result
}

// Global parser instance
var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}
