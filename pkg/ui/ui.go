// Package ui renders command results in different formats: rich terminal
// output, plain text, JSON and YAML. The terminal and text renderers know
// the ilweld result types; machine formats encode them as they are.
package ui

import (
	"fmt"
	"io"
	"os"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders a command result (plan, run, locate outcome).
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// not a real file, be conservative
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return newTerminalRenderer(output), nil
	case FormatText:
		return newTextRenderer(output), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatYAML:
		return newYAMLRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
