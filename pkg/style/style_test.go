package style

import (
	"strings"
	"testing"
)

func TestHelpers(t *testing.T) {
	t.Run("bold keeps the text", func(t *testing.T) {
		result := Bold("Hello World")
		if !strings.Contains(result, "Hello World") {
			t.Errorf("Expected output to contain %q, got %q", "Hello World", result)
		}
	})

	t.Run("indent", func(t *testing.T) {
		tests := []struct {
			name     string
			text     string
			level    int
			expected string
		}{
			{name: "no indent", text: "Hello", level: 0, expected: "Hello"},
			{name: "single indent", text: "Hello", level: 1, expected: "  Hello"},
			{name: "double indent", text: "Hello", level: 2, expected: "    Hello"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				result := Indent(tt.text, tt.level)
				if result != tt.expected {
					t.Errorf("Expected %q, got %q", tt.expected, result)
				}
			})
		}
	})
}

func TestGroupStyle(t *testing.T) {
	groups := []Group{GroupPrimary, GroupProject, GroupLibrary, Group("other")}

	for _, group := range groups {
		if GroupStyle(group) == nil {
			t.Errorf("GroupStyle(%q) returned nil", group)
		}
	}
}

func TestRenderOrder(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		result := RenderOrder(nil)
		if !strings.Contains(result, "No assemblies") {
			t.Errorf("Expected placeholder text, got %q", result)
		}
	})

	t.Run("rows keep their position numbers", func(t *testing.T) {
		rows := []OrderRow{
			{Position: 1, Name: "App.exe", Group: GroupPrimary},
			{Position: 2, Name: "App.Core.dll", Group: GroupProject, Moved: true},
			{Position: 3, Name: "Newtonsoft.Json.dll", Group: GroupLibrary},
		}

		result := RenderOrder(rows)

		for _, want := range []string{"Merge order", "App.exe", "App.Core.dll", "Newtonsoft.Json.dll", "reordered"} {
			if !strings.Contains(result, want) {
				t.Errorf("Expected output to contain %q, got %q", want, result)
			}
		}

		lines := strings.Split(result, "\n")
		if len(lines) != 4 {
			t.Errorf("Expected a title and three rows, got %d lines", len(lines))
		}
	})
}

func TestRenderProbeTrail(t *testing.T) {
	probes := []ProbeRow{
		{Strategy: "explicit", Path: "", Found: false},
		{Strategy: "parent-walk", Path: "/sln/tools/ILMerge.exe", Found: true},
	}

	result := RenderProbeTrail(probes)

	for _, want := range []string{"Probed locations", "explicit", "parent-walk", "/sln/tools/ILMerge.exe"} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected output to contain %q, got %q", want, result)
		}
	}
}

func TestMarkupRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{
			name:     "known tag",
			input:    "[success]done[/success]",
			contains: "done",
		},
		{
			name:     "unknown tag is left alone",
			input:    "[blink]x[/blink]",
			contains: "[blink]x[/blink]",
		},
		{
			name:     "group tag",
			input:    "[library]Newtonsoft.Json.dll[/library]",
			contains: "Newtonsoft.Json.dll",
		},
		{
			name:     "plain text passes through",
			input:    "nothing to style",
			contains: "nothing to style",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.input)
			if !strings.Contains(result, tt.contains) {
				t.Errorf("Expected output to contain %q, got %q", tt.contains, result)
			}
		})
	}
}
