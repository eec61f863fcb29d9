package mergetool

import (
	"context"

	"ilweld/pkg/registry"
)

// Flavor names known to the registry.
const (
	FlavorILMerge  = "ilmerge"
	FlavorILRepack = "ilrepack"
)

// Invocation carries everything one merge run needs: the resolved tool
// binary, its options, the inputs in planned order (primary first) and
// the directories handed to the tool for reference resolution.
type Invocation struct {
	ToolPath   string
	Options    Options
	Inputs     []string
	SearchDirs []string
}

// Result is what the build pipeline cares about: did the tool succeed,
// and did the merged output lose its strong-name signature.
type Result struct {
	ExitCode       int
	StrongNameLost bool
	Output         string
}

// Success reports whether the tool exited cleanly.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Tool runs one merge. Implementations are stateless; the same instance
// may serve many invocations.
type Tool interface {
	Name() string
	Merge(ctx context.Context, inv Invocation) (*Result, error)
}

// ToolFactory creates a tool instance for a registered flavor.
type ToolFactory func() Tool

var toolFactoryRegistry registry.Registry[ToolFactory]

func init() {
	toolFactoryRegistry = registry.New[ToolFactory]()

	registry.MustRegister(toolFactoryRegistry, FlavorILMerge, func() Tool {
		return NewExecTool(FlavorILMerge)
	})
	registry.MustRegister(toolFactoryRegistry, FlavorILRepack, func() Tool {
		return NewExecTool(FlavorILRepack)
	})
}

// RegisterToolFactory registers a factory for a new flavor name.
func RegisterToolFactory(name string, factory ToolFactory) error {
	return toolFactoryRegistry.Register(name, factory)
}

// GetTool creates a tool instance for the named flavor.
func GetTool(name string) (Tool, error) {
	factory, err := toolFactoryRegistry.Get(name)
	if err != nil {
		return nil, err
	}
	return factory(), nil
}

// FlavorNames lists the registered flavors in sorted order.
func FlavorNames() []string {
	return toolFactoryRegistry.List()
}

// ExecutableNames returns the binary names worth probing for a flavor,
// most specific first. An unknown or empty flavor probes the whole family.
func ExecutableNames(flavor string) []string {
	switch flavor {
	case FlavorILMerge:
		return []string{"ILMerge.exe"}
	case FlavorILRepack:
		return []string{"ILRepack.exe"}
	default:
		return []string{"ILMerge.exe", "ILRepack.exe"}
	}
}
