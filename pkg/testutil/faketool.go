package testutil

import (
	"context"

	"ilweld/pkg/mergetool"
)

// FakeTool implements mergetool.Tool for pipeline tests. It records every
// invocation and returns a canned result or error.
type FakeTool struct {
	ToolName string
	Result   mergetool.Result
	Err      error
	Calls    []mergetool.Invocation
}

func (f *FakeTool) Name() string {
	if f.ToolName == "" {
		return "fake"
	}
	return f.ToolName
}

func (f *FakeTool) Merge(_ context.Context, inv mergetool.Invocation) (*mergetool.Result, error) {
	f.Calls = append(f.Calls, inv)
	if f.Err != nil {
		return nil, f.Err
	}
	result := f.Result
	return &result, nil
}
