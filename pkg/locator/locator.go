// Package locator finds the external merge tool on disk. A fixed chain
// of probe strategies runs in order (explicit config, environment,
// parent-directory walk, NuGet packages folders, the user-level NuGet
// cache, PATH) and the first hit wins. Probing is heuristic and cheap:
// every strategy only stats candidate paths through the FS seam.
package locator

import (
	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
	"ilweld/pkg/paths"
	"ilweld/pkg/types"

	"github.com/rs/zerolog"
)

// Request carries everything a probe strategy may look at.
type Request struct {
	// WorkDir is the directory the merge runs from, the anchor for the
	// parent walk and for packages.config.
	WorkDir string
	// PackagesRoot is the configured NuGet packages directory, may be
	// empty.
	PackagesRoot string
	// ExplicitPath is the tool path from config or flag, may be empty.
	ExplicitPath string
	// ToolNames are the executable names to try, in order.
	ToolNames []string
	// FS is the filesystem probed.
	FS types.FS
}

// Probe records one strategy attempt for the trail output.
type Probe struct {
	Strategy string `json:"strategy" yaml:"strategy"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Found    bool   `json:"found" yaml:"found"`
}

// Outcome is the result of a full probe run.
type Outcome struct {
	Path     string  `json:"path,omitempty" yaml:"path,omitempty"`
	Strategy string  `json:"strategy,omitempty" yaml:"strategy,omitempty"`
	Found    bool    `json:"found" yaml:"found"`
	Probes   []Probe `json:"probes" yaml:"probes"`
}

// Strategy is one way of finding the tool.
type Strategy interface {
	// Name identifies the strategy in logs and the probe trail.
	Name() string
	// Locate returns the tool path and whether the strategy found one.
	Locate(req Request) (string, bool)
}

// Locator runs a strategy chain in order.
type Locator struct {
	strategies []Strategy
	logger     zerolog.Logger
}

// New creates a Locator with the default strategy chain.
func New() *Locator {
	return &Locator{
		strategies: []Strategy{
			explicitStrategy{},
			envStrategy{},
			parentWalkStrategy{},
			packagesRootStrategy{},
			nugetCacheStrategy{},
			pathStrategy{},
		},
		logger: logging.GetLogger("locator"),
	}
}

// Run probes every strategy until one hits and returns the full trail.
// An explicit path that is configured but does not exist is a hard
// error: silent fallback would mask a broken configuration.
func (l *Locator) Run(req Request) (*Outcome, error) {
	outcome := &Outcome{}

	for _, strategy := range l.strategies {
		path, found := strategy.Locate(req)
		outcome.Probes = append(outcome.Probes, Probe{
			Strategy: strategy.Name(),
			Path:     path,
			Found:    found,
		})

		l.logger.Debug().
			Str("strategy", strategy.Name()).
			Str("path", path).
			Bool("found", found).
			Msg("Probed for merge tool")

		if found {
			outcome.Path = path
			outcome.Strategy = strategy.Name()
			outcome.Found = true
			return outcome, nil
		}

		if strategy.Name() == strategyExplicit && req.ExplicitPath != "" {
			return outcome, errors.Newf(errors.ErrToolNotFound,
				"configured tool path does not exist: %s", req.ExplicitPath)
		}
	}

	return outcome, nil
}

// Locate runs the chain and returns just the path, with an
// ErrToolNotFound error when nothing hits.
func (l *Locator) Locate(req Request) (string, error) {
	outcome, err := l.Run(req)
	if err != nil {
		return "", err
	}
	if !outcome.Found {
		return "", errors.Newf(errors.ErrToolNotFound,
			"merge tool not found (tried %v); set tool.path or %s",
			req.ToolNames, paths.EnvToolPath)
	}
	return outcome.Path, nil
}
