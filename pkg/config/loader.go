package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"ilweld/pkg/errors"
	"ilweld/pkg/logging"
	"ilweld/pkg/paths"
)

// EnvPrefix is the prefix for configuration environment variables.
const EnvPrefix = "ILWELD_"

// projectConfigNames are the project-level config files probed in the
// working directory; the first one found wins.
func projectConfigNames() []string {
	return []string{".ilweld.toml", "ilweld.toml", ".ilweld.yaml", "ilweld.yaml"}
}

// Load resolves the layered configuration: embedded defaults, then the
// user config under the XDG config dir, then the project config in the
// working directory, then ILWELD_ environment variables. Later layers
// win.
func Load(p *paths.Paths) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	// 2. User config
	if err := loadFileIfPresent(k, p.UserConfigPath()); err != nil {
		return nil, err
	}

	// 3. Project config
	for _, name := range projectConfigNames() {
		path := filepath.Join(p.WorkDir(), name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFileIfPresent(k, path); err != nil {
			return nil, err
		}
		break
	}

	// 4. Environment variables. Settings keys are always two levels
	// (section.key), so the first underscore separates the section:
	// ILWELD_TOOL_PATH -> tool.path, ILWELD_MERGE_ALLOW_DUP ->
	// merge.allow_dup.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if i := strings.Index(s, "_"); i >= 0 {
			return s[:i] + "." + s[i+1:]
		}
		return s
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment config")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("tool", settings.Tool.Name).
		Str("orderFile", settings.Order.File).
		Str("packagesRoot", settings.Packages.Root).
		Msg("Loaded configuration")

	return &settings, nil
}

// LoadFromDir loads the configuration for the given working directory.
func LoadFromDir(workDir string) (*Settings, error) {
	p, err := paths.New(workDir)
	if err != nil {
		return nil, err
	}
	return Load(p)
}

// Default returns the embedded default settings without reading any
// file or environment variable.
func Default() *Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		// The embedded defaults are compiled in; failing to parse them
		// is a programming error.
		panic("invalid embedded defaults: " + err.Error())
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		panic("invalid embedded defaults: " + err.Error())
	}
	return &settings
}

// loadFileIfPresent merges the config file at path into k, picking the
// parser from the extension. A missing file is not an error.
func loadFileIfPresent(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	var parser koanf.Parser = toml.Parser()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
	}

	return nil
}
