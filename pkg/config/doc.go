// Package config handles configuration management for ilweld.
// Settings are resolved from layered sources: embedded TOML defaults,
// the user config under the XDG config directory, a project config in
// the working directory (TOML or YAML) and ILWELD_ environment
// variables, later layers winning.
package config
