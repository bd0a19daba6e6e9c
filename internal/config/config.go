// Package config discovers and loads the optional exgen configuration
// file, which supplies default flags, user-named presets, and a package
// manager preference at the lowest merge precedence.
package config

import (
	"errors"

	"github.com/exgen-dev/exgen/internal/resolve"
)

// Sentinel errors for configuration operations.
var (
	// ErrNotFound indicates no configuration file was discovered.
	ErrNotFound = errors.New("config: configuration file not found")

	// ErrInvalidConfig indicates the configuration file could not be parsed.
	ErrInvalidConfig = errors.New("config: invalid configuration file")
)

// File is the on-disk configuration shape. It is read-only once loaded;
// the only write path is the explicit `exgen config export` command.
type File struct {
	// Defaults supplies option values applied below presets and flags.
	Defaults map[string]any `yaml:"defaults" json:"defaults"`

	// Presets maps user-defined preset names to option bundles.
	Presets map[string]map[string]any `yaml:"presets" json:"presets"`

	// PackageManager is the preferred manager identifier, if any.
	PackageManager string `yaml:"packageManager" json:"packageManager"`
}

// Source converts the file into the resolver's configuration view,
// validating every key against the closed option enumeration. Unknown or
// mistyped entries are returned as warnings and skipped so a stale config
// file cannot break resolution.
func (f *File) Source() (*resolve.ConfigSource, []string) {
	var warnings []string

	defaults, w := toBundle(f.Defaults, "defaults")
	warnings = append(warnings, w...)

	presets := make(map[string]resolve.Bundle, len(f.Presets))
	for name, raw := range f.Presets {
		bundle, w := toBundle(raw, "preset "+name)
		warnings = append(warnings, w...)
		presets[name] = bundle
	}

	return &resolve.ConfigSource{
		Defaults:       defaults,
		Presets:        presets,
		PackageManager: resolve.PackageManager(f.PackageManager),
	}, warnings
}

// toBundle converts a raw map into a validated option bundle.
func toBundle(raw map[string]any, section string) (resolve.Bundle, []string) {
	if len(raw) == 0 {
		return resolve.Bundle{}, nil
	}

	var warnings []string
	settings := make([]resolve.Setting, 0, len(raw))
	for key, value := range raw {
		k := resolve.Key(key)
		if !resolve.IsValidKey(k) {
			warnings = append(warnings, "config "+section+": unknown option "+key+" ignored")
			continue
		}
		switch value.(type) {
		case bool, string:
			settings = append(settings, resolve.Setting{Key: k, Value: value})
		default:
			warnings = append(warnings, "config "+section+": option "+key+" has an unsupported value type, ignored")
		}
	}

	bundle, err := resolve.NewBundle(settings)
	if err != nil {
		// Unreachable after the checks above; keep the bundle usable anyway.
		warnings = append(warnings, "config "+section+": "+err.Error())
		return resolve.Bundle{}, warnings
	}
	return bundle, warnings
}
