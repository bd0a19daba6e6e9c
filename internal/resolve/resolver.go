package resolve

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

// ConfigSource is the discovered-configuration view the resolver consumes.
// It is built by the config package from an on-disk file and is read-only.
type ConfigSource struct {
	// Defaults is the lowest-precedence option bundle.
	Defaults Bundle

	// Presets maps user-defined preset names to option bundles.
	Presets map[string]Bundle

	// PackageManager is the declared manager preference, if any.
	PackageManager PackageManager
}

// Layer is one override step in the resolution fold. The ordered layer
// list makes precedence an explicit, testable data structure instead of
// implicit source ordering.
type Layer struct {
	// Source names where the layer came from, for diagnostics.
	Source string

	// Bundle carries the values this layer overrides.
	Bundle Bundle
}

// Resolver merges flags, configuration, and presets into ResolvedOptions.
type Resolver struct {
	cfg      *ConfigSource
	detector *Detector
	logger   *slog.Logger
}

// NewResolver creates a Resolver. cfg may be nil when no configuration file
// was discovered; detector may be nil to use the default detector.
func NewResolver(cfg *ConfigSource, detector *Detector, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if detector == nil {
		detector = NewDetector(logger)
	}
	return &Resolver{cfg: cfg, detector: detector, logger: logger}
}

// Resolve computes the single authoritative configuration for one run.
// explicit carries only the flags the user actually set; userPresets names
// config-defined presets requested via --preset. Resolution is total for
// well-formed input: it fails only on unknown option keys or preset names.
func (r *Resolver) Resolve(name, path string, explicit Bundle, userPresets []string) (*ResolvedOptions, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	layers, err := r.buildLayers(explicit, userPresets)
	if err != nil {
		return nil, err
	}

	acc, err := fold(layers)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve target path %q: %w", path, err)
	}

	resolved := &ResolvedOptions{
		RawOptions:   *acc,
		Name:         name,
		Path:         absPath,
		IsTypeScript: resolveLanguage(acc, explicit),
		Explicit:     explicit,
	}

	// Normalize the language toggles so downstream flag checks and the
	// resolved decision can never disagree.
	resolved.TypeScript = resolved.IsTypeScript
	resolved.JavaScript = !resolved.IsTypeScript

	resolved.Features = featureLabels(resolved)

	var pref PackageManager
	if r.cfg != nil {
		pref = r.cfg.PackageManager
	}
	resolved.PackageManager = r.detector.Detect(absPath, pref)

	r.logger.Debug("options resolved",
		"name", resolved.Name,
		"path", resolved.Path,
		"typescript", resolved.IsTypeScript,
		"packageManager", resolved.PackageManager,
		"presets", resolved.ActivePresets(),
		"layers", len(layers),
	)

	return resolved, nil
}

// buildLayers assembles the ordered override list:
// config defaults, active built-in presets in priority order, requested
// user presets, and finally the original explicit flags.
func (r *Resolver) buildLayers(explicit Bundle, userPresets []string) ([]Layer, error) {
	var layers []Layer

	if r.cfg != nil && len(r.cfg.Defaults) > 0 {
		layers = append(layers, Layer{Source: "config defaults", Bundle: r.cfg.Defaults})
	}

	// Preset activation is decided from defaults plus explicit flags,
	// before any preset bundle is merged: presets never activate each other.
	activation := &RawOptions{}
	for _, layer := range layers {
		if err := activation.apply(layer.Bundle); err != nil {
			return nil, err
		}
	}
	if err := activation.apply(explicit); err != nil {
		return nil, err
	}

	for _, p := range BuiltinPresets {
		if p.active(activation) {
			layers = append(layers, Layer{Source: "preset " + p.Name, Bundle: p.Bundle})
		}
	}

	for _, name := range userPresets {
		if r.cfg == nil {
			return nil, fmt.Errorf("%w: %q (no configuration file found)", ErrUnknownPreset, name)
		}
		bundle, ok := r.cfg.Presets[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
		}
		layers = append(layers, Layer{Source: "user preset " + name, Bundle: bundle})
	}

	// Explicit flags always win, regardless of which presets are active.
	layers = append(layers, Layer{Source: "flags", Bundle: explicit})

	return layers, nil
}

// fold applies the layers in order onto a zero accumulator.
func fold(layers []Layer) (*RawOptions, error) {
	acc := &RawOptions{}
	for _, layer := range layers {
		if err := acc.apply(layer.Bundle); err != nil {
			return nil, fmt.Errorf("apply %s: %w", layer.Source, err)
		}
	}
	return acc, nil
}

// resolveLanguage decides TypeScript vs JavaScript.
//
// An explicit JavaScript request (either --js, or typescript explicitly set
// to false) wins unless TypeScript was also explicitly requested. Otherwise
// TypeScript is selected when requested explicitly or implied by an active
// preset. The fallback is JavaScript, the beginner-friendly default taken
// by the fullstack path.
func resolveLanguage(acc *RawOptions, explicit Bundle) bool {
	tsExplicit := explicit[KeyTypeScript] == true
	jsExplicit := explicit[KeyJavaScript] == true || explicit[KeyTypeScript] == false

	if jsExplicit && !tsExplicit {
		return false
	}
	if tsExplicit {
		return true
	}
	for _, p := range BuiltinPresets {
		if p.ImpliesTypeScript && p.active(acc) {
			return true
		}
	}
	return false
}
