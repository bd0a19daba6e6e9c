package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/exgen-dev/exgen/internal/resolve"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiscoverJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".exgenrc", `{
  "defaults": {"docker": true, "view": "pug"},
  "presets": {"team": {"mongo": true, "auth": true}},
  "packageManager": "pnpm"
}`)

	l := NewLoader(nil)
	file, path, err := l.Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if filepath.Base(path) != ".exgenrc" {
		t.Errorf("path = %s, want .exgenrc", path)
	}

	src, warnings := file.Source()
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if src.Defaults[resolve.KeyDocker] != true || src.Defaults[resolve.KeyView] != "pug" {
		t.Errorf("defaults = %v", src.Defaults)
	}
	if src.Presets["team"][resolve.KeyMongoDB] != true {
		t.Errorf("presets = %v", src.Presets)
	}
	if src.PackageManager != resolve.Pnpm {
		t.Errorf("packageManager = %q, want pnpm", src.PackageManager)
	}
}

func TestDiscoverYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".exgen.yaml", `
defaults:
  helmet: true
packageManager: yarn
`)

	l := NewLoader(nil)
	file, _, err := l.Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	src, _ := file.Source()
	if src.Defaults[resolve.KeyHelmet] != true {
		t.Errorf("defaults = %v", src.Defaults)
	}
	if src.PackageManager != resolve.Yarn {
		t.Errorf("packageManager = %q, want yarn", src.PackageManager)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	t.Parallel()

	l := NewLoader(nil)
	_, _, err := l.Discover(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Discover() error = %v, want ErrNotFound", err)
	}
}

func TestDiscoverPrecedenceWithinDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, ".exgenrc", `{"packageManager": "npm"}`)
	writeFile(t, dir, "exgen.config.json", `{"packageManager": "bun"}`)

	l := NewLoader(nil)
	file, path, err := l.Discover(dir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if filepath.Base(path) != ".exgenrc" {
		t.Errorf("path = %s, .exgenrc should win within a directory", path)
	}
	if file.PackageManager != "npm" {
		t.Errorf("packageManager = %q, want npm", file.PackageManager)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, ".exgenrc", `{not json`)

	l := NewLoader(nil)
	if _, err := l.Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, want ErrInvalidConfig", err)
	}
}

func TestSourceSkipsUnknownKeysWithWarning(t *testing.T) {
	t.Parallel()

	file := &File{
		Defaults: map[string]any{
			"docker":   true,
			"turbofan": true,
			"mongo":    3,
		},
	}

	src, warnings := file.Source()
	if len(warnings) != 2 {
		t.Errorf("warnings = %v, want unknown-key and bad-type warnings", warnings)
	}
	if len(src.Defaults) != 1 || src.Defaults[resolve.KeyDocker] != true {
		t.Errorf("defaults = %v, want only docker kept", src.Defaults)
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := &File{
		Defaults:       map[string]any{"helmet": true},
		PackageManager: "pnpm",
	}

	for _, name := range []string{".exgenrc", ".exgen.yaml"} {
		path := filepath.Join(dir, name)
		if err := Export(path, original); err != nil {
			t.Fatalf("Export(%s) error = %v", name, err)
		}

		loaded, err := NewLoader(nil).Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if loaded.PackageManager != "pnpm" {
			t.Errorf("%s: packageManager = %q", name, loaded.PackageManager)
		}
		if loaded.Defaults["helmet"] != true {
			t.Errorf("%s: defaults = %v", name, loaded.Defaults)
		}
	}
}
