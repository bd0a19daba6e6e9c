package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/exgen-dev/exgen/internal/defs"
)

// Loader discovers and parses the exgen configuration file.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{logger: logger.With("module", "config")}
}

// SearchDirs returns the default discovery directories: the working
// directory followed by the user's home directory.
func SearchDirs() []string {
	dirs := []string{"."}
	if cwd, err := os.Getwd(); err == nil {
		dirs[0] = cwd
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// Discover looks for a configuration file in each directory in order,
// trying each known file name per directory. It returns the parsed file
// and its path, or ErrNotFound when nothing was discovered. A file that
// exists but cannot be parsed is an error; silently ignoring a broken
// config would make flag behavior inexplicable.
func (l *Loader) Discover(dirs ...string) (*File, string, error) {
	for _, dir := range dirs {
		for _, name := range defs.ConfigFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			file, err := l.Load(path)
			if err != nil {
				return nil, path, err
			}
			l.logger.Debug("configuration discovered", "path", path)
			return file, path, nil
		}
	}

	return nil, "", ErrNotFound
}

// Load parses a configuration file. Files ending in .yaml or .yml are
// parsed as YAML; everything else as JSON.
func (l *Loader) Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	file := &File{}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidConfig)
		}
	} else {
		if err := json.Unmarshal(data, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, ErrInvalidConfig)
		}
	}

	return file, nil
}

// Export writes a configuration file. This is the only config write path.
// YAML and JSON are chosen by the destination extension, mirroring Load.
func Export(path string, file *File) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(file)
	} else {
		data, err = json.MarshalIndent(file, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// isYAML reports whether the path uses a YAML extension.
func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
