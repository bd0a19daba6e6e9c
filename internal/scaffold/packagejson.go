package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/exgen-dev/exgen/internal/install"
	"github.com/exgen-dev/exgen/internal/resolve"
)

// packageManifest is the package.json shape. Map keys are emitted sorted,
// which keeps the output stable across runs.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	License         string            `json:"license"`
}

// buildPackageJSON emits the package.json content for the project. The
// dependency maps come from the same pure computation the installer uses.
func buildPackageJSON(opts *resolve.ResolvedOptions, set install.DependencySet) ([]byte, error) {
	manifest := packageManifest{
		Name:            opts.Name,
		Version:         "1.0.0",
		Description:     "Express application generated with exgen",
		Main:            entryPoint(opts),
		Scripts:         scripts(opts),
		Dependencies:    toMap(set.Runtime),
		DevDependencies: toMap(set.Dev),
		License:         "MIT",
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode package.json: %w", err)
	}
	return append(data, '\n'), nil
}

// entryPoint returns the main field for the project language.
func entryPoint(opts *resolve.ResolvedOptions) string {
	if opts.IsTypeScript {
		return "dist/server.js"
	}
	return "src/server.js"
}

// scripts builds the npm scripts block from the resolved flags.
func scripts(opts *resolve.ResolvedOptions) map[string]string {
	s := map[string]string{}

	if opts.IsTypeScript {
		s["build"] = "tsc"
		s["start"] = "node dist/server.js"
		s["dev"] = "nodemon --exec ts-node src/server.ts"
	} else {
		s["start"] = "node src/server.js"
		s["dev"] = "nodemon src/server.js"
	}

	if opts.Testing {
		s["test"] = "jest --coverage"
	}
	if opts.Docker {
		s["docker:build"] = "docker build -t " + opts.Name + " ."
		s["docker:up"] = "docker compose up -d"
	}

	return s
}

// toMap converts a dependency list to the package.json map shape.
func toMap(deps []install.Dependency) map[string]string {
	m := make(map[string]string, len(deps))
	for _, d := range deps {
		m[d.Name] = d.Version
	}
	return m
}
