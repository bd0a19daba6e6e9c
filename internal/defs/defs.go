// Package defs holds shared constants: file names, permissions, and
// subprocess timeouts used across the generator.
package defs

import (
	"io/fs"
	"time"
)

// File and directory permission bits for generated content.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Subprocess timeouts.
const (
	// DefaultInstallTimeout bounds a single package-manager install run.
	DefaultInstallTimeout = 5 * time.Minute

	// DefaultGitTimeout bounds a single git subprocess call.
	DefaultGitTimeout = 30 * time.Second
)

// Common generated file names.
const (
	PackageJSON    = "package.json"
	TSConfigJSON   = "tsconfig.json"
	EnvFile        = ".env"
	EnvExampleFile = ".env.example"
	GitignoreFile  = ".gitignore"
	ReadmeMD       = "README.md"
	Dockerfile     = "Dockerfile"
	DockerCompose  = "docker-compose.yml"
)

// Discovered configuration file names, in lookup order per directory.
var ConfigFileNames = []string{
	".exgenrc",
	"exgen.config.json",
	".exgen.yaml",
}

// Lockfile signatures mapping to package managers.
const (
	NpmLockfile  = "package-lock.json"
	YarnLockfile = "yarn.lock"
	PnpmLockfile = "pnpm-lock.yaml"
	BunLockfile  = "bun.lockb"
)
