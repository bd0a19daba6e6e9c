package resolve

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/exgen-dev/exgen/internal/defs"
)

// PackageManager identifies one of the supported Node package managers.
type PackageManager string

const (
	Npm  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	Pnpm PackageManager = "pnpm"
	Bun  PackageManager = "bun"
)

// ValidPackageManagers lists the supported manager identifiers.
var ValidPackageManagers = []PackageManager{Npm, Yarn, Pnpm, Bun}

// IsValid reports whether m is a supported package manager.
func (m PackageManager) IsValid() bool {
	return slices.Contains(ValidPackageManagers, m)
}

// lockfileManagers maps lockfile signatures to managers.
var lockfileManagers = []struct {
	file    string
	manager PackageManager
}{
	{defs.NpmLockfile, Npm},
	{defs.YarnLockfile, Yarn},
	{defs.PnpmLockfile, Pnpm},
	{defs.BunLockfile, Bun},
}

// probeOrder is the fixed priority order for executable probes. npm is the
// universal fallback and is never probed.
var probeOrder = []PackageManager{Pnpm, Yarn, Bun}

// ProbeStatus reports the outcome of a manager availability probe.
type ProbeStatus int

const (
	// ProbeAvailable means the manager executable was found.
	ProbeAvailable ProbeStatus = iota
	// ProbeUnavailable means the probe failed; Reason says why.
	ProbeUnavailable
)

// Probe is the result of checking one package manager's availability.
// Failures are carried as data rather than collapsed into a bare boolean.
type Probe struct {
	Manager PackageManager
	Status  ProbeStatus
	Reason  string
}

// Available reports whether the probed manager can be used.
func (p Probe) Available() bool {
	return p.Status == ProbeAvailable
}

// Detector determines which package manager a run should use.
// Detection is best-effort and never fails: every probe error collapses to
// "unavailable" and the chain falls through to npm.
type Detector struct {
	logger   *slog.Logger
	lookPath func(string) (string, error) // swapped in tests
}

// NewDetector creates a Detector.
func NewDetector(logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Detector{logger: logger.With("module", "detect"), lookPath: exec.LookPath}
}

// Detect picks the package manager for targetPath: a lockfile signature at
// the target wins, then the configured preference, then the first available
// manager in probe order, then npm.
func (d *Detector) Detect(targetPath string, pref PackageManager) PackageManager {
	if m, ok := d.fromLockfile(targetPath); ok {
		d.logger.Debug("package manager from lockfile", "manager", m)
		return m
	}

	if pref != "" {
		if pref.IsValid() {
			d.logger.Debug("package manager from config preference", "manager", pref)
			return pref
		}
		d.logger.Warn("ignoring invalid package manager preference", "value", string(pref))
	}

	for _, m := range probeOrder {
		probe := d.probe(m)
		if probe.Available() {
			d.logger.Debug("package manager from probe", "manager", m)
			return m
		}
		d.logger.Debug("package manager unavailable", "manager", m, "reason", probe.Reason)
	}

	return Npm
}

// fromLockfile checks the target path for a lockfile signature.
func (d *Detector) fromLockfile(targetPath string) (PackageManager, bool) {
	for _, lm := range lockfileManagers {
		if _, err := os.Stat(filepath.Join(targetPath, lm.file)); err == nil {
			return lm.manager, true
		}
	}
	return "", false
}

// probe checks whether a manager executable is on PATH.
func (d *Detector) probe(m PackageManager) Probe {
	if _, err := d.lookPath(string(m)); err != nil {
		return Probe{Manager: m, Status: ProbeUnavailable, Reason: err.Error()}
	}
	return Probe{Manager: m, Status: ProbeAvailable}
}
