package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/resolve"
)

// Sentinel errors for installation.
var (
	// ErrManagerNotFound indicates the package manager executable is absent.
	ErrManagerNotFound = errors.New("install: package manager not found")

	// ErrInstallTimeout indicates an install subprocess exceeded its timeout.
	ErrInstallTimeout = errors.New("install: timed out")
)

// Runner installs dependency sets via package-manager subprocesses.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{logger: logger.With("module", "install")}
}

// Install runs one subprocess per dependency class in the project
// directory. A failure in the runtime class aborts before the dev class;
// the caller decides whether the overall run proceeds without installs.
func (r *Runner) Install(ctx context.Context, opts *resolve.ResolvedOptions, set DependencySet) error {
	if len(set.Runtime) > 0 {
		if err := r.installClass(ctx, opts, set.Runtime, false); err != nil {
			return err
		}
	}
	if len(set.Dev) > 0 {
		if err := r.installClass(ctx, opts, set.Dev, true); err != nil {
			return err
		}
	}
	return nil
}

// installClass installs one dependency class with a bounded timeout.
func (r *Runner) installClass(ctx context.Context, opts *resolve.ResolvedOptions, deps []Dependency, dev bool) error {
	managerPath, err := exec.LookPath(string(opts.PackageManager))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrManagerNotFound, opts.PackageManager)
	}

	args := installArgs(opts.PackageManager, dev)
	for _, d := range deps {
		args = append(args, d.Name+"@"+d.Version)
	}

	class := "runtime"
	if dev {
		class = "dev"
	}
	r.logger.Debug("installing dependencies",
		"manager", opts.PackageManager,
		"class", class,
		"count", len(deps),
	)

	runCtx, cancel := context.WithTimeout(ctx, defs.DefaultInstallTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, managerPath, args...)
	cmd.Dir = opts.Path
	cmd.Env = append(os.Environ(), "NO_COLOR=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s install of %d %s dependencies exceeded %s",
				ErrInstallTimeout, opts.PackageManager, len(deps), class, defs.DefaultInstallTimeout)
		}
		stderrStr := strings.TrimSpace(stderr.String())
		return fmt.Errorf("%s %s: %s: %w", opts.PackageManager, class, stderrStr, err)
	}

	r.logger.Debug("dependencies installed", "class", class)
	return nil
}

// installArgs returns the manager-specific install subcommand for a
// dependency class.
func installArgs(m resolve.PackageManager, dev bool) []string {
	switch m {
	case resolve.Yarn:
		if dev {
			return []string{"add", "--dev"}
		}
		return []string{"add"}
	case resolve.Pnpm:
		if dev {
			return []string{"add", "--save-dev"}
		}
		return []string{"add"}
	case resolve.Bun:
		if dev {
			return []string{"add", "--dev"}
		}
		return []string{"add"}
	default: // npm
		if dev {
			return []string{"install", "--save-dev"}
		}
		return []string{"install", "--save"}
	}
}
