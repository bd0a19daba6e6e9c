// Package gitinit creates a git repository with an initial commit for a
// freshly generated project. Everything here is best-effort: a missing git
// binary or an unconfigured identity must never fail the run.
package gitinit

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
)

// ErrGitNotFound indicates the system git binary is not on PATH.
var ErrGitNotFound = errors.New("gitinit: git executable not found")

// initialCommitMessage is used for the first commit.
const initialCommitMessage = "Initial commit"

// Initializer sets up version control in a project directory.
type Initializer struct {
	logger *slog.Logger
}

// NewInitializer creates an Initializer.
func NewInitializer(logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Initializer{logger: logger.With("module", "git")}
}

// Init initializes a repository at dir, stages everything, and creates the
// initial commit. It returns the warnings accumulated along the way; the
// returned slice is empty on full success. It never returns an error.
func (i *Initializer) Init(ctx context.Context, dir string) []string {
	if _, err := exec.LookPath("git"); err != nil {
		return []string{fmt.Sprintf("git setup skipped: %v", ErrGitNotFound)}
	}

	var warnings []string

	if _, err := execGit(ctx, dir, "init"); err != nil {
		warnings = append(warnings, fmt.Sprintf("git init failed: %v", err))
		return warnings
	}
	i.logger.Debug("repository initialized", "dir", dir)

	if _, err := execGit(ctx, dir, "add", "-A"); err != nil {
		warnings = append(warnings, fmt.Sprintf("git add failed: %v", err))
		return warnings
	}

	if _, err := execGit(ctx, dir, "commit", "-m", initialCommitMessage); err != nil {
		// Most commonly user.name/user.email are unset. Retry with a
		// one-shot identity so the generated project still gets its
		// first commit.
		if _, retryErr := execGit(ctx, dir,
			"-c", "user.name=exgen",
			"-c", "user.email=exgen@localhost",
			"commit", "-m", initialCommitMessage,
		); retryErr != nil {
			warnings = append(warnings, fmt.Sprintf("initial commit failed: %v", err))
			return warnings
		}
		warnings = append(warnings, "git identity not configured; initial commit authored as exgen <exgen@localhost>")
	}

	i.logger.Debug("initial commit created", "dir", dir)
	return warnings
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, defs.DefaultGitTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
