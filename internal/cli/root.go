// Package cli provides the Cobra command tree for exgen. This is the
// composition root: commands construct the resolver, validator, and
// collaborators here and nowhere else.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/pkg/version"
)

// newRootCmd assembles the full command tree. Commands are built fresh so
// tests can execute isolated trees without shared flag state.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exgen",
		Short: "exgen: Express project generator",
		Long: `exgen scaffolds production-ready Express applications.

It resolves feature flags and presets into a single project configuration,
validates it, materializes the file tree from embedded templates, installs
dependencies with your package manager, and initializes a git repository.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("exgen %s\n", version.GetVersion()))

	cmd.AddCommand(newNewCmd(), newPresetsCmd(), newConfigCmd())
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

// newLogger builds the shared slog logger. Verbose mode enables debug
// records; otherwise only warnings and errors reach stderr.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// discardLogger is used by commands with no diagnostic output of their own.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
