package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/ui"
)

// newConfigCmd builds the `config` command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Work with exgen configuration files",
	}

	exportCmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Write the current configuration as a file",
		Long: `Write the discovered configuration (or a starter configuration when
none exists) to the given path. The extension decides the format: .yaml and
.yml produce YAML, anything else produces JSON.

Examples:
  exgen config export                    writes ./exgen.config.json
  exgen config export ~/.exgen.yaml      writes YAML to the home directory`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigExport,
	}
	exportCmd.Flags().Bool("force", false, "Overwrite an existing file")

	configCmd.AddCommand(exportCmd)
	return configCmd
}

// starterConfig is exported when no configuration was discovered.
func starterConfig() *config.File {
	return &config.File{
		Defaults: map[string]any{
			"test": true,
		},
		Presets: map[string]map[string]any{
			"team-api": {
				"typescript": true,
				"no-view":    true,
				"cors":       true,
				"docker":     true,
			},
		},
		PackageManager: "",
	}
}

func runConfigExport(cmd *cobra.Command, args []string) error {
	console := ui.NewConsole(ui.DefaultTheme())

	path := "exgen.config.json"
	if len(args) > 0 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, pass --force to overwrite", path)
		}
	}

	loader := config.NewLoader(discardLogger())
	file, sourcePath, err := loader.Discover(config.SearchDirs()...)
	switch {
	case err == nil:
		console.Info("Exporting configuration discovered at %s", sourcePath)
	case errors.Is(err, config.ErrNotFound):
		file = starterConfig()
		console.Info("No configuration found, exporting a starter file")
	default:
		return fmt.Errorf("load configuration: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := config.Export(abs, file); err != nil {
		return fmt.Errorf("export configuration: %w", err)
	}

	console.Success("Wrote %s", abs)
	return nil
}
