package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/resolve"
	"github.com/exgen-dev/exgen/internal/ui"
)

// newPresetsCmd builds the `presets` command.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		Long: `List every built-in preset with its description and an example
invocation, followed by any presets defined in your config file.`,
		Args: cobra.NoArgs,
		RunE: runPresets,
	}
}

var presetTitle = cases.Title(language.English)

func runPresets(cmd *cobra.Command, _ []string) error {
	console := ui.NewConsole(ui.DefaultTheme())

	console.Plain("Built-in presets (applied in this order):")
	console.Plain("")
	for _, p := range resolve.BuiltinPresets {
		console.Plain("  %-14s %s", presetTitle.String(p.Name), p.Description)
		console.Plain("  %-14s %s", "", p.Example)
		console.Plain("")
	}

	loader := config.NewLoader(discardLogger())
	cfgFile, cfgPath, err := loader.Discover(config.SearchDirs()...)
	if err != nil {
		return nil
	}

	cfg, _ := cfgFile.Source()
	if len(cfg.Presets) == 0 {
		return nil
	}

	names := make([]string, 0, len(cfg.Presets))
	for name := range cfg.Presets {
		names = append(names, name)
	}
	sort.Strings(names)

	console.Plain("User presets from %s:", cfgPath)
	console.Plain("")
	for _, name := range names {
		console.Plain("  %-14s %s", name, fmt.Sprintf("exgen new my-app --preset %s", name))
	}
	return nil
}
