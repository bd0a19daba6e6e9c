package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/exgen-dev/exgen/internal/resolve"
)

// Engine allow-lists. Unknown names are fatal since every engine maps to a
// fixed dependency and template set.
var (
	ViewEngines = []string{"ejs", "pug", "hbs"}
	CSSEngines  = []string{"css", "scss", "less", "stylus"}
)

// Options checks the resolved flag combination for contradictions.
// Fatal: unknown view/css engine, no-view combined with an explicit view.
// Warnings: both language flags, multiple databases, multiple presets.
func Options(opts *resolve.ResolvedOptions) Result {
	var r Result
	r.Valid = true

	if opts.View != "" && !slices.Contains(ViewEngines, opts.View) {
		r.fail("view", opts.View, ErrInvalidOptions,
			"unsupported view engine %q (supported: %s)", opts.View, strings.Join(ViewEngines, ", "))
	}

	if opts.CSS != "" && !slices.Contains(CSSEngines, opts.CSS) {
		r.fail("css", opts.CSS, ErrInvalidOptions,
			"unsupported css engine %q (supported: %s)", opts.CSS, strings.Join(CSSEngines, ", "))
	}

	if opts.NoView && opts.View != "" {
		r.fail("view", opts.View, ErrInvalidOptions,
			"--no-view and --view are mutually exclusive")
	}

	if opts.Explicit[resolve.KeyTypeScript] == true && opts.Explicit[resolve.KeyJavaScript] == true {
		r.Warnings = append(r.Warnings,
			"both --ts and --js were given; TypeScript takes precedence")
	}

	dbCount := 0
	for _, enabled := range []bool{opts.MongoDB, opts.Postgres, opts.Redis} {
		if enabled {
			dbCount++
		}
	}
	if dbCount > 1 {
		r.Warnings = append(r.Warnings,
			"multiple databases selected; all of them will be configured")
	}

	if presets := opts.ActivePresets(); len(presets) > 1 {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("multiple presets active (%s); they merge in fixed priority order and explicit flags win",
				strings.Join(presets, ", ")))
	}

	return r
}
