package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/exgen-dev/exgen/internal/cli/wizard"
	"github.com/exgen-dev/exgen/internal/config"
	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/gitinit"
	"github.com/exgen-dev/exgen/internal/install"
	"github.com/exgen-dev/exgen/internal/resolve"
	"github.com/exgen-dev/exgen/internal/scaffold"
	"github.com/exgen-dev/exgen/internal/ui"
	"github.com/exgen-dev/exgen/internal/validate"
)

// boolFlagKeys maps every boolean flag on `new` to its resolver key. The
// explicit bundle is built only from flags the user actually changed, so
// unset flags never shadow preset or config values.
var boolFlagKeys = map[string]resolve.Key{
	"ts":           resolve.KeyTypeScript,
	"js":           resolve.KeyJavaScript,
	"no-view":      resolve.KeyNoView,
	"mongo":        resolve.KeyMongoDB,
	"pg":           resolve.KeyPostgres,
	"redis":        resolve.KeyRedis,
	"auth":         resolve.KeyAuth,
	"docker":       resolve.KeyDocker,
	"swagger":      resolve.KeySwagger,
	"cors":         resolve.KeyCORS,
	"helmet":       resolve.KeyHelmet,
	"rate-limit":   resolve.KeyRateLimit,
	"validation":   resolve.KeyValidation,
	"elk":          resolve.KeyELK,
	"test":         resolve.KeyTesting,
	"api":          resolve.KeyAPI,
	"fullstack":    resolve.KeyFullstack,
	"microservice": resolve.KeyMicroservice,
	"startup":      resolve.KeyStartup,
	"light":        resolve.KeyLight,
	"min":          resolve.KeyMin,
	"prod":         resolve.KeyProd,
	"all":          resolve.KeyAll,
	"skip-install": resolve.KeySkipInstall,
	"skip-git":     resolve.KeySkipGit,
	"verbose":      resolve.KeyVerbose,
	"dry-run":      resolve.KeyDryRun,
}

// newNewCmd builds the `new` command with its full flag surface.
func newNewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Express project",
		Long: `Create a new Express project in a directory named after it.

With no name and no feature flags on a terminal, an interactive wizard
collects the configuration instead.

Examples:
  exgen new my-api --api               TypeScript REST API preset
  exgen new my-site --fullstack        server-rendered app with MongoDB
  exgen new my-svc --ts --pg --docker  explicit feature flags
  exgen new my-api --api --dry-run     show the plan without writing`,
		Args: cobra.MaximumNArgs(1),
		RunE: runNew,
	}

	f := cmd.Flags()

	f.Bool("ts", false, "Generate TypeScript")
	f.Bool("js", false, "Generate JavaScript")
	f.String("view", "", "View engine: ejs, pug, hbs")
	f.String("css", "", "Stylesheet engine: css, scss, less, stylus")
	f.Bool("no-view", false, "No view engine (API only)")

	f.Bool("mongo", false, "Add MongoDB via mongoose")
	f.Bool("pg", false, "Add PostgreSQL via pg")
	f.Bool("redis", false, "Add Redis via ioredis")

	f.Bool("auth", false, "Add JWT authentication")
	f.Bool("docker", false, "Add Dockerfile and docker-compose.yml")
	f.Bool("swagger", false, "Add Swagger API docs")
	f.Bool("cors", false, "Add CORS middleware")
	f.Bool("helmet", false, "Add Helmet security headers")
	f.Bool("rate-limit", false, "Add rate limiting middleware")
	f.Bool("validation", false, "Add Joi request validation")
	f.Bool("elk", false, "Add winston ELK logging stack")
	f.Bool("test", false, "Add Jest test setup")

	f.Bool("api", false, "Preset: REST API with security, validation, docs, tests")
	f.Bool("fullstack", false, "Preset: server-rendered app with MongoDB and auth")
	f.Bool("microservice", false, "Preset: containerized service")
	f.Bool("startup", false, "Preset: everything a small product needs")
	f.Bool("light", false, "Preset: minimal TypeScript API")
	f.Bool("min", false, "Preset: bare TypeScript API")
	f.Bool("prod", false, "Preset: production hardening")
	f.Bool("all", false, "Preset: every feature on")

	f.StringSlice("preset", nil, "Apply a named preset from your config file (repeatable)")

	f.Bool("skip-install", false, "Skip dependency installation")
	f.Bool("skip-git", false, "Skip git repository initialization")
	f.Bool("verbose", false, "Verbose diagnostic output")
	f.Bool("dry-run", false, "Print the plan without writing anything")

	return cmd
}

// collectExplicit builds the sparse explicit bundle from changed flags.
func collectExplicit(cmd *cobra.Command) resolve.Bundle {
	explicit := resolve.Bundle{}

	for name, key := range boolFlagKeys {
		if cmd.Flags().Changed(name) {
			v, _ := cmd.Flags().GetBool(name)
			explicit[key] = v
		}
	}
	if cmd.Flags().Changed("view") {
		v, _ := cmd.Flags().GetString("view")
		explicit[resolve.KeyView] = v
	}
	if cmd.Flags().Changed("css") {
		v, _ := cmd.Flags().GetString("css")
		explicit[resolve.KeyCSS] = v
	}

	return explicit
}

func runNew(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := newLogger(verbose)

	theme := ui.DefaultTheme()
	console := ui.NewConsole(theme)
	headless := ui.NewHeadlessManager()

	explicit := collectExplicit(cmd)
	userPresets, _ := cmd.Flags().GetStringSlice("preset")

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	// Discover configuration. A missing file is fine; a broken one is not.
	loader := config.NewLoader(logger)
	cfgFile, cfgPath, err := loader.Discover(config.SearchDirs()...)
	var cfg *resolve.ConfigSource
	switch {
	case err == nil:
		var warnings []string
		cfg, warnings = cfgFile.Source()
		for _, w := range warnings {
			console.Warn("%s: %s", cfgPath, w)
		}
		logger.Debug("configuration loaded", "path", cfgPath)
	case errors.Is(err, config.ErrNotFound):
		cfg = nil
	default:
		return fmt.Errorf("load configuration: %w", err)
	}

	// No name and no flags on a terminal runs the wizard.
	if name == "" && len(explicit) == 0 {
		if headless.IsHeadless() {
			return errors.New("project name required: pass a name or run on a terminal for the wizard")
		}
		answers, err := wizard.RunDefault(".", theme)
		if err != nil {
			return err
		}
		name = answers.ProjectName
		explicit = answers.Bundle()
		if pm := resolve.PackageManager(answers.PackageManager); pm.IsValid() {
			if cfg == nil {
				cfg = &resolve.ConfigSource{}
			}
			cfg.PackageManager = pm
		}
	}
	if name == "" {
		return errors.New("project name required")
	}

	resolver := resolve.NewResolver(cfg, resolve.NewDetector(logger), logger)
	opts, err := resolver.Resolve(name, name, explicit, userPresets)
	if err != nil {
		return err
	}

	result := validate.Merge(
		validate.ProjectName(opts.Name),
		validate.ProjectPath(opts.Path),
		validate.Options(opts),
	)
	for _, w := range result.Warnings {
		console.Warn("%s", w)
	}
	if !result.Valid {
		for _, e := range result.Errors {
			console.Error("%s", e)
		}
		return result.Err()
	}

	scaffolder := scaffold.NewScaffolder(logger)

	if opts.DryRun {
		return reportDryRun(console, headless, scaffolder, opts)
	}

	progress := ui.NewProgress(theme, headless)

	bar := progress.Start("Creating "+opts.Name, len(scaffolder.Plan(opts)))
	scaffolder.OnEntry(func(rel string) {
		bar.SetTitle(rel)
		bar.Increment(1)
	})
	created, err := scaffolder.Materialize(cmd.Context(), opts)
	bar.Done()
	if err != nil {
		return fmt.Errorf("materialize project: %w", err)
	}
	console.Success("Created %d files in %s", len(created.CreatedFiles), opts.Path)

	deps := install.Dependencies(opts)
	if opts.SkipInstall {
		console.Info("Skipping dependency installation")
	} else {
		sp := progress.Spinner(fmt.Sprintf("Installing dependencies with %s", opts.PackageManager))
		err := install.NewRunner(logger).Install(cmd.Context(), opts, deps)
		sp.Stop()
		if err != nil {
			console.Warn("Dependency installation failed: %v", err)
			console.Warn("Run the install manually: cd %s && %s install", opts.Name, opts.PackageManager)
		} else {
			console.Success("Installed %d runtime and %d dev dependencies",
				len(deps.Runtime), len(deps.Dev))
		}
	}

	if opts.SkipGit {
		console.Info("Skipping git initialization")
	} else {
		for _, w := range gitinit.NewInitializer(logger).Init(cmd.Context(), opts.Path) {
			console.Warn("%s", w)
		}
	}

	console.Success("%s is ready", opts.Name)
	console.Plain("")
	console.Plain("  Features: %s", strings.Join(opts.Features, ", "))
	console.Plain("")
	console.Plain("  Next steps:")
	console.Plain("    cd %s", opts.Name)
	if opts.SkipInstall {
		console.Plain("    %s install", opts.PackageManager)
	}
	console.Plain("    %s run dev", opts.PackageManager)
	return nil
}

// reportDryRun prints the planned file list and, on a terminal, a rendered
// preview of the README that would be generated.
func reportDryRun(console *ui.Console, headless *ui.HeadlessManager, s *scaffold.Scaffolder, opts *resolve.ResolvedOptions) error {
	console.Info("Dry run: nothing will be written")
	console.Plain("")
	console.Plain("Project %s at %s (%s)", opts.Name, opts.Path, opts.PackageManager)
	console.Plain("Features: %s", strings.Join(opts.Features, ", "))
	console.Plain("")
	for _, p := range s.Plan(opts) {
		console.Plain("  %s", p)
	}

	readme, err := s.RenderPreview(opts, defs.ReadmeMD)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	if headless.IsHeadless() {
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return nil
	}
	rendered, err := r.Render(readme)
	if err != nil {
		return nil
	}
	console.Plain("")
	console.Plain("%s", rendered)
	return nil
}
