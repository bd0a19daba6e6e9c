package scaffold

import (
	"strings"

	"github.com/exgen-dev/exgen/internal/resolve"
	"github.com/exgen-dev/exgen/pkg/version"
)

// TemplateContext is the flattened data every template renders against.
// It mirrors ResolvedOptions plus a few derived values templates need.
type TemplateContext struct {
	Name        string
	Description string
	Version     string // exgen version that generated the project
	NodeVersion string
	Port        int

	IsTypeScript bool
	Ext          string // "ts" or "js"

	View   string
	CSS    string
	NoView bool

	MongoDB     bool
	Postgres    bool
	Redis       bool
	HasDatabase bool

	Auth       bool
	CORS       bool
	Helmet     bool
	RateLimit  bool
	Validation bool
	Swagger    bool
	ELK        bool
	Testing    bool
	Docker     bool

	PackageManager string
	Features       []string
	FeatureList    string // markdown bullet list for the README
}

// defaultPort is the listen port baked into generated projects.
const defaultPort = 3000

// nodeVersion is the Node base image tag for generated Dockerfiles.
const nodeVersion = "20"

// NewTemplateContext builds the render context from resolved options.
func NewTemplateContext(opts *resolve.ResolvedOptions) *TemplateContext {
	ext := "js"
	if opts.IsTypeScript {
		ext = "ts"
	}

	// Labels controlled by pipeline flags (--skip-git, --skip-install) stay
	// out of generated files. Two runs that differ only in pipeline flags
	// must produce byte-identical output.
	features := make([]string, 0, len(opts.Features))
	for _, f := range opts.Features {
		if f == "Git Repository" {
			continue
		}
		features = append(features, f)
	}

	var bullets strings.Builder
	for _, f := range features {
		bullets.WriteString("- ")
		bullets.WriteString(f)
		bullets.WriteString("\n")
	}

	return &TemplateContext{
		Name:           opts.Name,
		Description:    "Express application generated with exgen",
		Version:        version.GetVersion(),
		NodeVersion:    nodeVersion,
		Port:           defaultPort,
		IsTypeScript:   opts.IsTypeScript,
		Ext:            ext,
		View:           opts.View,
		CSS:            opts.CSS,
		NoView:         opts.NoView,
		MongoDB:        opts.MongoDB,
		Postgres:       opts.Postgres,
		Redis:          opts.Redis,
		HasDatabase:    opts.HasDatabase(),
		Auth:           opts.Auth,
		CORS:           opts.CORS,
		Helmet:         opts.Helmet,
		RateLimit:      opts.RateLimit,
		Validation:     opts.Validation,
		Swagger:        opts.Swagger,
		ELK:            opts.ELK,
		Testing:        opts.Testing,
		Docker:         opts.Docker,
		PackageManager: string(opts.PackageManager),
		Features:       features,
		FeatureList:    bullets.String(),
	}
}
