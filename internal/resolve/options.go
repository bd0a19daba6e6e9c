// Package resolve merges raw CLI flags, discovered configuration, and named
// presets into the single resolved configuration that every downstream
// generation step consults.
package resolve

import (
	"fmt"
	"slices"
)

// Key identifies one raw option in the closed option enumeration.
type Key string

// Option keys. Bundles, wizard answers, and config defaults may only use
// these keys; anything else is rejected during application.
const (
	KeyTypeScript Key = "typescript"
	KeyJavaScript Key = "javascript"
	KeyView       Key = "view"
	KeyCSS        Key = "css"
	KeyNoView     Key = "no-view"
	KeyMongoDB    Key = "mongo"
	KeyPostgres   Key = "pg"
	KeyRedis      Key = "redis"
	KeyAuth       Key = "auth"
	KeyDocker     Key = "docker"
	KeySwagger    Key = "swagger"
	KeyCORS       Key = "cors"
	KeyHelmet     Key = "helmet"
	KeyRateLimit  Key = "rate-limit"
	KeyValidation Key = "validation"
	KeyELK        Key = "elk"
	KeyTesting    Key = "test"

	KeyAPI          Key = "api"
	KeyFullstack    Key = "fullstack"
	KeyMicroservice Key = "microservice"
	KeyStartup      Key = "startup"
	KeyLight        Key = "light"
	KeyMin          Key = "min"
	KeyProd         Key = "prod"
	KeyAll          Key = "all"

	KeySkipInstall Key = "skip-install"
	KeySkipGit     Key = "skip-git"
	KeyVerbose     Key = "verbose"
	KeyDryRun      Key = "dry-run"
)

// allKeys lists every valid option key.
var allKeys = []Key{
	KeyTypeScript, KeyJavaScript, KeyView, KeyCSS, KeyNoView,
	KeyMongoDB, KeyPostgres, KeyRedis,
	KeyAuth, KeyDocker, KeySwagger, KeyCORS, KeyHelmet, KeyRateLimit,
	KeyValidation, KeyELK, KeyTesting,
	KeyAPI, KeyFullstack, KeyMicroservice, KeyStartup, KeyLight,
	KeyMin, KeyProd, KeyAll,
	KeySkipInstall, KeySkipGit, KeyVerbose, KeyDryRun,
}

// IsValidKey reports whether name is a member of the option enumeration.
func IsValidKey(name Key) bool {
	return slices.Contains(allKeys, name)
}

// ValidKeys returns all valid option keys.
func ValidKeys() []Key {
	result := make([]Key, len(allKeys))
	copy(result, allKeys)
	return result
}

// Bundle is a sparse set of option values keyed by the option enumeration.
// Values are bool for toggles and string for the view/css engine keys.
// Sparseness is what makes shallow-merge semantics work: a bundle only
// carries the keys it intends to override.
type Bundle map[Key]any

// Setting is one tagged {key, value} pair. The interactive front-end emits
// a list of these instead of assigning dynamic map keys directly.
type Setting struct {
	Key   Key
	Value any
}

// NewBundle builds a Bundle from tagged settings, rejecting keys outside
// the option enumeration and values of the wrong type.
func NewBundle(settings []Setting) (Bundle, error) {
	b := make(Bundle, len(settings))
	for _, s := range settings {
		if !IsValidKey(s.Key) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, s.Key)
		}
		switch s.Value.(type) {
		case bool, string:
			b[s.Key] = s.Value
		default:
			return nil, fmt.Errorf("%w: key %q has unsupported type %T", ErrUnknownOption, s.Key, s.Value)
		}
	}
	return b, nil
}

// RawOptions is the dense accumulator shape produced by folding bundles.
// Every field defaults to its zero value; bundles overwrite fields they
// carry a key for.
type RawOptions struct {
	TypeScript bool
	JavaScript bool

	View   string
	CSS    string
	NoView bool

	MongoDB  bool
	Postgres bool
	Redis    bool

	Auth       bool
	Docker     bool
	Swagger    bool
	CORS       bool
	Helmet     bool
	RateLimit  bool
	Validation bool
	ELK        bool
	Testing    bool

	API          bool
	Fullstack    bool
	Microservice bool
	Startup      bool
	Light        bool
	Min          bool
	Prod         bool
	All          bool

	SkipInstall bool
	SkipGit     bool
	Verbose     bool
	DryRun      bool
}

// apply overwrites fields of o with the values carried by b.
// Unknown keys and mistyped values are reported, never silently dropped.
func (o *RawOptions) apply(b Bundle) error {
	for key, value := range b {
		if err := o.set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// set assigns one option value by key.
func (o *RawOptions) set(key Key, value any) error {
	if key == KeyView || key == KeyCSS {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: key %q expects a string, got %T", ErrUnknownOption, key, value)
		}
		if key == KeyView {
			o.View = s
		} else {
			o.CSS = s
		}
		return nil
	}

	v, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: key %q expects a bool, got %T", ErrUnknownOption, key, value)
	}

	switch key {
	case KeyTypeScript:
		o.TypeScript = v
	case KeyJavaScript:
		o.JavaScript = v
	case KeyNoView:
		o.NoView = v
	case KeyMongoDB:
		o.MongoDB = v
	case KeyPostgres:
		o.Postgres = v
	case KeyRedis:
		o.Redis = v
	case KeyAuth:
		o.Auth = v
	case KeyDocker:
		o.Docker = v
	case KeySwagger:
		o.Swagger = v
	case KeyCORS:
		o.CORS = v
	case KeyHelmet:
		o.Helmet = v
	case KeyRateLimit:
		o.RateLimit = v
	case KeyValidation:
		o.Validation = v
	case KeyELK:
		o.ELK = v
	case KeyTesting:
		o.Testing = v
	case KeyAPI:
		o.API = v
	case KeyFullstack:
		o.Fullstack = v
	case KeyMicroservice:
		o.Microservice = v
	case KeyStartup:
		o.Startup = v
	case KeyLight:
		o.Light = v
	case KeyMin:
		o.Min = v
	case KeyProd:
		o.Prod = v
	case KeyAll:
		o.All = v
	case KeySkipInstall:
		o.SkipInstall = v
	case KeySkipGit:
		o.SkipGit = v
	case KeyVerbose:
		o.Verbose = v
	case KeyDryRun:
		o.DryRun = v
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	return nil
}

// HasDatabase reports whether at least one database feature is enabled.
func (o *RawOptions) HasDatabase() bool {
	return o.MongoDB || o.Postgres || o.Redis
}

// ResolvedOptions is the authoritative configuration for one run.
// It is constructed once by Resolve and treated as read-only afterwards.
type ResolvedOptions struct {
	RawOptions

	// Name is the canonical project name.
	Name string

	// Path is the absolute target directory.
	Path string

	// PackageManager is the detected or configured manager.
	PackageManager PackageManager

	// IsTypeScript is the resolved language decision.
	IsTypeScript bool

	// Features lists human-readable enabled-feature labels in display order.
	Features []string

	// Explicit preserves the original explicit flag bundle for validation
	// (e.g. detecting a simultaneous --ts/--js request).
	Explicit Bundle
}

// ActivePresets returns the names of active named presets in priority order.
func (o *ResolvedOptions) ActivePresets() []string {
	var names []string
	for _, p := range BuiltinPresets {
		if p.active(&o.RawOptions) {
			names = append(names, p.Name)
		}
	}
	return names
}
