package resolve

// PresetDefinition is a named, fixed bundle of option values representing a
// common project archetype. The catalog is static; presets are never created
// or mutated at runtime.
type PresetDefinition struct {
	// Name is the preset identifier, matching its activation flag.
	Name string

	// Description is a one-line human-readable summary.
	Description string

	// Example is a sample invocation shown by `exgen presets`.
	Example string

	// Bundle carries the option values the preset applies.
	Bundle Bundle

	// ImpliesTypeScript marks presets that pull the language decision
	// toward TypeScript when no explicit language flag is given.
	ImpliesTypeScript bool

	// active reports whether the preset's flag is set on the accumulator.
	active func(*RawOptions) bool
}

// BuiltinPresets is the preset catalog in fixed application priority order.
// When several presets are active at once, later entries overwrite earlier
// ones key by key; explicit flags are re-applied after all of them. The
// order is part of the contract and is exercised directly by tests.
var BuiltinPresets = []PresetDefinition{
	{
		Name:        "light",
		Description: "Lightweight TypeScript API with CORS only",
		Example:     "exgen new my-service --light",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyCORS:       true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.Light },
	},
	{
		Name:        "api",
		Description: "REST API with security, validation, docs, and tests",
		Example:     "exgen new my-api --api",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyValidation: true,
			KeySwagger:    true,
			KeyTesting:    true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.API },
	},
	{
		Name:        "fullstack",
		Description: "Server-rendered app with EJS views, MongoDB, and auth",
		Example:     "exgen new my-app --fullstack",
		Bundle: Bundle{
			KeyView:    "ejs",
			KeyCSS:     "css",
			KeyNoView:  false,
			KeyMongoDB: true,
			KeyAuth:    true,
			KeyTesting: true,
		},
		// Deliberately JavaScript: the fullstack path is the
		// beginner-friendly default.
		active: func(o *RawOptions) bool { return o.Fullstack },
	},
	{
		Name:        "microservice",
		Description: "Containerized service with Redis, rate limiting, and tests",
		Example:     "exgen new my-svc --microservice",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyDocker:     true,
			KeyRedis:      true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyRateLimit:  true,
			KeyTesting:    true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.Microservice },
	},
	{
		Name:        "startup",
		Description: "Product starter: MongoDB, auth, docs, security, Docker",
		Example:     "exgen new my-product --startup",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyMongoDB:    true,
			KeyAuth:       true,
			KeySwagger:    true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyValidation: true,
			KeyDocker:     true,
			KeyTesting:    true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.Startup },
	},
	{
		Name:        "min",
		Description: "Minimal production service: security headers and Docker",
		Example:     "exgen new my-service --min",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyDocker:     true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.Min },
	},
	{
		Name:        "prod",
		Description: "Full production stack: databases, auth, ELK, Docker, tests",
		Example:     "exgen new my-service --prod",
		Bundle: Bundle{
			KeyTypeScript: true,
			KeyNoView:     true,
			KeyMongoDB:    true,
			KeyRedis:      true,
			KeyAuth:       true,
			KeySwagger:    true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyRateLimit:  true,
			KeyValidation: true,
			KeyELK:        true,
			KeyDocker:     true,
			KeyTesting:    true,
		},
		ImpliesTypeScript: true,
		active:            func(o *RawOptions) bool { return o.Prod },
	},
	{
		Name:        "all",
		Description: "Every feature enabled, including views and both databases",
		Example:     "exgen new my-app --all",
		Bundle: Bundle{
			KeyView:       "ejs",
			KeyCSS:        "scss",
			KeyNoView:     false,
			KeyMongoDB:    true,
			KeyPostgres:   true,
			KeyRedis:      true,
			KeyAuth:       true,
			KeySwagger:    true,
			KeyCORS:       true,
			KeyHelmet:     true,
			KeyRateLimit:  true,
			KeyValidation: true,
			KeyELK:        true,
			KeyDocker:     true,
			KeyTesting:    true,
		},
		active: func(o *RawOptions) bool { return o.All },
	},
}

// LookupPreset returns the built-in preset with the given name.
func LookupPreset(name string) (PresetDefinition, bool) {
	for _, p := range BuiltinPresets {
		if p.Name == name {
			return p, true
		}
	}
	return PresetDefinition{}, false
}
