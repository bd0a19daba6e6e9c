package resolve

import (
	"errors"
	"reflect"
	"slices"
	"testing"
)

// newTestResolver builds a resolver whose detector never finds a manager,
// so detection deterministically falls back to npm.
func newTestResolver(t *testing.T, cfg *ConfigSource) *Resolver {
	t.Helper()
	d := NewDetector(nil)
	d.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	return NewResolver(cfg, d, nil)
}

func TestResolveDefaultsToJavaScript(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	opts, err := r.Resolve("my-app", t.TempDir(), Bundle{}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if opts.IsTypeScript {
		t.Error("expected JavaScript default with no flags")
	}
	if !slices.Contains(opts.Features, "JavaScript") {
		t.Errorf("features = %v, want JavaScript label", opts.Features)
	}
}

func TestResolveEmptyName(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	if _, err := r.Resolve("", ".", Bundle{}, nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Resolve() error = %v, want ErrEmptyName", err)
	}
}

func TestResolveExplicitFlagsBeatPresets(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	// The prod preset implies TypeScript; an explicit typescript=false
	// must still win.
	opts, err := r.Resolve("svc", t.TempDir(), Bundle{KeyProd: true, KeyTypeScript: false}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if opts.IsTypeScript {
		t.Error("explicit typescript=false should override the prod preset")
	}

	// An explicit --js must win the same way.
	opts, err = r.Resolve("svc", t.TempDir(), Bundle{KeyProd: true, KeyJavaScript: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if opts.IsTypeScript {
		t.Error("explicit --js should override the prod preset")
	}
}

func TestResolveBothLanguageFlagsTypeScriptWins(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	opts, err := r.Resolve("svc", t.TempDir(), Bundle{KeyTypeScript: true, KeyJavaScript: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !opts.IsTypeScript {
		t.Error("simultaneous --ts and --js should resolve to TypeScript")
	}
}

func TestResolveAPIPreset(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	opts, err := r.Resolve("demo-api", t.TempDir(), Bundle{KeyAPI: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !opts.IsTypeScript {
		t.Error("api preset should imply TypeScript")
	}
	if !opts.NoView {
		t.Error("api preset should disable views")
	}
	for _, want := range []string{"TypeScript", "CORS", "Helmet", "Joi Validation", "Jest Testing"} {
		if !slices.Contains(opts.Features, want) {
			t.Errorf("features = %v, missing %q", opts.Features, want)
		}
	}
	for _, label := range opts.Features {
		if label == "EJS View Engine" {
			t.Errorf("api preset must not include a view engine, got %v", opts.Features)
		}
	}
}

func TestResolveFullstackPreset(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	opts, err := r.Resolve("my-app", t.TempDir(), Bundle{KeyFullstack: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if opts.IsTypeScript {
		t.Error("fullstack preset should default to JavaScript")
	}
	if opts.View != "ejs" {
		t.Errorf("view = %q, want ejs", opts.View)
	}
	if !opts.MongoDB {
		t.Error("fullstack preset should enable MongoDB")
	}
}

func TestResolveMultiplePresetsDeterministic(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	first, err := r.Resolve("svc", t.TempDir(), Bundle{KeyLight: true, KeyProd: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	for range 5 {
		again, err := r.Resolve("svc", first.Path, Bundle{KeyLight: true, KeyProd: true}, nil)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !reflect.DeepEqual(first.RawOptions, again.RawOptions) {
			t.Fatalf("resolution not deterministic: %+v vs %+v", first.RawOptions, again.RawOptions)
		}
	}

	// prod is later in the priority order than light, so its keys win.
	if !first.ELK || !first.Docker {
		t.Error("prod preset keys should survive the light+prod merge")
	}
	if got := first.ActivePresets(); !reflect.DeepEqual(got, []string{"light", "prod"}) {
		t.Errorf("ActivePresets() = %v, want [light prod]", got)
	}
}

func TestResolveConfigDefaultsLowestPrecedence(t *testing.T) {
	t.Parallel()
	cfg := &ConfigSource{
		Defaults: Bundle{KeyDocker: true, KeyView: "pug"},
	}
	r := newTestResolver(t, cfg)

	opts, err := r.Resolve("my-app", t.TempDir(), Bundle{KeyView: "ejs"}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !opts.Docker {
		t.Error("config default docker=true should apply")
	}
	if opts.View != "ejs" {
		t.Errorf("view = %q, explicit flag should beat config default", opts.View)
	}
}

func TestResolveUserPreset(t *testing.T) {
	t.Parallel()
	cfg := &ConfigSource{
		Presets: map[string]Bundle{
			"team": {KeyMongoDB: true, KeyAuth: true},
		},
	}
	r := newTestResolver(t, cfg)

	opts, err := r.Resolve("svc", t.TempDir(), Bundle{}, []string{"team"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !opts.MongoDB || !opts.Auth {
		t.Errorf("user preset bundle not applied: %+v", opts.RawOptions)
	}

	if _, err := r.Resolve("svc", t.TempDir(), Bundle{}, []string{"missing"}); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Resolve() error = %v, want ErrUnknownPreset", err)
	}
}

func TestResolveUnknownOptionKey(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	_, err := r.Resolve("svc", t.TempDir(), Bundle{Key("bogus"): true}, nil)
	if !errors.Is(err, ErrUnknownOption) {
		t.Errorf("Resolve() error = %v, want ErrUnknownOption", err)
	}
}

func TestPresetPriorityOrderIsFixed(t *testing.T) {
	t.Parallel()

	want := []string{"light", "api", "fullstack", "microservice", "startup", "min", "prod", "all"}
	var got []string
	for _, p := range BuiltinPresets {
		got = append(got, p.Name)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("preset order = %v, want %v", got, want)
	}
}

func TestNewBundleRejectsUnknownKeysAndTypes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings []Setting
		wantErr  bool
	}{
		{"valid", []Setting{{KeyMongoDB, true}, {KeyView, "ejs"}}, false},
		{"unknown key", []Setting{{Key("wat"), true}}, true},
		{"bad type", []Setting{{KeyMongoDB, 42}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewBundle(tt.settings)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewBundle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFeatureLabelOrder(t *testing.T) {
	t.Parallel()
	r := newTestResolver(t, nil)

	opts, err := r.Resolve("my-app", t.TempDir(), Bundle{KeyAll: true}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	// Language first, git last, databases between engines and security.
	if opts.Features[0] != "JavaScript" && opts.Features[0] != "TypeScript" {
		t.Errorf("first label = %q, want the language label", opts.Features[0])
	}
	if last := opts.Features[len(opts.Features)-1]; last != "Git Repository" {
		t.Errorf("last label = %q, want Git Repository", last)
	}
	idx := func(label string) int { return slices.Index(opts.Features, label) }
	if idx("EJS View Engine") == -1 || idx("SCSS Stylesheets") == -1 {
		t.Fatalf("all preset should include view and css labels, got %v", opts.Features)
	}
	if idx("MongoDB") < idx("SCSS Stylesheets") || idx("CORS") < idx("Redis") {
		t.Errorf("label order wrong: %v", opts.Features)
	}
}
