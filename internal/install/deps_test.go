package install

import (
	"reflect"
	"testing"

	"github.com/exgen-dev/exgen/internal/resolve"
)

func names(deps []Dependency) []string {
	out := make([]string, len(deps))
	for i, d := range deps {
		out[i] = d.Name
	}
	return out
}

func contains(deps []Dependency, name string) bool {
	for _, d := range deps {
		if d.Name == name {
			return true
		}
	}
	return false
}

func TestDependenciesBaseline(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{}
	set := Dependencies(opts)

	for _, want := range []string{"express", "dotenv", "morgan"} {
		if !contains(set.Runtime, want) {
			t.Errorf("runtime deps %v missing %q", names(set.Runtime), want)
		}
	}
	if !contains(set.Dev, "nodemon") {
		t.Errorf("dev deps %v missing nodemon", names(set.Dev))
	}
}

func TestDependenciesMongoAuthTypeScript(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{IsTypeScript: true}
	opts.MongoDB = true
	opts.Auth = true

	set := Dependencies(opts)

	for _, want := range []string{"mongoose", "jsonwebtoken", "bcryptjs"} {
		if !contains(set.Runtime, want) {
			t.Errorf("runtime deps %v missing %q", names(set.Runtime), want)
		}
	}
	for _, want := range []string{"typescript", "ts-node", "@types/node", "@types/express", "@types/jsonwebtoken", "@types/bcryptjs"} {
		if !contains(set.Dev, want) {
			t.Errorf("dev deps %v missing %q", names(set.Dev), want)
		}
	}
}

func TestDependenciesIdempotent(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{IsTypeScript: true}
	opts.MongoDB = true
	opts.Auth = true
	opts.Testing = true

	first := Dependencies(opts)
	for range 3 {
		if again := Dependencies(opts); !reflect.DeepEqual(first, again) {
			t.Fatalf("dependency computation not idempotent: %v vs %v", first, again)
		}
	}
}

func TestDependenciesViewAndCSSEngines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		view    string
		css     string
		wantRun string
		wantDev string
	}{
		{"ejs", "scss", "ejs", "sass"},
		{"pug", "less", "pug", "less"},
		{"hbs", "stylus", "hbs", "stylus"},
	}

	for _, tt := range tests {
		t.Run(tt.view, func(t *testing.T) {
			t.Parallel()
			opts := &resolve.ResolvedOptions{}
			opts.View = tt.view
			opts.CSS = tt.css

			set := Dependencies(opts)
			if !contains(set.Runtime, tt.wantRun) {
				t.Errorf("runtime deps %v missing %q", names(set.Runtime), tt.wantRun)
			}
			if !contains(set.Dev, tt.wantDev) {
				t.Errorf("dev deps %v missing %q", names(set.Dev), tt.wantDev)
			}
		})
	}
}

func TestDependenciesNoViewSkipsEngines(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{}
	opts.NoView = true
	opts.View = ""
	opts.CSS = "scss"

	set := Dependencies(opts)
	if contains(set.Runtime, "ejs") || contains(set.Dev, "sass") {
		t.Errorf("no-view project should carry no engine deps: %v / %v",
			names(set.Runtime), names(set.Dev))
	}
}

func TestDependenciesTestingByLanguage(t *testing.T) {
	t.Parallel()

	js := &resolve.ResolvedOptions{}
	js.Testing = true
	jsSet := Dependencies(js)
	if !contains(jsSet.Dev, "jest") || !contains(jsSet.Dev, "supertest") {
		t.Errorf("js testing deps %v", names(jsSet.Dev))
	}
	if contains(jsSet.Dev, "ts-jest") {
		t.Error("ts-jest should not appear for JavaScript projects")
	}

	ts := &resolve.ResolvedOptions{IsTypeScript: true}
	ts.Testing = true
	tsSet := Dependencies(ts)
	for _, want := range []string{"jest", "ts-jest", "@types/jest", "@types/supertest"} {
		if !contains(tsSet.Dev, want) {
			t.Errorf("ts testing deps %v missing %q", names(tsSet.Dev), want)
		}
	}
}

func TestInstallArgsPerManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		manager resolve.PackageManager
		dev     bool
		want    []string
	}{
		{resolve.Npm, false, []string{"install", "--save"}},
		{resolve.Npm, true, []string{"install", "--save-dev"}},
		{resolve.Yarn, true, []string{"add", "--dev"}},
		{resolve.Pnpm, false, []string{"add"}},
		{resolve.Bun, true, []string{"add", "--dev"}},
	}

	for _, tt := range tests {
		if got := installArgs(tt.manager, tt.dev); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("installArgs(%s, %v) = %v, want %v", tt.manager, tt.dev, got, tt.want)
		}
	}
}
