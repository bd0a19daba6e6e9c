package validate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/exgen-dev/exgen/internal/resolve"
)

func TestProjectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantWarn  bool
	}{
		{"simple", "my-app", true, false},
		{"with digits", "app2", true, false},
		{"scoped-ish dots", "my.app", true, false},
		{"empty", "", false, false},
		{"space", "My App", false, true},
		{"uppercase only", "My-App", true, true},
		{"leading dot", ".hidden", false, false},
		{"leading underscore", "_private", false, false},
		{"too long", strings.Repeat("a", 215), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := ProjectName(tt.input)
			if r.Valid != tt.wantValid {
				t.Errorf("ProjectName(%q).Valid = %v, want %v (errors: %v)",
					tt.input, r.Valid, tt.wantValid, r.Errors)
			}
			if (len(r.Warnings) > 0) != tt.wantWarn {
				t.Errorf("ProjectName(%q) warnings = %v, want warning: %v",
					tt.input, r.Warnings, tt.wantWarn)
			}
			if !r.Valid && len(r.Errors) == 0 {
				t.Error("invalid result must carry at least one error")
			}
		})
	}
}

func TestProjectPathNewDirectory(t *testing.T) {
	t.Parallel()

	r := ProjectPath(filepath.Join(t.TempDir(), "fresh"))
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("new path under writable parent should be valid, got %+v", r)
	}
}

func TestProjectPathExistingEmptyDirectory(t *testing.T) {
	t.Parallel()

	r := ProjectPath(t.TempDir())
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("existing empty directory should be valid with no warnings, got %+v", r)
	}
}

func TestProjectPathNonEmptyDirectoryWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	r := ProjectPath(dir)
	if !r.Valid {
		t.Fatalf("non-empty directory should still be valid, got %+v", r)
	}
	if len(r.Warnings) == 0 || !strings.Contains(r.Warnings[0], "overwritten") {
		t.Errorf("expected overwrite warning, got %v", r.Warnings)
	}
}

func TestProjectPathExistingFileFatal(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	r := ProjectPath(file)
	if r.Valid {
		t.Errorf("path occupied by a file should be fatal, got %+v", r)
	}
}

func TestOptionsNoViewConflict(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{Explicit: resolve.Bundle{}}
	opts.NoView = true
	opts.View = "ejs"

	r := Options(opts)
	if r.Valid {
		t.Errorf("no-view with a view engine should be fatal, got %+v", r)
	}
}

func TestOptionsUnknownEngines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		view string
		css  string
	}{
		{"bad view", "jade2", ""},
		{"bad css", "", "tailwindcss"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := &resolve.ResolvedOptions{Explicit: resolve.Bundle{}}
			opts.View = tt.view
			opts.CSS = tt.css
			if r := Options(opts); r.Valid {
				t.Errorf("unknown engine should be fatal, got %+v", r)
			}
		})
	}
}

func TestOptionsWarnings(t *testing.T) {
	t.Parallel()

	opts := &resolve.ResolvedOptions{
		Explicit: resolve.Bundle{
			resolve.KeyTypeScript: true,
			resolve.KeyJavaScript: true,
		},
	}
	opts.MongoDB = true
	opts.Postgres = true
	opts.Light = true
	opts.Prod = true

	r := Options(opts)
	if !r.Valid {
		t.Fatalf("warnings must not make the result invalid, got %+v", r)
	}
	if len(r.Warnings) != 3 {
		t.Errorf("expected language, database, and preset warnings, got %v", r.Warnings)
	}
}

func TestMergeAggregatesAcrossChecks(t *testing.T) {
	t.Parallel()

	merged := Merge(
		Result{Valid: true, Warnings: []string{"w1"}},
		Result{Valid: false, Errors: ValidationErrors{
			{Field: "name", Message: "e1", Wrapped: ErrInvalidName},
		}},
		Result{Valid: false, Errors: ValidationErrors{
			{Field: "view", Message: "e2", Wrapped: ErrInvalidOptions},
		}},
	)
	if merged.Valid {
		t.Error("merge of any invalid result must be invalid")
	}
	if len(merged.Errors) != 2 || len(merged.Warnings) != 1 {
		t.Errorf("merge should keep every error and warning, got %+v", merged)
	}

	err := merged.Err()
	if err == nil || !strings.Contains(err.Error(), "e1") || !strings.Contains(err.Error(), "e2") {
		t.Errorf("aggregated error should list every violation, got %v", err)
	}
	if !errors.Is(err, ErrInvalidName) || !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("aggregated error should match each violated sentinel, got %v", err)
	}
	if errors.Is(err, ErrInvalidPath) {
		t.Error("aggregated error must not match a sentinel that was never violated")
	}
}

func TestValidationErrorCarriesFieldAndValue(t *testing.T) {
	t.Parallel()

	r := ProjectName("My App")
	if r.Valid {
		t.Fatalf("name with a space should be fatal, got %+v", r)
	}

	var ve *ValidationError
	if !errors.As(r.Err(), &ve) {
		t.Fatalf("expected a structured validation error, got %v", r.Err())
	}
	if ve.Field != "name" || ve.Value != "My App" {
		t.Errorf("ValidationError = %+v, want field name and the offending value", ve)
	}
	if !errors.Is(ve, ErrInvalidName) {
		t.Errorf("name violation should wrap ErrInvalidName, got %v", ve.Wrapped)
	}
}

func TestProjectNameRejectsTilde(t *testing.T) {
	t.Parallel()

	r := ProjectName("my~app")
	if r.Valid {
		t.Fatalf("tilde is outside the npm name grammar, got %+v", r)
	}
	if !errors.Is(r.Err(), ErrInvalidName) {
		t.Errorf("expected ErrInvalidName, got %v", r.Err())
	}
}
