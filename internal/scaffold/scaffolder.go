package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/exgen-dev/exgen/internal/defs"
	"github.com/exgen-dev/exgen/internal/install"
	"github.com/exgen-dev/exgen/internal/resolve"
)

// Result reports what Materialize created, in creation order.
type Result struct {
	Root         string
	CreatedDirs  []string
	CreatedFiles []string
}

// Scaffolder renders the embedded template catalog into a target directory.
type Scaffolder struct {
	renderer *Renderer
	logger   *slog.Logger
	onEntry  func(rel string)
}

// NewScaffolder creates a Scaffolder backed by the embedded templates.
func NewScaffolder(logger *slog.Logger) *Scaffolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scaffolder{
		renderer: NewRenderer(templatesFS()),
		logger:   logger.With("module", "scaffold"),
	}
}

// OnEntry registers a callback invoked with the relative path of each
// catalog entry as Materialize finishes it. One call per entry in Plan.
func (s *Scaffolder) OnEntry(fn func(rel string)) {
	s.onEntry = fn
}

func (s *Scaffolder) notify(rel string) {
	if s.onEntry != nil {
		s.onEntry(rel)
	}
}

// Materialize creates the project tree at opts.Path. Files are rendered in
// catalog order; the first failure aborts and is returned. Directories that
// already exist are reused, existing files are overwritten.
func (s *Scaffolder) Materialize(ctx context.Context, opts *resolve.ResolvedOptions) (*Result, error) {
	root := opts.Path
	result := &Result{Root: root}
	tctx := NewTemplateContext(opts)

	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, fmt.Errorf("create project root %s: %w", root, err)
	}
	result.CreatedDirs = append(result.CreatedDirs, root)

	for _, spec := range catalog(opts) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		dest, err := securePath(root, spec.dest)
		if err != nil {
			return result, err
		}

		content, err := s.renderer.Render(spec.src, tctx)
		if err != nil {
			return result, err
		}

		if err := s.writeFile(dest, content, result); err != nil {
			return result, err
		}
		s.notify(spec.dest)
		s.logger.Debug("file rendered", "template", spec.src, "dest", spec.dest)
	}

	manifest, err := buildPackageJSON(opts, install.Dependencies(opts))
	if err != nil {
		return result, err
	}
	dest, err := securePath(root, defs.PackageJSON)
	if err != nil {
		return result, err
	}
	if err := s.writeFile(dest, manifest, result); err != nil {
		return result, err
	}
	s.notify(defs.PackageJSON)

	for _, dir := range emptyDirs(opts) {
		abs, err := securePath(root, dir)
		if err != nil {
			return result, err
		}
		if err := s.mkdir(abs, result); err != nil {
			return result, err
		}
		s.notify(dir)
	}

	s.logger.Info("project materialized",
		"path", root,
		"files", len(result.CreatedFiles),
		"dirs", len(result.CreatedDirs))
	return result, nil
}

// Plan returns the relative paths Materialize would create, without
// touching the filesystem. Used by dry-run reporting.
func (s *Scaffolder) Plan(opts *resolve.ResolvedOptions) []string {
	var paths []string
	for _, spec := range catalog(opts) {
		paths = append(paths, spec.dest)
	}
	paths = append(paths, defs.PackageJSON)
	for _, dir := range emptyDirs(opts) {
		paths = append(paths, dir+string(filepath.Separator))
	}
	sort.Strings(paths)
	return paths
}

// RenderPreview renders a single catalog destination to a string without
// writing it. The dry-run README preview goes through here.
func (s *Scaffolder) RenderPreview(opts *resolve.ResolvedOptions, dest string) (string, error) {
	tctx := NewTemplateContext(opts)
	for _, spec := range catalog(opts) {
		if spec.dest != dest {
			continue
		}
		content, err := s.renderer.Render(spec.src, tctx)
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	return "", fmt.Errorf("%w: no catalog entry for %s", ErrTemplateNotFound, dest)
}

// writeFile creates parent directories as needed and writes content.
func (s *Scaffolder) writeFile(dest string, content []byte, result *Result) error {
	if err := s.mkdir(filepath.Dir(dest), result); err != nil {
		return err
	}
	if err := os.WriteFile(dest, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, dest)
	return nil
}

// mkdir creates a directory once, recording it in the result on first use.
func (s *Scaffolder) mkdir(dir string, result *Result) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	result.CreatedDirs = append(result.CreatedDirs, dir)
	return nil
}

// securePath joins rel onto root and rejects any result that escapes it.
func securePath(root, rel string) (string, error) {
	abs := filepath.Join(root, filepath.FromSlash(rel))
	cleanRoot := filepath.Clean(root)
	if abs != cleanRoot && !strings.HasPrefix(abs, cleanRoot+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	}
	return abs, nil
}
