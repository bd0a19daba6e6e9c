package validate

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectPath checks whether the target directory can be materialized into.
// A plain file at the path or an unwritable parent is fatal; an existing
// non-empty directory only warns, because existing content is deliberately
// not protected.
func ProjectPath(path string) Result {
	var r Result

	info, err := os.Stat(path)
	switch {
	case err == nil && !info.IsDir():
		r.fail("path", path, ErrInvalidPath,
			"target path %q exists and is a file, not a directory", path)
		return r
	case err == nil:
		entries, readErr := os.ReadDir(path)
		if readErr != nil {
			r.fail("path", path, ErrInvalidPath,
				"target directory %q is not readable: %v", path, readErr)
			return r
		}
		if len(entries) > 0 {
			return Result{
				Valid: true,
				Warnings: []string{
					fmt.Sprintf("target directory %q is not empty; existing files may be overwritten", path),
				},
			}
		}
		return ok()
	case !os.IsNotExist(err):
		r.fail("path", path, ErrInvalidPath,
			"target path %q is not accessible: %v", path, err)
		return r
	}

	// Path does not exist: the nearest existing ancestor must be writable.
	parent := filepath.Dir(filepath.Clean(path))
	for {
		if _, statErr := os.Stat(parent); statErr == nil {
			break
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	if !isWritable(parent) {
		r.fail("path", path, ErrInvalidPath,
			"parent directory %q is not writable", parent)
		return r
	}

	return ok()
}

// isWritable probes a directory for write access by creating and removing
// a temp file. Probing beats parsing permission bits across platforms.
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".exgen-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
