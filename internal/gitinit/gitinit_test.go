package gitinit

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

func TestInitCreatesRepositoryWithCommit(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	warnings := NewInitializer(nil).Init(context.Background(), dir)
	for _, w := range warnings {
		t.Logf("warning: %s", w)
	}

	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		t.Fatalf(".git not created: %v", err)
	}

	out, err := execGit(context.Background(), dir, "log", "--oneline")
	if err != nil {
		t.Fatalf("git log: %v", err)
	}
	if out == "" {
		t.Error("expected an initial commit")
	}
}

func TestInitFailureIsNonFatal(t *testing.T) {
	requireGit(t)

	// A nonexistent directory makes every git call fail; Init must still
	// return warnings instead of panicking or erroring.
	warnings := NewInitializer(nil).Init(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if len(warnings) == 0 {
		t.Error("expected warnings for a failed git setup")
	}
}
