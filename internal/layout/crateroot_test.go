package layout

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte("// test\n"), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFindCrateRootPrefersLibOverMain(t *testing.T) {
	root := t.TempDir()
	lib := filepath.Join(root, "src", "lib.rs")
	writeFile(t, lib)
	writeFile(t, filepath.Join(root, "src", "main.rs"))
	module := filepath.Join(root, "src", "util", "helpers.rs")
	writeFile(t, module)

	got, ok, err := FindCrateRoot(module, root)
	if err != nil {
		t.Fatalf("FindCrateRoot: %v", err)
	}
	if !ok {
		t.Fatalf("expected crate root, got none")
	}
	if got != lib {
		t.Fatalf("FindCrateRoot = %q, want %q", got, lib)
	}
}

func TestFindCrateRootFallsBackToMain(t *testing.T) {
	root := t.TempDir()
	main := filepath.Join(root, "src", "main.rs")
	writeFile(t, main)
	module := filepath.Join(root, "src", "util", "helpers.rs")
	writeFile(t, module)

	got, ok, err := FindCrateRoot(module, root)
	if err != nil {
		t.Fatalf("FindCrateRoot: %v", err)
	}
	if !ok {
		t.Fatalf("expected crate root, got none")
	}
	if got != main {
		t.Fatalf("FindCrateRoot = %q, want %q", got, main)
	}
}

func TestFindCrateRootNearestWins(t *testing.T) {
	root := t.TempDir()
	outer := filepath.Join(root, "src", "lib.rs")
	inner := filepath.Join(root, "src", "sub", "lib.rs")
	writeFile(t, outer)
	writeFile(t, inner)
	module := filepath.Join(root, "src", "sub", "deep", "mod.rs")
	writeFile(t, module)

	got, ok, err := FindCrateRoot(module, root)
	if err != nil {
		t.Fatalf("FindCrateRoot: %v", err)
	}
	if !ok || got != inner {
		t.Fatalf("FindCrateRoot = %q (ok=%v), want %q", got, ok, inner)
	}
}

func TestFindCrateRootAbsenceIsSoft(t *testing.T) {
	root := t.TempDir()
	module := filepath.Join(root, "src", "orphan.rs")
	writeFile(t, module)

	got, ok, err := FindCrateRoot(module, root)
	if err != nil {
		t.Fatalf("FindCrateRoot: %v", err)
	}
	if ok || got != "" {
		t.Fatalf("FindCrateRoot = %q (ok=%v), want absent", got, ok)
	}
}

func TestFindCrateRootStopsAtProjectRoot(t *testing.T) {
	outer := t.TempDir()
	writeFile(t, filepath.Join(outer, "lib.rs"))
	root := filepath.Join(outer, "nested")
	module := filepath.Join(root, "src", "helpers.rs")
	writeFile(t, module)

	got, ok, err := FindCrateRoot(module, root)
	if err != nil {
		t.Fatalf("FindCrateRoot: %v", err)
	}
	if ok {
		t.Fatalf("FindCrateRoot escaped the project root: %q", got)
	}
}
