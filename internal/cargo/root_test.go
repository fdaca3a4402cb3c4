package cargo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFindCargoTomlNearestAncestorWins(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"outer\"\n")
	inner := filepath.Join(root, "member")
	innerManifest := writeManifest(t, inner, "[package]\nname = \"inner\"\n")
	deep := filepath.Join(inner, "src", "util")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, ok, err := FindCargoToml(deep)
	if err != nil {
		t.Fatalf("FindCargoToml: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest, found none")
	}
	if got != innerManifest {
		t.Fatalf("FindCargoToml = %q, want %q", got, innerManifest)
	}
}

func TestFindProjectRootNotFound(t *testing.T) {
	dir := t.TempDir()
	root, ok, err := FindProjectRoot(dir)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if ok || root != "" {
		t.Fatalf("FindProjectRoot = %q (ok=%v), want not found", root, ok)
	}
}

func TestFindProjectRootReturnsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")
	root, ok, err := FindProjectRoot(dir)
	if err != nil {
		t.Fatalf("FindProjectRoot: %v", err)
	}
	if !ok || root != dir {
		t.Fatalf("FindProjectRoot = %q (ok=%v), want %q", root, ok, dir)
	}
}
