// Package resolve derives the checker configuration for a single Rust
// source file: which crate root it compiles under, whether that unit is a
// binary or a library, and the flags a checker needs to build it in
// isolation. Every call re-derives from scratch; nothing is cached.
package resolve

import (
	"context"
	"fmt"
	"path/filepath"

	"rustcfg/internal/cargo"
	"rustcfg/internal/layout"
)

// Config is the checker configuration for one file. It is produced fresh
// per resolution and owned by the caller.
//
// BinaryName is non-empty exactly when Kind is cargo.TargetBin.
type Config struct {
	ProjectRoot    string
	CrateRoot      string
	Kind           cargo.TargetKind
	BinaryName     string
	CheckTests     bool
	LibSearchPaths []string
}

// Resolve derives the configuration for file by locating its project root,
// reading declared targets via `cargo read-manifest` (bounded by ctx), and
// reconciling manifest data with the layout conventions.
func Resolve(ctx context.Context, file string) (*Config, error) {
	abs, root, err := locate(file)
	if err != nil {
		return nil, err
	}
	targets, err := cargo.ReadTargets(ctx, root)
	if err != nil {
		return nil, err
	}
	return derive(abs, root, targets)
}

// ResolveOffline is Resolve without the cargo invocation: targets come
// from Cargo.toml and layout autodiscovery. For environments with no cargo
// binary on PATH; never used as a fallback for a failed read-manifest run.
func ResolveOffline(file string) (*Config, error) {
	abs, root, err := locate(file)
	if err != nil {
		return nil, err
	}
	targets, err := cargo.OfflineTargets(filepath.Join(root, cargo.ManifestName))
	if err != nil {
		return nil, err
	}
	return derive(abs, root, targets)
}

func locate(file string) (abs, root string, err error) {
	abs, err = filepath.Abs(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve %q: %w", file, err)
	}
	root, ok, err := cargo.FindProjectRoot(filepath.Dir(abs))
	if err != nil {
		return "", "", err
	}
	if !ok {
		return "", "", fmt.Errorf("%s: %w", file, ErrNoProject)
	}
	return abs, root, nil
}

// derive reconciles the layout classification with the matched manifest
// target. Target kind from the manifest always wins over path heuristics:
// a manifest can declare library-only or multi-binary layouts the
// conventions cannot capture.
func derive(file, root string, targets []cargo.Target) (*Config, error) {
	rel, err := filepath.Rel(root, file)
	if err != nil {
		return nil, fmt.Errorf("failed to relativize %q against %q: %w", file, root, err)
	}
	class := layout.Classify(rel)

	crateRoot := file
	if !class.IsCrateRoot() {
		found, ok, err := layout.FindCrateRoot(file, root)
		if err != nil {
			return nil, err
		}
		// Soft absence: leave CrateRoot empty and let the consumer decide.
		crateRoot = ""
		if ok {
			crateRoot = found
		}
	}

	matched := MatchTarget(file, targets)
	cfg := &Config{
		ProjectRoot: root,
		CrateRoot:   crateRoot,
		Kind:        matched.Kind,
		// An executable's main entry point would collide with the test
		// harness generation; everything else gets test code included so
		// in-crate tests compile.
		CheckTests: class != layout.Executable,
		LibSearchPaths: []string{
			filepath.Join(root, "target", "debug"),
			filepath.Join(root, "target", "debug", "deps"),
		},
	}
	if matched.Kind == cargo.TargetBin {
		cfg.BinaryName = matched.Name
	}
	return cfg, nil
}
