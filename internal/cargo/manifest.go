package cargo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

var (
	// ErrVirtualManifest marks a workspace-only manifest with no [package].
	ErrVirtualManifest = errors.New("manifest declares a workspace without a package")
	// ErrPackageNameMissing marks a [package] table without a name.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// Manifest is the subset of Cargo.toml this tool reads directly: the
// package identity plus any explicitly declared targets.
type Manifest struct {
	Path    string
	Root    string
	Name    string
	Edition string
	Lib     *TargetDecl
	Bins    []TargetDecl
}

// TargetDecl is an explicit [lib] or [[bin]] section.
type TargetDecl struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

type manifestDoc struct {
	Package struct {
		Name    string `toml:"name"`
		Edition string `toml:"edition"`
	} `toml:"package"`
	Lib TargetDecl   `toml:"lib"`
	Bin []TargetDecl `toml:"bin"`
}

// LoadManifest parses Cargo.toml at path without invoking cargo.
func LoadManifest(path string) (*Manifest, error) {
	var doc manifestDoc
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		if meta.IsDefined("workspace") {
			return nil, fmt.Errorf("%s: %w", path, ErrVirtualManifest)
		}
		return nil, fmt.Errorf("%s: missing [package]", path)
	}
	if strings.TrimSpace(doc.Package.Name) == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	m := &Manifest{
		Path:    path,
		Root:    filepath.Dir(path),
		Name:    doc.Package.Name,
		Edition: doc.Package.Edition,
		Bins:    doc.Bin,
	}
	if meta.IsDefined("lib") {
		lib := doc.Lib
		m.Lib = &lib
	}
	return m, nil
}

// OfflineTargets enumerates the manifest's targets from Cargo.toml plus
// cargo's layout autodiscovery (src/lib.rs, src/main.rs, src/bin/*.rs),
// without running the cargo binary. The library target, when present, comes
// first, matching read-manifest order. Opt-in only: this is never used as a
// fallback after a failed read-manifest run.
func OfflineTargets(manifestPath string) ([]Target, error) {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	var targets []Target

	libName := strings.ReplaceAll(m.Name, "-", "_")
	if m.Lib != nil {
		name := m.Lib.Name
		if name == "" {
			name = libName
		}
		rel := m.Lib.Path
		if rel == "" {
			rel = "src/lib.rs"
		}
		targets = append(targets, Target{
			Kind:    TargetLib,
			Name:    name,
			SrcPath: filepath.Join(m.Root, filepath.FromSlash(rel)),
		})
	} else if p := filepath.Join(m.Root, "src", "lib.rs"); fileExists(p) {
		targets = append(targets, Target{Kind: TargetLib, Name: libName, SrcPath: p})
	}

	claimed := make(map[string]bool)
	for _, b := range m.Bins {
		if b.Name == "" {
			return nil, fmt.Errorf("%s: [[bin]] section without a name", manifestPath)
		}
		rel := b.Path
		if rel == "" {
			rel = "src/bin/" + b.Name + ".rs"
		}
		src := filepath.Join(m.Root, filepath.FromSlash(rel))
		claimed[src] = true
		targets = append(targets, Target{Kind: TargetBin, Name: b.Name, SrcPath: src})
	}

	if p := filepath.Join(m.Root, "src", "main.rs"); fileExists(p) && !claimed[p] {
		targets = append(targets, Target{Kind: TargetBin, Name: m.Name, SrcPath: p})
	}
	binDir := filepath.Join(m.Root, "src", "bin")
	entries, err := os.ReadDir(binDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", binDir, err)
	}
	var discovered []Target
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".rs") {
			continue
		}
		src := filepath.Join(binDir, e.Name())
		if claimed[src] {
			continue
		}
		discovered = append(discovered, Target{
			Kind:    TargetBin,
			Name:    strings.TrimSuffix(e.Name(), ".rs"),
			SrcPath: src,
		})
	}
	sort.Slice(discovered, func(i, j int) bool { return discovered[i].Name < discovered[j].Name })
	targets = append(targets, discovered...)

	if len(targets) == 0 {
		return nil, fmt.Errorf("%s: %w", manifestPath, ErrNoTargets)
	}
	return targets, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
