package cargo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	// ErrManifestRead means the cargo introspection process could not be
	// launched or exited non-zero.
	ErrManifestRead = errors.New("cargo read-manifest failed")
	// ErrManifestParse means the introspection output was not a well-formed
	// manifest document.
	ErrManifestParse = errors.New("cargo read-manifest output is malformed")
	// ErrNoTargets means the manifest declares no build targets at all.
	ErrNoTargets = errors.New("manifest declares no targets")
)

// cargoBin is the introspection executable; tests substitute a stub.
var cargoBin = "cargo"

// TargetKind distinguishes library-like targets from binaries.
type TargetKind uint8

const (
	TargetLib TargetKind = iota
	TargetBin
)

func (k TargetKind) String() string {
	if k == TargetBin {
		return "bin"
	}
	return "lib"
}

// Target is one build unit declared by the manifest. SrcPath is the
// absolute path of the target's crate root as reported by cargo.
type Target struct {
	Kind    TargetKind
	Name    string
	SrcPath string
}

// ReadTargets runs `cargo read-manifest` in root and returns the declared
// targets in manifest order (the first entry is the conventional default).
// The caller bounds the invocation through ctx; there is no retry.
func ReadTargets(ctx context.Context, root string) ([]Target, error) {
	cmd := exec.CommandContext(ctx, cargoBin, "read-manifest")
	cmd.Dir = root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%w: %v", ErrManifestRead, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrManifestRead, msg)
	}
	return parseReadManifest(stdout.Bytes())
}

type readManifestDoc struct {
	Targets []struct {
		Kind    []string `json:"kind"`
		Name    string   `json:"name"`
		SrcPath string   `json:"src_path"`
	} `json:"targets"`
}

func parseReadManifest(data []byte) ([]Target, error) {
	var doc readManifestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}
	if len(doc.Targets) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrManifestParse, ErrNoTargets)
	}
	targets := make([]Target, 0, len(doc.Targets))
	for _, t := range doc.Targets {
		// The kind field is a set; anything without "bin" checks as a library.
		kind := TargetLib
		for _, k := range t.Kind {
			if k == "bin" {
				kind = TargetBin
				break
			}
		}
		targets = append(targets, Target{
			Kind:    kind,
			Name:    t.Name,
			SrcPath: filepath.Clean(t.SrcPath),
		})
	}
	return targets, nil
}
