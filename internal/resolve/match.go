package resolve

import (
	"path/filepath"

	"rustcfg/internal/cargo"
)

// MatchTarget picks the declared target whose crate root equals file, or
// the first declared target when none matches exactly. The fallback is a
// deliberate heuristic: module children inherit the default target's
// identity, even in multi-binary layouts where the file might belong to a
// later binary. targets must be non-empty (a zero-target manifest is
// rejected when the manifest is read).
func MatchTarget(file string, targets []cargo.Target) cargo.Target {
	file = filepath.Clean(file)
	for _, t := range targets {
		if t.SrcPath == file {
			return t
		}
	}
	return targets[0]
}
