package layout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FindCrateRoot locates the compilation unit an ordinary module file
// belongs to: the nearest ancestor directory holding lib.rs, or failing
// that, the nearest holding main.rs. The walk never leaves stopDir. A
// missing crate root is not an error — a freshly created or orphaned file
// legitimately may not belong to any crate yet.
func FindCrateRoot(file, stopDir string) (root string, ok bool, err error) {
	for _, rootName := range []string{"lib.rs", "main.rs"} {
		dir := filepath.Dir(file)
		for {
			candidate := filepath.Join(dir, rootName)
			if candidate != file {
				if _, statErr := os.Stat(candidate); statErr == nil {
					return candidate, true, nil
				} else if !errors.Is(statErr, os.ErrNotExist) {
					return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
				}
			}
			if dir == stopDir {
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return "", false, nil
}
