package resolve

import "errors"

var (
	// ErrNoProject means no Cargo.toml exists in any ancestor directory of
	// the file; resolution cannot proceed and the consumer should skip
	// configuring the checker for this file.
	ErrNoProject = errors.New("no Cargo.toml found in any ancestor directory")
	// ErrNoCrateRoot means an ordinary module has no discoverable lib.rs or
	// main.rs ancestor. Resolve treats this as a soft absence (empty
	// CrateRoot in the returned config); the sentinel exists for callers
	// that want to detect the condition explicitly.
	ErrNoCrateRoot = errors.New("no crate root found for module")
)
