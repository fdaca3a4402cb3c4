// Package layout maps files to their role in cargo's conventional project
// layout and finds the compilation unit an ordinary module belongs to.
package layout

import (
	"path/filepath"
	"strings"
)

// Classification is the layout role of a file, derived purely from its
// path relative to the project root.
type Classification uint8

const (
	OrdinaryModule Classification = iota
	Executable
	Test
	Bench
	Example
	LibraryRoot
)

func (c Classification) String() string {
	switch c {
	case Executable:
		return "executable"
	case Test:
		return "test"
	case Bench:
		return "bench"
	case Example:
		return "example"
	case LibraryRoot:
		return "library-root"
	default:
		return "module"
	}
}

// IsCrateRoot reports whether the file is itself a compilation entry point.
// Ordinary modules belong to a crate root found elsewhere (FindCrateRoot).
func (c Classification) IsCrateRoot() bool {
	return c != OrdinaryModule
}

// The conventions are mutually exclusive; first matching rule wins. Kept as
// an ordered table so the priority stays auditable.
var rules = []struct {
	match func(rel string) bool
	class Classification
}{
	{func(rel string) bool { return rel == "src/main.rs" || strings.HasPrefix(rel, "src/bin/") }, Executable},
	{func(rel string) bool { return strings.HasPrefix(rel, "tests/") }, Test},
	{func(rel string) bool { return strings.HasPrefix(rel, "benches/") }, Bench},
	{func(rel string) bool { return strings.HasPrefix(rel, "examples/") }, Example},
	{func(rel string) bool { return rel == "src/lib.rs" }, LibraryRoot},
}

// Classify returns the layout role of a root-relative path.
func Classify(rel string) Classification {
	rel = filepath.ToSlash(rel)
	for _, r := range rules {
		if r.match(rel) {
			return r.class
		}
	}
	return OrdinaryModule
}
