package resolve

import (
	"testing"

	"rustcfg/internal/cargo"
)

func TestMatchTarget(t *testing.T) {
	targets := []cargo.Target{
		{Kind: cargo.TargetLib, Name: "foo", SrcPath: "/proj/src/lib.rs"},
		{Kind: cargo.TargetBin, Name: "foo-cli", SrcPath: "/proj/src/bin/foo-cli.rs"},
	}

	tests := []struct {
		name string
		file string
		want cargo.Target
	}{
		{
			name: "exact match picks the declared target",
			file: "/proj/src/bin/foo-cli.rs",
			want: targets[1],
		},
		{
			name: "exact match on the library root",
			file: "/proj/src/lib.rs",
			want: targets[0],
		},
		// Module children inherit the first declared target's identity.
		// Deliberately imprecise: in multi-binary layouts the file might
		// belong to a later binary, but there is no exact path to prove it.
		{
			name: "no match falls back to first declared target",
			file: "/proj/src/helper.rs",
			want: targets[0],
		},
		{
			name: "unnormalized path still matches exactly",
			file: "/proj/src/bin/../bin/foo-cli.rs",
			want: targets[1],
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchTarget(tt.file, targets); got != tt.want {
				t.Fatalf("MatchTarget(%q) = %+v, want %+v", tt.file, got, tt.want)
			}
		})
	}
}
