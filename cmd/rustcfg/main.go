package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rustcfg/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "rustcfg",
	Short: "Checker-configuration resolver for Rust source files",
	Long: `rustcfg resolves which Cargo build target a source file belongs to and
derives the configuration (crate root, crate kind, binary name, search
paths, test flag) needed to check that file in isolation. Editor
integrations invoke it per file and consume the emitted record.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupColor()
	},
}

var (
	flagColor   string
	flagTimeout time.Duration
)

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(rootLocateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "bound on the cargo invocation")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupColor() {
	switch flagColor {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
