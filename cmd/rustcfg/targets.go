package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rustcfg/internal/cargo"
)

var (
	targetsFormat  string
	targetsOffline bool
)

func init() {
	targetsCmd.Flags().StringVar(&targetsFormat, "format", "pretty", "output format (pretty|json|msgpack)")
	targetsCmd.Flags().BoolVar(&targetsOffline, "offline", false, "enumerate targets from Cargo.toml instead of running cargo")
}

var targetsCmd = &cobra.Command{
	Use:   "targets [dir]",
	Short: "List the build targets declared by the enclosing project",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(targetsFormat); err != nil {
			return err
		}
		startDir := "."
		if len(args) == 1 {
			startDir = args[0]
		}
		root, ok, err := cargo.FindProjectRoot(startDir)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", noCargoTomlMessage)
		}
		var targets []cargo.Target
		if targetsOffline {
			targets, err = cargo.OfflineTargets(filepath.Join(root, cargo.ManifestName))
		} else {
			ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
			defer cancel()
			targets, err = cargo.ReadTargets(ctx, root)
		}
		if err != nil {
			return err
		}
		return renderTargets(cmd.OutOrStdout(), targets, targetsFormat)
	},
}
