package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rustcfg/internal/cargo"
)

var rootLocateCmd = &cobra.Command{
	Use:   "root [path]",
	Short: "Print the enclosing project root and package name",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		manifest, err := cargo.LoadManifest(filepath.Join(root, cargo.ManifestName))
		switch {
		case errors.Is(err, cargo.ErrVirtualManifest):
			printField(cmd.OutOrStdout(), "project root", root)
			printField(cmd.OutOrStdout(), "package", "(workspace manifest, no package)")
			return nil
		case err != nil:
			return err
		}
		printField(cmd.OutOrStdout(), "project root", root)
		printField(cmd.OutOrStdout(), "package", manifest.Name)
		if manifest.Edition != "" {
			printField(cmd.OutOrStdout(), "edition", manifest.Edition)
		}
		return nil
	},
}
