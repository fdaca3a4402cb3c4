package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"rustcfg/internal/resolve"
)

const noCargoTomlMessage = "no Cargo.toml found\nthe file does not live inside a cargo project; nothing to configure"

var (
	resolveFormat  string
	resolveOffline bool
)

func init() {
	resolveCmd.Flags().StringVar(&resolveFormat, "format", "pretty", "output format (pretty|json|msgpack)")
	resolveCmd.Flags().BoolVar(&resolveOffline, "offline", false, "enumerate targets from Cargo.toml instead of running cargo")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Derive the checker configuration for a Rust source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(resolveFormat); err != nil {
			return err
		}
		var (
			cfg *resolve.Config
			err error
		)
		if resolveOffline {
			cfg, err = resolve.ResolveOffline(args[0])
		} else {
			ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
			defer cancel()
			cfg, err = resolve.Resolve(ctx, args[0])
		}
		if err != nil {
			if errors.Is(err, resolve.ErrNoProject) {
				return fmt.Errorf("%s", noCargoTomlMessage)
			}
			return err
		}
		return renderConfig(cmd.OutOrStdout(), cfg, resolveFormat)
	},
}
