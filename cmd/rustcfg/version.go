package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rustcfg/internal/version"
)

var versionFormat string

func init() {
	versionCmd.Flags().StringVar(&versionFormat, "format", "pretty", "output format (pretty|json)")
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show rustcfg build fingerprints",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := strings.TrimSpace(version.Version)
		if v == "" {
			v = "dev"
		}
		payload := versionPayload{
			Tool:      "rustcfg",
			Version:   v,
			GitCommit: strings.TrimSpace(version.GitCommit),
			BuildDate: strings.TrimSpace(version.BuildDate),
		}
		switch strings.ToLower(versionFormat) {
		case "json":
			return renderJSON(cmd.OutOrStdout(), payload)
		case "pretty":
			fmt.Fprintf(cmd.OutOrStdout(), "rustcfg %s\n", payload.Version)
			if payload.GitCommit != "" {
				printField(cmd.OutOrStdout(), "commit", payload.GitCommit)
			}
			if payload.BuildDate != "" {
				printField(cmd.OutOrStdout(), "built", payload.BuildDate)
			}
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", versionFormat)
		}
	},
}
