package main

import (
	"fmt"

	"github.com/rwx-research/archaicfs/internal/versions"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		suffix := ""
		if versions.IsDevelopmentBuild() {
			suffix = " (development build)"
		}

		fmt.Fprintf(cmd.OutOrStdout(), "archaicfs version %s%s\n", versions.GetCliCurrentVersion(), suffix)
		return nil
	},
	Short: "Print the archaicfs version",
	Use:   "version",
}
