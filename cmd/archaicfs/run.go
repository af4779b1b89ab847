package main

import (
	"errors"
	"os"

	"github.com/rwx-research/archaicfs/internal/cli"

	"github.com/spf13/cobra"
)

var (
	ScriptFailure = errors.New("script failure")

	RunOutputFormat string

	runCmd = &cobra.Command{
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.RunScripts(cli.RunScriptsConfig{
				Paths:        args,
				Output:       os.Stdout,
				OutputFormat: RunOutputFormat,
			})
			if err != nil {
				return err
			}

			if result.Failed() {
				return ScriptFailure
			}

			return nil
		},
		Short: "Run session scripts, each against its own filesystem",
		Long: "Run session scripts, each against its own filesystem.\n" +
			"Takes a list of YAML scripts, or directories whose top-level YAML files are all run.",
		Use: "run [flags] <script|dir>...",
	}
)

func init() {
	runCmd.Flags().StringVarP(&RunOutputFormat, "output", "o", cli.ScriptOutputMultiLine, "output format: multiline, oneline, none")
}
