package main

import (
	"os"

	"github.com/rwx-research/archaicfs/internal/cli"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.ExecLines(cli.ExecLinesConfig{
			Lines:  args,
			Stdout: os.Stdout,
			Width:  terminalWidth(),
		})
	},
	Short: "Run shell commands in order against a new filesystem",
	Long: "Run shell commands in order against a new filesystem.\n" +
		"Each argument is one command line. Execution stops at the first failing command.",
	Example: `  archaicfs exec -- "mkdir -p /usr/a" "cd /usr/a" "pwd"`,
	Use:     "exec [flags] -- <command>...",
}
