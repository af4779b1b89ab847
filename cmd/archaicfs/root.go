package main

import (
	"github.com/rwx-research/archaicfs/cmd/archaicfs/config"
	"github.com/rwx-research/archaicfs/internal/archaicfs"
	"github.com/rwx-research/archaicfs/internal/cli"
	"github.com/rwx-research/archaicfs/internal/fs"

	"github.com/spf13/cobra"
)

var (
	Debug bool

	service cli.Service

	rootCmd = &cobra.Command{
		Use:   "archaicfs",
		Short: "An in-memory filesystem simulator",
		Long: "An in-memory filesystem simulator.\n" +
			"Without a subcommand, starts a shell reading commands from stdin.",
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			service, err = cli.NewService(cli.Config{
				FileSystem: fs.Local{},
				NewSession: func() cli.Session { return archaicfs.New() },
			})
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       config.Version,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "enable debug output")
	_ = rootCmd.PersistentFlags().MarkHidden("debug")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)
}
