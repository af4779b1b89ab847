package main

import (
	"os"

	tsize "github.com/kopoli/go-terminal-size"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rwx-research/archaicfs/internal/cli"
)

var (
	ShellPrompt string

	shellCmd = &cobra.Command{
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
		Short: "Start an interactive shell on a new filesystem",
		Long: "Start an interactive shell on a new filesystem.\n" +
			"Commands are read from stdin; when stdin is not a terminal they are read line by line without prompting.",
		Use: "shell [flags]",
	}
)

func init() {
	defaultPrompt := os.Getenv("ARCHAICFS_PROMPT")
	if defaultPrompt == "" {
		defaultPrompt = "archaicfs"
	}

	shellCmd.Flags().StringVar(&ShellPrompt, "prompt", defaultPrompt, "the prompt label shown before the working directory")
	rootCmd.Flags().StringVar(&ShellPrompt, "prompt", defaultPrompt, "the prompt label shown before the working directory")
}

func runShell() error {
	return service.Shell(cli.ShellConfig{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		Prompt:      ShellPrompt,
		Width:       terminalWidth(),
	})
}

// terminalWidth is zero when stdout is not a terminal, which makes ls print
// one entry per line.
func terminalWidth() int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0
	}

	size, err := tsize.GetSize()
	if err != nil {
		return 0
	}

	return size.Width
}
