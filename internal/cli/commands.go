package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/pflag"

	"github.com/rwx-research/archaicfs/internal/archaicfs"
	"github.com/rwx-research/archaicfs/internal/errors"
)

// ErrExit is returned by Exec when the line asks the shell to stop.
var ErrExit = errors.New("exit")

type invocation struct {
	session Session
	stdout  io.Writer
	width   int
	args    []string
}

type command struct {
	usage   string
	summary string
	run     func(inv invocation) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"cat": {
			usage:   "cat PATH",
			summary: "print the content of a file",
			run:     runCat,
		},
		"cd": {
			usage:   "cd PATH",
			summary: "change the working directory",
			run:     runCd,
		},
		"exit": {
			usage:   "exit",
			summary: "leave the shell",
			run:     runExit,
		},
		"help": {
			usage:   "help",
			summary: "list the available commands",
			run:     runHelp,
		},
		"ls": {
			usage:   "ls [-1] [PATH]",
			summary: "list a directory in creation order",
			run:     runLs,
		},
		"mkdir": {
			usage:   "mkdir [-p] [--exist-ok] PATH",
			summary: "create a directory",
			run:     runMkdir,
		},
		"pwd": {
			usage:   "pwd",
			summary: "print the working directory",
			run:     runPwd,
		},
		"quit": {
			usage:   "quit",
			summary: "leave the shell",
			run:     runExit,
		},
		"write": {
			usage:   "write [--create | --create-if-not-exists] (--truncate | --append) PATH [CONTENT...]",
			summary: "write to a file, CONTENT words are joined by single spaces",
			run:     runWrite,
		},
	}
}

// parseLine splits a command line honoring shell quoting. Blank lines and
// comments yield no words.
func parseLine(line string) ([]string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	words, err := shellquote.Split(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse %q", line)
	}

	return words, nil
}

func newFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.SetInterspersed(false)
	return flags
}

func usageError(name string, cause error) error {
	usage := commands[name].usage
	if cause != nil {
		return errors.Errorf("%s\nusage: %s", cause, usage)
	}
	return errors.Errorf("usage: %s", usage)
}

func runCat(inv invocation) error {
	if len(inv.args) != 1 {
		return usageError("cat", nil)
	}

	content, err := inv.session.ReadFromFile(inv.args[0])
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(inv.stdout, content)
	return err
}

func runCd(inv invocation) error {
	if len(inv.args) != 1 {
		return usageError("cd", nil)
	}

	return inv.session.Cd(inv.args[0])
}

func runExit(inv invocation) error {
	return ErrExit
}

func runHelp(inv invocation) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		fmt.Fprintf(inv.stdout, "  %-8s %s\n", name, commands[name].summary)
		fmt.Fprintf(inv.stdout, "  %-8s   %s\n", "", commands[name].usage)
	}

	return nil
}

func runLs(inv invocation) error {
	flags := newFlagSet("ls")
	onePerLine := flags.BoolP("one", "1", false, "print one entry per line")
	if err := flags.Parse(inv.args); err != nil {
		return usageError("ls", err)
	}
	if flags.NArg() > 1 {
		return usageError("ls", nil)
	}

	target := "."
	if flags.NArg() == 1 {
		target = flags.Arg(0)
	}

	entries, err := inv.session.ReadDir(target)
	if err != nil {
		return err
	}

	width := inv.width
	if *onePerLine {
		width = 0
	}

	return writeColumns(inv.stdout, entryNames(entries), width)
}

func runMkdir(inv invocation) error {
	flags := newFlagSet("mkdir")
	parents := flags.BoolP("parents", "p", false, "create missing parent directories")
	existOK := flags.Bool("exist-ok", false, "succeed when the directory already exists")
	if err := flags.Parse(inv.args); err != nil {
		return usageError("mkdir", err)
	}
	if flags.NArg() != 1 {
		return usageError("mkdir", nil)
	}

	return inv.session.Mkdir(flags.Arg(0), *parents, *existOK)
}

func runPwd(inv invocation) error {
	if len(inv.args) != 0 {
		return usageError("pwd", nil)
	}

	_, err := fmt.Fprintln(inv.stdout, displayPath(inv.session.Cwd()))
	return err
}

func runWrite(inv invocation) error {
	flags := newFlagSet("write")
	create := flags.Bool("create", false, "fail unless the file is new")
	createIfNotExists := flags.Bool("create-if-not-exists", false, "create the file when it is missing")
	truncate := flags.Bool("truncate", false, "replace the content")
	appendContent := flags.Bool("append", false, "add to the end of the content")
	if err := flags.Parse(inv.args); err != nil {
		return usageError("write", err)
	}
	if flags.NArg() < 1 {
		return usageError("write", nil)
	}

	var options archaicfs.WriteOptions
	for option, set := range map[archaicfs.WriteOptions]bool{
		archaicfs.Create:            *create,
		archaicfs.CreateIfNotExists: *createIfNotExists,
		archaicfs.Truncate:          *truncate,
		archaicfs.Append:            *appendContent,
	} {
		if set {
			options |= option
		}
	}

	content := strings.Join(flags.Args()[1:], " ")
	return inv.session.WriteToFile(flags.Arg(0), content, options)
}

// displayPath shows the root as "/" rather than as the empty string.
func displayPath(cwd string) string {
	if cwd == "" {
		return archaicfs.Separator
	}
	return cwd
}

func entryNames(entries []archaicfs.DirEntry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
		if entry.IsDir() {
			names[i] += archaicfs.Separator
		}
	}
	return names
}

// writeColumns lays names out column-major like ls does, fitting width. A
// width of zero prints one name per line.
func writeColumns(w io.Writer, names []string, width int) error {
	if len(names) == 0 {
		return nil
	}

	longest := 0
	for _, name := range names {
		longest = max(longest, len(name))
	}
	columnWidth := longest + 2

	columns := 1
	if width > 0 {
		columns = max(1, width/columnWidth)
	}
	rows := (len(names) + columns - 1) / columns

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < columns; col++ {
			i := col*rows + row
			if i >= len(names) {
				break
			}
			if col > 0 {
				line.WriteString(strings.Repeat(" ", columnWidth-len(names[i-rows])))
			}
			line.WriteString(names[i])
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}
