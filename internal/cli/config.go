package cli

import (
	"io"

	"github.com/rwx-research/archaicfs/internal/errors"
)

type Config struct {
	FileSystem FileSystem
	NewSession func() Session
}

func (c Config) Validate() error {
	if c.FileSystem == nil {
		return errors.New("missing file-system interface")
	}

	if c.NewSession == nil {
		return errors.New("missing session constructor")
	}

	return nil
}

type ExecConfig struct {
	Session Session
	Line    string
	Stdout  io.Writer
	// Width is the terminal width used to lay out ls output in columns. Zero
	// prints one entry per line.
	Width int
}

func (c ExecConfig) Validate() error {
	if c.Session == nil {
		return errors.New("missing session")
	}

	if c.Stdout == nil {
		return errors.New("missing output writer")
	}

	return nil
}

type ExecLinesConfig struct {
	Lines  []string
	Stdout io.Writer
	Width  int
}

func (c ExecLinesConfig) Validate() error {
	if len(c.Lines) == 0 {
		return errors.New("no commands given")
	}

	if c.Stdout == nil {
		return errors.New("missing output writer")
	}

	return nil
}

type ShellConfig struct {
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Interactive bool
	Prompt      string
	Width       int
}

func (c ShellConfig) Validate() error {
	if c.Stdin == nil {
		return errors.New("missing input reader")
	}

	if c.Stdout == nil || c.Stderr == nil {
		return errors.New("missing output writers")
	}

	return nil
}

const (
	ScriptOutputMultiLine = "multiline"
	ScriptOutputOneLine   = "oneline"
	ScriptOutputNone      = "none"
)

type RunScriptsConfig struct {
	Paths        []string
	Output       io.Writer
	OutputFormat string
}

func (c RunScriptsConfig) Validate() error {
	if len(c.Paths) == 0 {
		return errors.New("at least one script or directory of scripts must be given")
	}

	if c.Output == nil {
		return errors.New("missing output writer")
	}

	switch c.OutputFormat {
	case ScriptOutputMultiLine, ScriptOutputOneLine, ScriptOutputNone:
	default:
		return errors.Errorf("unknown output format %q, expected one of: multiline, oneline, none", c.OutputFormat)
	}

	return nil
}
