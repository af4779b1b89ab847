package cli

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/sync/errgroup"

	"github.com/rwx-research/archaicfs/internal/errors"
	"github.com/rwx-research/archaicfs/internal/messages"
	"github.com/rwx-research/archaicfs/internal/versions"
)

// Service holds the main business logic of the CLI.
type Service struct {
	Config
}

func NewService(cfg Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return Service{}, errors.Wrap(err, "validation failed")
	}

	return Service{cfg}, nil
}

// Exec runs a single shell command line against a session.
func (s Service) Exec(cfg ExecConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	words, err := parseLine(cfg.Line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}

	cmd, ok := commands[words[0]]
	if !ok {
		return errors.Errorf("unknown command %q, try `help`", words[0])
	}

	return cmd.run(invocation{
		session: cfg.Session,
		stdout:  cfg.Stdout,
		width:   cfg.Width,
		args:    words[1:],
	})
}

// ExecLines runs command lines in order against a new session and stops at
// the first failure.
func (s Service) ExecLines(cfg ExecLinesConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	session := s.NewSession()
	for _, line := range cfg.Lines {
		err := s.Exec(ExecConfig{Session: session, Line: line, Stdout: cfg.Stdout, Width: cfg.Width})
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "command %q failed", line)
		}
	}

	return nil
}

// Shell reads command lines until EOF or exit. Failed commands are reported
// on Stderr and do not end the shell.
func (s Service) Shell(cfg ShellConfig) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "validation failed")
	}

	session := s.NewSession()
	next := s.lineReader(cfg, session)

	for {
		line, err := next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		err = s.Exec(ExecConfig{Session: session, Line: line, Stdout: cfg.Stdout, Width: cfg.Width})
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(cfg.Stderr, "Error: %s\n", err)
		}
	}
}

func (s Service) lineReader(cfg ShellConfig, session Session) func() (string, error) {
	if !cfg.Interactive {
		scanner := bufio.NewScanner(cfg.Stdin)
		return func() (string, error) {
			if scanner.Scan() {
				return scanner.Text(), nil
			}
			if err := scanner.Err(); err != nil {
				return "", errors.Wrap(err, "unable to read commands")
			}
			return "", io.EOF
		}
	}

	stdin := io.NopCloser(cfg.Stdin)
	stdout := nopWriteCloser{cfg.Stdout}
	return func() (string, error) {
		prompt := promptui.Prompt{
			Label:  fmt.Sprintf("%s:%s", cfg.Prompt, displayPath(session.Cwd())),
			Stdin:  stdin,
			Stdout: stdout,
			Templates: &promptui.PromptTemplates{
				Prompt:  "{{ . }}$ ",
				Valid:   "{{ . }}$ ",
				Invalid: "{{ . }}$ ",
				Success: "{{ . }}$ ",
			},
		}

		line, err := prompt.Run()
		if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
			return "", io.EOF
		}
		return line, err
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// RunScripts runs every session script, each against its own filesystem, and
// reports the outcomes in the order the scripts were given.
func (s Service) RunScripts(cfg RunScriptsConfig) (*RunScriptsResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}

	paths, err := s.scriptPaths(cfg.Paths)
	if err != nil {
		return nil, err
	}

	results := make([]ScriptResult, len(paths))
	var group errgroup.Group
	for i, scriptPath := range paths {
		group.Go(func() error {
			contents, err := s.readScript(scriptPath)
			if err != nil {
				return err
			}

			results[i] = s.runScript(scriptPath, contents)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &RunScriptsResult{Scripts: results}

	switch cfg.OutputFormat {
	case ScriptOutputOneLine:
		err = outputScriptsOneLine(cfg.Output, result)
	case ScriptOutputMultiLine:
		err = outputScriptsMultiLine(cfg.Output, result)
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to output script results")
	}

	return result, nil
}

// scriptPaths expands directories into the YAML files directly inside them.
func (s Service) scriptPaths(given []string) ([]string, error) {
	paths := make([]string, 0, len(given))

	for _, fileOrDir := range given {
		info, err := s.FileSystem.Stat(fileOrDir)
		if err != nil {
			if errors.Is(err, errors.ErrFileNotExists) {
				return nil, errors.Errorf("you specified %q, but %q could not be found", fileOrDir, fileOrDir)
			}
			return nil, errors.Wrap(err, "unable to find file or directory")
		}

		if !info.IsDir() {
			paths = append(paths, fileOrDir)
			continue
		}

		entries, err := s.FileSystem.ReadDir(fileOrDir)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to list scripts in %q", fileOrDir)
		}

		found := make([]string, 0, len(entries))
		for _, entry := range entries {
			if !entry.IsDir() && isYAMLFile(entry.Name()) {
				found = append(found, path.Join(fileOrDir, entry.Name()))
			}
		}
		slices.Sort(found)
		paths = append(paths, found...)
	}

	return removeDuplicateStrings(paths), nil
}

func (s Service) readScript(scriptPath string) ([]byte, error) {
	fd, err := s.FileSystem.Open(scriptPath)
	if err != nil {
		return nil, errors.Wrapf(err, "error while opening %q", scriptPath)
	}
	defer fd.Close()

	contents, err := io.ReadAll(fd)
	if err != nil {
		return nil, errors.Wrapf(err, "error while reading %q", scriptPath)
	}

	return contents, nil
}

func (s Service) runScript(scriptPath string, contents []byte) ScriptResult {
	result := ScriptResult{Path: scriptPath}

	script, err := ParseScript(scriptPath, contents)
	if err != nil {
		var scriptErr *ScriptError
		if errors.As(err, &scriptErr) {
			result.Failure = &ScriptFailure{Message: scriptErr.Message, Frame: scriptErr.Source, Location: scriptErr.Location}
		} else {
			result.Failure = &ScriptFailure{Message: err.Error(), Location: messages.Location{FileName: scriptPath}}
		}
		return result
	}
	result.Steps = len(script.Steps)

	if script.Requires != "" {
		ok, err := versions.Satisfies(script.Requires)
		if err != nil || !ok {
			message := fmt.Sprintf("this script requires archaicfs %s, but this is %s", script.Requires, versions.GetCliCurrentVersion())
			if err != nil {
				message = err.Error()
			}
			result.Failure = &ScriptFailure{
				Message:  message,
				Location: messages.Location{FileName: scriptPath},
				Advice:   "Update archaicfs or relax the `requires` constraint.",
			}
			return result
		}
	}

	session := s.NewSession()
	for _, step := range script.Steps {
		output, err := step.run(session)
		if message, advice := step.check(output, err); message != "" {
			result.Failure = &ScriptFailure{
				Message:  message,
				Frame:    step.Source,
				Location: step.Location,
				Advice:   advice,
			}
			return result
		}
		result.Passed++
	}

	return result
}

func outputScriptsMultiLine(w io.Writer, result *RunScriptsResult) error {
	failures := 0
	for _, script := range result.Scripts {
		if script.Failure == nil {
			fmt.Fprintf(w, "ok    %s (%d %s)\n", script.Path, script.Passed, pluralize(script.Passed, "step", "steps"))
			continue
		}

		failures++
		fmt.Fprintf(w, "FAIL  %s\n", script.Path)
		f := script.Failure
		fmt.Fprintln(w, messages.FormatUserMessage(f.Message, f.Frame, f.Location, f.Advice))
		fmt.Fprintln(w)
	}

	scriptCount := len(result.Scripts)
	fmt.Fprintf(w, "\nRan %d %s, %d %s.\n", scriptCount, pluralize(scriptCount, "script", "scripts"), failures, pluralize(failures, "failure", "failures"))

	return nil
}

func outputScriptsOneLine(w io.Writer, result *RunScriptsResult) error {
	for _, script := range result.Scripts {
		if script.Failure == nil {
			continue
		}

		fmt.Fprintf(w, "%-8s", "FAIL")
		if loc := script.Failure.Location.String(); loc != "" {
			fmt.Fprint(w, loc, " - ")
		}
		fmt.Fprint(w, strings.TrimSuffix(strings.ReplaceAll(script.Failure.Message, "\n", " "), " "))
		fmt.Fprintln(w)
	}

	return nil
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

func isYAMLFile(name string) bool {
	return strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml")
}

func removeDuplicateStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if seen[value] {
			continue
		}
		seen[value] = true
		unique = append(unique, value)
	}
	return unique
}
