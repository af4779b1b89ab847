package cli

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/rwx-research/archaicfs/internal/archaicfs"
	"github.com/rwx-research/archaicfs/internal/errors"
	"github.com/rwx-research/archaicfs/internal/messages"
)

// Script is a session script: steps run in order against one new filesystem.
type Script struct {
	Path     string `yaml:"-"`
	Requires string `yaml:"requires"`
	Steps    []Step `yaml:"steps"`
}

// Step holds exactly one operation plus what its outcome must look like.
type Step struct {
	Mkdir *string `yaml:"mkdir"`
	Cd    *string `yaml:"cd"`
	Write *string `yaml:"write"`
	Read  *string `yaml:"read"`
	Ls    *string `yaml:"ls"`
	Pwd   bool    `yaml:"pwd"`

	Parents bool     `yaml:"parents"`
	ExistOK bool     `yaml:"exist-ok"`
	Content string   `yaml:"content"`
	Options []string `yaml:"options"`

	Expect      *string `yaml:"expect"`
	ExpectError string  `yaml:"expect-error"`

	Location messages.Location `yaml:"-"`
	Source   string            `yaml:"-"`
}

// ScriptError is a script that could not be parsed or validated.
type ScriptError struct {
	Message  string
	Source   string
	Location messages.Location
}

func (e *ScriptError) Error() string {
	return messages.FormatUserMessage(e.Message, e.Source, e.Location, "")
}

// ParseScript decodes a session script and records where each step lives.
func ParseScript(path string, contents []byte) (*Script, error) {
	script := &Script{Path: path}
	if err := yaml.UnmarshalWithOptions(contents, script, yaml.Strict()); err != nil {
		return nil, &ScriptError{
			Message:  fmt.Sprintf("unable to parse %s:\n%s", path, yaml.FormatError(err, false, true)),
			Location: messages.Location{FileName: path},
		}
	}

	if err := locateSteps(script, contents); err != nil {
		return nil, err
	}

	for _, step := range script.Steps {
		if err := step.validate(); err != nil {
			return nil, &ScriptError{Message: err.Error(), Source: step.Source, Location: step.Location}
		}
	}

	return script, nil
}

func locateSteps(script *Script, contents []byte) error {
	for i := range script.Steps {
		script.Steps[i].Location = messages.Location{FileName: script.Path, Step: i + 1}
	}
	if len(script.Steps) == 0 {
		return nil
	}

	file, err := parser.ParseBytes(contents, 0)
	if err != nil {
		return errors.Wrapf(err, "unable to parse %s", script.Path)
	}

	p, err := yaml.PathString("$.steps")
	if err != nil {
		return errors.Wrap(err, "invalid yaml path")
	}

	node, err := p.FilterFile(file)
	if err != nil {
		return errors.Wrapf(err, "unable to find steps in %s", script.Path)
	}

	seqNode, ok := node.(*ast.SequenceNode)
	if !ok {
		return &ScriptError{
			Message:  "steps must be a list",
			Location: messages.Location{FileName: script.Path},
		}
	}

	for i, value := range seqNode.Values {
		if i >= len(script.Steps) {
			break
		}
		if token := value.GetToken(); token != nil && token.Position != nil {
			script.Steps[i].Location.Line = token.Position.Line
			script.Steps[i].Location.Column = token.Position.Column
		}
		script.Steps[i].Source = value.String()
	}

	return nil
}

func (s Step) operations() []string {
	ops := make([]string, 0, 1)
	for name, set := range map[string]bool{
		"mkdir": s.Mkdir != nil,
		"cd":    s.Cd != nil,
		"write": s.Write != nil,
		"read":  s.Read != nil,
		"ls":    s.Ls != nil,
		"pwd":   s.Pwd,
	} {
		if set {
			ops = append(ops, name)
		}
	}
	return ops
}

func (s Step) validate() error {
	ops := s.operations()
	if len(ops) != 1 {
		return errors.Errorf("a step needs exactly one of mkdir, cd, write, read, ls or pwd, found %d", len(ops))
	}

	if s.ExpectError != "" {
		if _, err := archaicfs.ParseKind(s.ExpectError); err != nil {
			return err
		}
		if s.Expect != nil {
			return errors.New("a step cannot have both expect and expect-error")
		}
	}

	if s.Expect != nil && (s.Mkdir != nil || s.Cd != nil || s.Write != nil) {
		return errors.Errorf("%s has no output to expect", ops[0])
	}

	if s.Write == nil && (s.Content != "" || len(s.Options) > 0) {
		return errors.New("content and options only apply to write")
	}

	if _, err := archaicfs.ParseWriteOptions(s.Options); err != nil {
		return err
	}

	if s.Mkdir == nil && (s.Parents || s.ExistOK) {
		return errors.New("parents and exist-ok only apply to mkdir")
	}

	return nil
}

// run performs the step and returns what it printed.
func (s Step) run(session Session) (string, error) {
	switch {
	case s.Mkdir != nil:
		return "", session.Mkdir(*s.Mkdir, s.Parents, s.ExistOK)
	case s.Cd != nil:
		return "", session.Cd(*s.Cd)
	case s.Write != nil:
		options, err := archaicfs.ParseWriteOptions(s.Options)
		if err != nil {
			return "", err
		}
		return "", session.WriteToFile(*s.Write, s.Content, options)
	case s.Read != nil:
		return session.ReadFromFile(*s.Read)
	case s.Ls != nil:
		entries, err := session.ReadDir(*s.Ls)
		if err != nil {
			return "", err
		}
		return strings.Join(entryNames(entries), "\n"), nil
	default:
		return displayPath(session.Cwd()), nil
	}
}

// check compares a step's outcome with its expectations and returns a
// user-facing description of any mismatch.
func (s Step) check(output string, err error) (message string, advice string) {
	if s.ExpectError != "" {
		expected, _ := archaicfs.ParseKind(s.ExpectError)
		switch {
		case err == nil:
			return fmt.Sprintf("expected %s, but the step succeeded", expected), ""
		case archaicfs.KindOf(err) != expected:
			return fmt.Sprintf("expected %s, but got: %s", expected, err), ""
		}
		return "", ""
	}

	if err != nil {
		advice := ""
		if kind := archaicfs.KindOf(err); kind != archaicfs.KindUnknown {
			advice = fmt.Sprintf("Add `expect-error: %s` to this step if the failure is intended.", kind)
		}
		return err.Error(), advice
	}

	if s.Expect != nil && *s.Expect != output {
		return fmt.Sprintf("expected output %q, got %q", *s.Expect, output), ""
	}

	return "", ""
}
