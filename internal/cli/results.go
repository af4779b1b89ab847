package cli

import "github.com/rwx-research/archaicfs/internal/messages"

type RunScriptsResult struct {
	Scripts []ScriptResult
}

func (r RunScriptsResult) Failed() bool {
	for _, script := range r.Scripts {
		if script.Failure != nil {
			return true
		}
	}
	return false
}

type ScriptResult struct {
	Path   string
	Steps  int
	Passed int
	// Failure is nil when every step met its expectations.
	Failure *ScriptFailure
}

type ScriptFailure struct {
	Message  string
	Frame    string
	Location messages.Location
	Advice   string
}
