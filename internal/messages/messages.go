package messages

import (
	"fmt"
	"strings"
)

// Location points at a step inside a session script.
type Location struct {
	FileName string
	Line     int
	Column   int
	Step     int
}

func (l Location) String() string {
	where := l.FileName
	if where != "" && l.Line > 0 {
		where = fmt.Sprintf("%s:%d:%d", l.FileName, l.Line, l.Column)
	}

	if l.Step > 0 && where != "" {
		return fmt.Sprintf("step %d (%s)", l.Step, where)
	} else if l.Step > 0 {
		return fmt.Sprintf("step %d", l.Step)
	}
	return where
}

// FormatUserMessage renders a failure with the offending source, where it
// lives, and what to do about it. Empty parts are left out.
func FormatUserMessage(message string, frame string, location Location, advice string) string {
	var builder strings.Builder

	if message != "" {
		builder.WriteString(message)
	}

	if frame != "" {
		for _, line := range strings.Split(strings.TrimRight(frame, "\n"), "\n") {
			builder.WriteString("\n  > ")
			builder.WriteString(line)
		}
	}

	if loc := location.String(); loc != "" {
		builder.WriteString("\n  at ")
		builder.WriteString(loc)
	}

	if advice != "" {
		builder.WriteString("\n")
		builder.WriteString(advice)
	}

	return builder.String()
}
