package archaicfs

import (
	"fmt"

	"github.com/rwx-research/archaicfs/internal/errors"
)

// Kind identifies which failure condition an operation hit.
type Kind int

const (
	KindUnknown Kind = iota
	KindNoSuchFile
	KindFileNotFound
	KindFileAlreadyExists
	KindInvalidArgument
	KindIsDirectory
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindNoSuchFile:        "no-such-file",
	KindFileNotFound:      "file-not-found",
	KindFileAlreadyExists: "file-already-exists",
	KindInvalidArgument:   "invalid-argument",
	KindIsDirectory:       "is-directory",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for kind, kindName := range kindNames {
		if kind != KindUnknown && kindName == name {
			return kind, nil
		}
	}
	return KindUnknown, errors.Errorf("unknown error kind %q", name)
}

var (
	ErrNoSuchFile        = &Error{Kind: KindNoSuchFile}
	ErrFileNotFound      = &Error{Kind: KindFileNotFound}
	ErrFileAlreadyExists = &Error{Kind: KindFileAlreadyExists}
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrIsDirectory       = &Error{Kind: KindIsDirectory}
)

// Error is returned by every FileSystem operation that fails. Two errors
// match under errors.Is when their kinds are equal, so callers branch on the
// sentinels above rather than on messages.
type Error struct {
	Kind   Kind
	Op     string
	Path   string
	Reason string
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = fmt.Sprintf("%s %q: %s", e.Op, e.Path, msg)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf unwraps err looking for an *Error and returns its kind.
func KindOf(err error) Kind {
	var fsErr *Error
	if errors.As(err, &fsErr) {
		return fsErr.Kind
	}
	return KindUnknown
}

func (e *Error) withOp(op, path string) *Error {
	withOp := *e
	withOp.Op = op
	withOp.Path = path
	return &withOp
}

func newError(kind Kind, op, path, reason string) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Reason: reason}
}
