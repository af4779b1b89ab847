package mocks

import (
	"strings"
)

// File is an in-memory host file. Closed records whether Close was called.
type File struct {
	*strings.Reader
	Closed bool
}

func NewFile(content string) *File {
	return &File{Reader: strings.NewReader(content)}
}

func (f *File) Close() error {
	f.Closed = true
	return nil
}

type DirEntry struct {
	FileName    string
	IsDirectory bool
}

func (d DirEntry) Name() string {
	return d.FileName
}

func (d DirEntry) IsDir() bool {
	return d.IsDirectory
}
