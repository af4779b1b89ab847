package cli

import (
	"github.com/rwx-research/archaicfs/internal/archaicfs"
	"github.com/rwx-research/archaicfs/internal/fs"
)

var _ Session = (*archaicfs.FileSystem)(nil)

// FileSystem reads session scripts from the host.
type FileSystem interface {
	Open(name string) (fs.File, error)
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.DirEntry, error)
}

// Session is one simulated filesystem with its own working directory.
type Session interface {
	Cd(name string) error
	Cwd() string
	Mkdir(name string, createIntermediate, ignoreIfExists bool) error
	WriteToFile(name, content string, options archaicfs.WriteOptions) error
	ReadFromFile(name string) (string, error)
	ReadDir(name string) ([]archaicfs.DirEntry, error)
}
