package fs

import "io"

// FileSystem is the read-only view of the host disk used to load session
// scripts. The simulated tree never reaches it.
type FileSystem interface {
	Open(name string) (File, error)
	ReadDir(name string) ([]DirEntry, error)
	Stat(name string) (DirEntry, error)
}

type File interface {
	io.ReadCloser
}

type DirEntry interface {
	Name() string
	IsDir() bool
}
