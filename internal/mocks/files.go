package mocks

import (
	"io/fs"
	"path"
	"strings"

	localfs "github.com/rwx-research/archaicfs/internal/fs"
)

// Files builds a FileSystem mock serving the given host files. Directories
// are implied by the paths.
func Files(files map[string]string) *FileSystem {
	isDir := func(name string) bool {
		prefix := strings.TrimSuffix(name, "/") + "/"
		for filePath := range files {
			if strings.HasPrefix(filePath, prefix) {
				return true
			}
		}
		return false
	}

	return &FileSystem{
		MockOpen: func(name string) (localfs.File, error) {
			content, ok := files[name]
			if !ok {
				return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
			}
			return NewFile(content), nil
		},
		MockReadDir: func(name string) ([]localfs.DirEntry, error) {
			if !isDir(name) {
				return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
			}

			prefix := strings.TrimSuffix(name, "/") + "/"
			seen := make(map[string]bool)
			entries := make([]localfs.DirEntry, 0)
			for filePath := range files {
				if !strings.HasPrefix(filePath, prefix) {
					continue
				}
				rest := strings.TrimPrefix(filePath, prefix)
				child, _, nested := strings.Cut(rest, "/")
				if seen[child] {
					continue
				}
				seen[child] = true
				entries = append(entries, DirEntry{FileName: child, IsDirectory: nested})
			}
			return entries, nil
		},
		MockStat: func(name string) (localfs.DirEntry, error) {
			if _, ok := files[name]; ok {
				return DirEntry{FileName: path.Base(name)}, nil
			}
			if isDir(name) {
				return DirEntry{FileName: path.Base(name), IsDirectory: true}, nil
			}
			return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
		},
	}
}

