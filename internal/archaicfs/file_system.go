package archaicfs

import "fmt"

// FileSystem is an in-memory tree of directories and files with a current
// working directory. A FileSystem is not safe for concurrent use; give each
// session its own instance.
type FileSystem struct {
	root *directory
	cwd  []string
}

func New() *FileSystem {
	return &FileSystem{root: newDirectory("")}
}

// Cwd returns the working directory. The root is the empty string.
func (afs *FileSystem) Cwd() string {
	return Join(afs.cwd)
}

func (afs *FileSystem) Cd(name string) error {
	segments := Resolve(name, afs.cwd)

	if _, depth, notDir := afs.walk(segments); depth < len(segments) {
		return newError(KindNoSuchFile, "cd", name, walkFailure(segments, depth, notDir))
	}

	afs.cwd = segments
	return nil
}

// Mkdir creates the directory at name. Missing parents are created only when
// createIntermediate is set. An existing directory at name is an error unless
// ignoreIfExists is set; an existing file always is.
func (afs *FileSystem) Mkdir(name string, createIntermediate, ignoreIfExists bool) error {
	segments := Resolve(name, afs.cwd)
	if len(segments) == 0 {
		if ignoreIfExists {
			return nil
		}
		return newError(KindFileAlreadyExists, "mkdir", name, "the root directory always exists")
	}

	parentSegments, leaf := split(segments)
	dir, depth, notDir := afs.walk(parentSegments)

	if depth < len(parentSegments) {
		if notDir {
			return newError(KindFileNotFound, "mkdir", name, walkFailure(parentSegments, depth, notDir))
		}
		if !createIntermediate {
			return newError(KindFileNotFound, "mkdir", name, fmt.Sprintf("parent directory %q doesn't exist", Join(parentSegments)))
		}
	} else if existing, ok := dir.child(leaf); ok {
		if existing.IsDir() && ignoreIfExists {
			return nil
		}
		return newError(KindFileAlreadyExists, "mkdir", name, "")
	}

	for _, segment := range segments[depth:] {
		created := newDirectory(segment)
		dir.insert(created)
		dir = created
	}

	return nil
}

// WriteToFile replaces or extends the content of the file at name according
// to options. The parent directory must already exist. Nothing is modified
// when an error is returned.
func (afs *FileSystem) WriteToFile(name, content string, options WriteOptions) error {
	if err := options.validate(); err != nil {
		return err.withOp("write", name)
	}

	segments := Resolve(name, afs.cwd)
	if len(segments) == 0 {
		return newError(KindIsDirectory, "write", name, "")
	}

	parentSegments, leaf := split(segments)
	dir, depth, notDir := afs.walk(parentSegments)
	if depth < len(parentSegments) {
		return newError(KindFileNotFound, "write", name, walkFailure(parentSegments, depth, notDir))
	}

	existing, ok := dir.child(leaf)
	switch {
	case !ok && (options.Has(Create) || options.Has(CreateIfNotExists)):
		dir.insert(&file{name: leaf, content: content})
		return nil
	case !ok:
		return newError(KindFileNotFound, "write", name, "")
	case options.Has(Create):
		return newError(KindFileAlreadyExists, "write", name, "")
	case existing.IsDir():
		return newError(KindIsDirectory, "write", name, "")
	}

	target := existing.(*file)
	if options.Has(Append) {
		target.content += content
	} else {
		target.content = content
	}

	return nil
}

func (afs *FileSystem) ReadFromFile(name string) (string, error) {
	entry, err := afs.lookup("read", name)
	if err != nil {
		return "", err
	}

	target, ok := entry.(*file)
	if !ok {
		return "", newError(KindFileNotFound, "read", name, "is a directory")
	}

	return target.content, nil
}

// ReadDir lists the entries of the directory at name in creation order.
func (afs *FileSystem) ReadDir(name string) ([]DirEntry, error) {
	entry, err := afs.lookup("readdir", name)
	if err != nil {
		return nil, err
	}

	dir, ok := entry.(*directory)
	if !ok {
		return nil, newError(KindFileNotFound, "readdir", name, "not a directory")
	}

	return dir.entries(), nil
}

func (afs *FileSystem) Stat(name string) (DirEntry, error) {
	return afs.lookup("stat", name)
}

func (afs *FileSystem) Exists(name string) bool {
	_, err := afs.lookup("stat", name)
	return err == nil
}

func (afs *FileSystem) lookup(op, name string) (DirEntry, error) {
	segments := Resolve(name, afs.cwd)
	if len(segments) == 0 {
		return afs.root, nil
	}

	parentSegments, leaf := split(segments)
	dir, depth, notDir := afs.walk(parentSegments)
	if depth < len(parentSegments) {
		return nil, newError(KindFileNotFound, op, name, walkFailure(parentSegments, depth, notDir))
	}

	entry, ok := dir.child(leaf)
	if !ok {
		return nil, newError(KindFileNotFound, op, name, "")
	}

	return entry, nil
}

// walk follows segments from the root through directories. It returns the
// deepest directory reached and how many segments were consumed; when that
// is fewer than len(segments), notDir tells whether the next segment exists
// as a file rather than being absent.
func (afs *FileSystem) walk(segments []string) (dir *directory, depth int, notDir bool) {
	dir = afs.root
	for i, segment := range segments {
		entry, ok := dir.child(segment)
		if !ok {
			return dir, i, false
		}

		next, ok := entry.(*directory)
		if !ok {
			return dir, i, true
		}
		dir = next
	}

	return dir, len(segments), false
}

func walkFailure(segments []string, depth int, notDir bool) string {
	at := Join(segments[:depth+1])
	if notDir {
		return fmt.Sprintf("%q is not a directory", at)
	}
	return fmt.Sprintf("%q doesn't exist", at)
}

func split(segments []string) ([]string, string) {
	last := len(segments) - 1
	return segments[:last], segments[last]
}
