package archaicfs

// DirEntry describes a node without exposing it for mutation.
type DirEntry interface {
	Name() string
	IsDir() bool
}

var (
	_ DirEntry = (*directory)(nil)
	_ DirEntry = (*file)(nil)
)

type directory struct {
	name     string
	order    []string
	children map[string]DirEntry
}

func newDirectory(name string) *directory {
	return &directory{name: name, children: make(map[string]DirEntry)}
}

func (d *directory) Name() string { return d.name }
func (d *directory) IsDir() bool  { return true }

func (d *directory) child(name string) (DirEntry, bool) {
	n, ok := d.children[name]
	return n, ok
}

// insert assumes name is not already taken.
func (d *directory) insert(n DirEntry) {
	d.order = append(d.order, n.Name())
	d.children[n.Name()] = n
}

func (d *directory) entries() []DirEntry {
	entries := make([]DirEntry, 0, len(d.order))
	for _, name := range d.order {
		entries = append(entries, d.children[name])
	}
	return entries
}

type file struct {
	name    string
	content string
}

func (f *file) Name() string { return f.name }
func (f *file) IsDir() bool  { return false }
