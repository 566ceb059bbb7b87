package composite

import (
	"fmt"
	"io"
	"strings"
)

// FileEntry is a leaf.
type FileEntry struct {
	name string
	size int
}

// File returns a file entry.
func File(name string, size int) *FileEntry { return &FileEntry{name: name, size: size} }

func (f *FileEntry) Name() string   { return f.name }
func (f *FileEntry) Size() int      { return f.size }
func (f *FileEntry) String() string { return label(f.name, f.size) }

// PrintList writes the single line for f.
func (f *FileEntry) PrintList(w io.Writer, prefix string) error {
	return printLine(w, prefix, f)
}

// DirEntry holds other entries.
type DirEntry struct {
	name    string
	entries []Entry
	err     error
}

// Directory returns an empty directory entry.
func Directory(name string) *DirEntry { return &DirEntry{name: name} }

func (d *DirEntry) Name() string   { return d.name }
func (d *DirEntry) String() string { return label(d.name, d.Size()) }

// Size is the sum of the sizes of every entry below d.
func (d *DirEntry) Size() int {
	total := 0
	for _, e := range d.entries {
		total += e.Size()
	}
	return total
}

// Entries returns a copy of the direct children in insertion order.
func (d *DirEntry) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Add appends e and returns d. A nil entry or a directory that already
// contains d is skipped; the first such error is kept for Err.
func (d *DirEntry) Add(e Entry) *DirEntry {
	switch {
	case isNil(e):
		d.setErr(ErrNilEntry)
	case reaches(e, d):
		d.setErr(fmt.Errorf("%w: %s", ErrCycle, e.Name()))
	default:
		d.entries = append(d.entries, e)
	}
	return d
}

// Err returns the first error recorded by Add, or nil.
func (d *DirEntry) Err() error { return d.err }

func (d *DirEntry) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

// container is implemented by every directory type in this package so the
// cycle check can see through all of them.
type container interface {
	Entry
	subEntries() []Entry
}

func (d *DirEntry) subEntries() []Entry { return d.entries }

// reaches reports whether target is e or lies below e, through any mix of
// DirEntry, GenericDirectory and Node directories.
func reaches(e Entry, target container) bool {
	dir, ok := e.(container)
	if !ok {
		return false
	}
	// Only this package's pointer types implement container, so == is safe.
	if Entry(dir) == Entry(target) {
		return true
	}
	for _, c := range dir.subEntries() {
		if reaches(c, target) {
			return true
		}
	}
	return false
}

// PrintList writes d and then every descendant, depth first.
func (d *DirEntry) PrintList(w io.Writer, prefix string) error {
	if err := printLine(w, prefix, d); err != nil {
		return err
	}
	sub := prefix + "/" + d.name
	for _, e := range d.entries {
		if err := e.PrintList(w, sub); err != nil {
			return err
		}
	}
	return nil
}

// Find resolves a slash-separated path relative to d. An empty path (or
// "/") returns d itself.
func (d *DirEntry) Find(path string) (Entry, error) {
	var cur Entry = d
	for _, part := range strings.Split(strings.Trim(path, "/"), "/") {
		if part == "" {
			continue
		}
		dir, ok := cur.(*DirEntry)
		if !ok {
			return nil, fmt.Errorf("%w: %q (%s is a file)", ErrNotFound, path, cur.Name())
		}
		next := dir.child(part)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		cur = next
	}
	return cur, nil
}

func (d *DirEntry) child(name string) Entry {
	for _, e := range d.entries {
		if e.Name() == name {
			return e
		}
	}
	return nil
}

var (
	_ Entry = (*FileEntry)(nil)
	_ Entry = (*DirEntry)(nil)
)
