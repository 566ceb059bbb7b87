package composite

import (
	"fmt"
	"io"
)

// GenericDirectory is a directory whose children are all of type E.
type GenericDirectory[E Entry] struct {
	name    string
	entries []E
	err     error
}

// NewGenericDirectory returns an empty GenericDirectory.
func NewGenericDirectory[E Entry](name string) *GenericDirectory[E] {
	return &GenericDirectory[E]{name: name}
}

// Add appends e and returns d. As with DirEntry.Add, a nil entry or one
// that already contains d is skipped and the first error is kept for Err.
func (d *GenericDirectory[E]) Add(e E) *GenericDirectory[E] {
	var entry Entry = e
	switch {
	case isNil(entry):
		d.setErr(ErrNilEntry)
	case reaches(entry, d):
		d.setErr(fmt.Errorf("%w: %s", ErrCycle, entry.Name()))
	default:
		d.entries = append(d.entries, e)
	}
	return d
}

// Err returns the first error recorded by Add, or nil.
func (d *GenericDirectory[E]) Err() error { return d.err }

func (d *GenericDirectory[E]) setErr(err error) {
	if d.err == nil {
		d.err = err
	}
}

func (d *GenericDirectory[E]) subEntries() []Entry {
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = e
	}
	return out
}

// Entries returns the children with their concrete type.
func (d *GenericDirectory[E]) Entries() []E { return d.entries }

func (d *GenericDirectory[E]) Name() string   { return d.name }
func (d *GenericDirectory[E]) String() string { return label(d.name, d.Size()) }

// Size is the sum of the children's sizes.
func (d *GenericDirectory[E]) Size() int {
	total := 0
	for _, e := range d.entries {
		total += e.Size()
	}
	return total
}

// PrintList writes d and its children.
func (d *GenericDirectory[E]) PrintList(w io.Writer, prefix string) error {
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

var _ Entry = (*GenericDirectory[*FileEntry])(nil)
