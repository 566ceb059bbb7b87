package composite

import (
	"errors"
	"fmt"
	"io"
	"reflect"
)

// Sentinel errors for the composite package.
var (
	// ErrNilEntry indicates that a nil entry was added to a directory.
	ErrNilEntry = errors.New("composite: entry is nil")

	// ErrAddToFile indicates an Add on a file node.
	ErrAddToFile = errors.New("composite: cannot add to a file")

	// ErrCycle indicates that a directory was added below itself.
	ErrCycle = errors.New("composite: directory would contain itself")

	// ErrNotFound indicates that Find could not resolve a path.
	ErrNotFound = errors.New("composite: entry not found")
)

// Entry is a node in the tree.
type Entry interface {
	fmt.Stringer
	Name() string
	Size() int
	// PrintList writes "prefix/name (size)" and, for directories, every
	// descendant beneath it.
	PrintList(w io.Writer, prefix string) error
}

// Kind tags a closed-variant Node.
type Kind int

const (
	// KindFile is a leaf with a fixed size.
	KindFile Kind = iota
	// KindDirectory holds child nodes.
	KindDirectory
)

// String returns "file" or "directory".
func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}
	return "file"
}

func label(name string, size int) string {
	return fmt.Sprintf("%s (%d)", name, size)
}

func printLine(w io.Writer, prefix string, e Entry) error {
	_, err := fmt.Fprintf(w, "%s/%s\n", prefix, e)
	return err
}

// isNil reports whether e is nil or a typed nil pointer.
func isNil(e Entry) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
