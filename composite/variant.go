package composite

import (
	"fmt"
	"io"
)

// Node is the closed rendition: files and directories share one struct.
type Node struct {
	kind     Kind
	name     string
	size     int // files only
	children []*Node
}

// FileNode returns a KindFile node.
func FileNode(name string, size int) *Node {
	return &Node{kind: KindFile, name: name, size: size}
}

// DirNode returns an empty KindDirectory node.
func DirNode(name string) *Node { return &Node{kind: KindDirectory, name: name} }

func (n *Node) Kind() Kind     { return n.kind }
func (n *Node) Name() string   { return n.name }
func (n *Node) String() string { return label(n.name, n.Size()) }

// Size returns the file size, or the recursive sum for a directory.
func (n *Node) Size() int {
	if n.kind == KindFile {
		return n.size
	}
	total := 0
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// AsDirectory returns n and true if n is a directory.
func (n *Node) AsDirectory() (*Node, bool) {
	if n.kind != KindDirectory {
		return nil, false
	}
	return n, true
}

// Add appends child to a directory node.
func (n *Node) Add(child *Node) error {
	if n.kind != KindDirectory {
		return fmt.Errorf("%w: %s", ErrAddToFile, n.name)
	}
	if child == nil {
		return ErrNilEntry
	}
	if child.reaches(n) {
		return fmt.Errorf("%w: %s", ErrCycle, child.name)
	}
	n.children = append(n.children, child)
	return nil
}

func (n *Node) reaches(target *Node) bool {
	if n == target {
		return true
	}
	for _, c := range n.children {
		if c.reaches(target) {
			return true
		}
	}
	return false
}

func (n *Node) subEntries() []Entry {
	out := make([]Entry, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Children returns the direct children; nil for files.
func (n *Node) Children() []*Node { return n.children }

// PrintList writes n and, for directories, every descendant.
func (n *Node) PrintList(w io.Writer, prefix string) error {
	if err := printLine(w, prefix, n); err != nil {
		return err
	}
	if n.kind == KindFile {
		return nil
	}
	sub := prefix + "/" + n.name
	for _, c := range n.children {
		if err := c.PrintList(w, sub); err != nil {
			return err
		}
	}
	return nil
}

var _ Entry = (*Node)(nil)
