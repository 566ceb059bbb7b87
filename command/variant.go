package command

import (
	"fmt"
	"io"
)

// Cmd is the closed rendition of Command. Leaf kinds use msg, KindMacro
// uses children.
type Cmd struct {
	kind     Kind
	msg      string
	children []*Cmd
}

// Echo returns a KindEcho Cmd.
func Echo(msg string) *Cmd { return &Cmd{kind: KindEcho, msg: msg} }

// DoubleEcho returns a KindDouble Cmd.
func DoubleEcho(msg string) *Cmd { return &Cmd{kind: KindDouble, msg: msg} }

// Macro returns an empty KindMacro Cmd.
func Macro() *Cmd { return &Cmd{kind: KindMacro} }

// Kind returns the tag of c.
func (c *Cmd) Kind() Kind { return c.kind }

// Execute dispatches on the kind.
func (c *Cmd) Execute(w io.Writer) error {
	switch c.kind {
	case KindEcho:
		_, err := fmt.Fprintln(w, c.msg)
		return err
	case KindDouble:
		_, err := fmt.Fprintf(w, "%s%s\n", c.msg, c.msg)
		return err
	case KindMacro:
		for i, ch := range c.children {
			if err := ch.Execute(w); err != nil {
				return fmt.Errorf("command: step %d: %w", i, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("command: unknown kind %d", int(c.kind))
	}
}

// Append adds child to a macro.
func (c *Cmd) Append(child *Cmd) error {
	if c.kind != KindMacro {
		return fmt.Errorf("%w: %s", ErrNotMacro, c.kind)
	}
	if child == nil {
		return ErrNilCommand
	}
	if child.contains(c) {
		return ErrSelfAppend
	}
	c.children = append(c.children, child)
	return nil
}

func (c *Cmd) contains(target *Cmd) bool {
	if c == target {
		return true
	}
	for _, ch := range c.children {
		if ch.contains(target) {
			return true
		}
	}
	return false
}

// Undo removes the last child of a macro. It returns false for an empty
// macro or a leaf.
func (c *Cmd) Undo() bool {
	if c.kind != KindMacro || len(c.children) == 0 {
		return false
	}
	c.children = c.children[:len(c.children)-1]
	return true
}

// Clear empties a macro; it is a no-op on leaves.
func (c *Cmd) Clear() {
	if c.kind == KindMacro {
		c.children = nil
	}
}

// Len returns the number of children of a macro, 0 for leaves.
func (c *Cmd) Len() int { return len(c.children) }

var _ Command = (*Cmd)(nil)
