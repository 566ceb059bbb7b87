package command

import (
	"fmt"
	"io"
)

// MacroCommand is an ordered list of commands executed as one.
type MacroCommand struct {
	cmds []Command
}

// NewMacro returns an empty MacroCommand.
func NewMacro() *MacroCommand { return &MacroCommand{} }

// Append adds c to the end of the macro.
func (m *MacroCommand) Append(c Command) error {
	if c == nil {
		return ErrNilCommand
	}
	if sub, ok := c.(*MacroCommand); ok && sub.contains(m) {
		return ErrSelfAppend
	}
	m.cmds = append(m.cmds, c)
	return nil
}

// contains reports whether target is m or is nested anywhere inside m.
func (m *MacroCommand) contains(target *MacroCommand) bool {
	if m == target {
		return true
	}
	for _, c := range m.cmds {
		if sub, ok := c.(*MacroCommand); ok && sub.contains(target) {
			return true
		}
	}
	return false
}

// Undo removes the most recently appended command. It returns false if the
// macro was already empty.
func (m *MacroCommand) Undo() bool {
	if len(m.cmds) == 0 {
		return false
	}
	m.cmds[len(m.cmds)-1] = nil
	m.cmds = m.cmds[:len(m.cmds)-1]
	return true
}

// Clear removes every command.
func (m *MacroCommand) Clear() { m.cmds = nil }

// Len returns the number of top-level commands.
func (m *MacroCommand) Len() int { return len(m.cmds) }

// Execute runs every command in append order and stops at the first error.
func (m *MacroCommand) Execute(w io.Writer) error {
	for i, c := range m.cmds {
		if err := c.Execute(w); err != nil {
			return fmt.Errorf("command: step %d: %w", i, err)
		}
	}
	return nil
}
