package command

import (
	"fmt"
	"io"
)

// GenericMacro is a macro over a single concrete command type C.
type GenericMacro[C Command] struct {
	cmds []C
}

// NewGenericMacro returns an empty GenericMacro.
func NewGenericMacro[C Command]() *GenericMacro[C] { return &GenericMacro[C]{} }

// Append adds c to the end of the macro.
func (m *GenericMacro[C]) Append(c C) { m.cmds = append(m.cmds, c) }

// Undo removes the most recently appended command and returns it.
func (m *GenericMacro[C]) Undo() (C, bool) {
	var zero C
	if len(m.cmds) == 0 {
		return zero, false
	}
	last := m.cmds[len(m.cmds)-1]
	m.cmds[len(m.cmds)-1] = zero
	m.cmds = m.cmds[:len(m.cmds)-1]
	return last, true
}

// Clear removes every command.
func (m *GenericMacro[C]) Clear() { m.cmds = nil }

// Len returns the number of commands.
func (m *GenericMacro[C]) Len() int { return len(m.cmds) }

// Execute runs every command in order.
func (m *GenericMacro[C]) Execute(w io.Writer) error {
	for i, c := range m.cmds {
		if err := c.Execute(w); err != nil {
			return fmt.Errorf("command: step %d: %w", i, err)
		}
	}
	return nil
}

var _ Command = (*GenericMacro[*EchoCommand])(nil)
