package command

import (
	"fmt"
	"io"
)

// EchoCommand writes its message followed by a newline.
type EchoCommand struct {
	msg string
}

// NewEcho returns an EchoCommand for msg.
func NewEcho(msg string) *EchoCommand { return &EchoCommand{msg: msg} }

// Execute writes "msg\n".
func (c *EchoCommand) Execute(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.msg)
	return err
}

// DoubleEchoCommand writes its message twice followed by a newline.
type DoubleEchoCommand struct {
	msg string
}

// NewDoubleEcho returns a DoubleEchoCommand for msg.
func NewDoubleEcho(msg string) *DoubleEchoCommand { return &DoubleEchoCommand{msg: msg} }

// Execute writes "msgmsg\n".
func (c *DoubleEchoCommand) Execute(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s%s\n", c.msg, c.msg)
	return err
}

var (
	_ Command = (*EchoCommand)(nil)
	_ Command = (*DoubleEchoCommand)(nil)
	_ Command = (*MacroCommand)(nil)
)
