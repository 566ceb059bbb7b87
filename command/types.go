package command

import (
	"errors"
	"io"
)

// Sentinel errors for the command package.
var (
	// ErrNilCommand indicates that a nil command was appended.
	ErrNilCommand = errors.New("command: command is nil")

	// ErrSelfAppend indicates that appending would create a macro that
	// contains itself, directly or through nested macros.
	ErrSelfAppend = errors.New("command: macro cannot contain itself")

	// ErrNotMacro indicates a macro operation on a non-macro Cmd.
	ErrNotMacro = errors.New("command: not a macro")
)

// Command is an executable request.
type Command interface {
	Execute(w io.Writer) error
}

// Kind tags a closed-variant Cmd.
type Kind int

const (
	// KindEcho writes its message once.
	KindEcho Kind = iota
	// KindDouble writes its message twice on one line.
	KindDouble
	// KindMacro executes its children in order.
	KindMacro
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEcho:
		return "echo"
	case KindDouble:
		return "double"
	case KindMacro:
		return "macro"
	default:
		return "unknown"
	}
}
