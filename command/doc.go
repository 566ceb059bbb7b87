// Package command shows the Command pattern: a request is turned into a
// value that can be queued, replayed and undone.
//
// Three renditions share the same behaviour:
//
//   - Command (interface) with EchoCommand, DoubleEchoCommand and
//     MacroCommand. A MacroCommand is itself a Command, so macros nest.
//   - Cmd (closed): one struct tagged KindEcho, KindDouble or KindMacro.
//   - GenericMacro[C]: a homogeneous macro whose element type is fixed at
//     compile time, e.g. GenericMacro[*EchoCommand].
//
// Undo removes the most recently appended command, so a macro behaves like
// a history stack that is replayed front to back by Execute.
//
// Errors:
//
//   - ErrNilCommand:  Append was given a nil command.
//   - ErrSelfAppend:  Append would make a macro contain itself.
//   - ErrNotMacro:    a macro-only operation was used on a leaf Cmd.
package command
