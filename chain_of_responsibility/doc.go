// Package chain_of_responsibility shows the Chain of Responsibility pattern:
// a request (Trouble) is passed along a list of handlers (Support) until one
// of them resolves it.
//
// Overview:
//
//   - Trouble is the request; it renders as "[Trouble N]".
//   - Support is the handler interface. The four concrete handlers differ
//     only in Resolve:
//     NoSupport (never), LimitSupport (N < limit), OddSupport (N odd),
//     SpecialSupport (N == number).
//   - SetNext links handlers and returns its argument, so a chain reads
//     left to right: alice.SetNext(bob).SetNext(charlie)...
//   - Chain walks the list iteratively, writes the outcome line, and logs
//     every hand-off at debug level.
//   - Handler is the closed rendition: one struct with a HandlerKind tag.
//
// Output lines:
//
//	[Trouble 33] is resolved by [Bob@LimitSupport].
//	[Trouble 330] cannot be resolved.
//
// Errors:
//
//   - ErrNilSupport:    the chain head is nil.
//   - ErrCycle:         the chain links back to a handler already visited.
//   - ErrNotComparable: a Support value cannot be compared, e.g. a struct
//     holding a slice in an interface field. Use pointer supports.
package chain_of_responsibility
