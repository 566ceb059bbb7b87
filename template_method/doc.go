// Package template_method shows the Template Method pattern: Display fixes
// the skeleton (open, five prints, close) and an Operation fills in the
// three steps.
//
//	CharDisplay('H')        StringDisplay("Hi")
//
//	<<HHHHH>>               +--+
//	                        |Hi|   (five times)
//	                        +--+
//
// Renditions:
//
//   - Display(w, op) over the Operation interface.
//   - Kinded, a closed struct tagged KindChar or KindString, with its own
//     Display method.
//   - DisplayOf[T Operation], the same skeleton with the step type fixed at
//     compile time.
//
// Widths count runes.
package template_method
