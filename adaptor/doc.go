// Package adaptor shows the Adapter pattern: an existing type (Banner) is
// made to satisfy an interface it was never written for (Print).
//
// Overview:
//
//   - Banner is the "adaptee". It already knows how to decorate a string with
//     parentheses or asterisks, but its method names do not match what the
//     client expects.
//   - Print is the "target" interface the client programs against.
//   - PrintBanner is the delegation adapter: it holds a *Banner and forwards.
//   - EmbeddedPrintBanner is the inheritance-flavoured adapter: it embeds
//     Banner so the adaptee's methods are promoted and only the glue is new.
//   - Printer is the closed-variant rendition: one struct, a PrintKind tag,
//     and a switch per operation. Adding a new adaptee means adding a case.
//
// Output contract:
//
//	PrintWeak   → "(<text>)\n"
//	PrintStrong → "*<text>*\n"
//
// Errors:
//
//   - ErrNilBanner: an adapter was constructed over a nil *Banner.
//   - ErrUnknownKind: a zero-value Printer was used.
//
// Example:
//
//	var p adaptor.Print = adaptor.NewPrintBanner(adaptor.NewBanner("Hello"))
//	_ = p.PrintWeak(os.Stdout)   // (Hello)
//	_ = p.PrintStrong(os.Stdout) // *Hello*
package adaptor
