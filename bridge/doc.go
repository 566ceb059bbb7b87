// Package bridge shows the Bridge pattern: the "what" (Display, CountDisplay)
// and the "how" (Impl, StringImpl) are two independent hierarchies joined by
// a single field.
//
// Overview:
//
//   - Impl is the implementation side. StringImpl draws a box around a line
//     of text: RawOpen/RawClose draw the rule, RawPrint draws the body.
//   - Display is the abstraction side. DefaultDisplay drives an Impl through
//     Open → Print → Close. CountDisplay adds MultiDisplay (N bodies), and
//     RandomCountDisplay adds RandomDisplay (a random N). New functionality
//     lands on the abstraction side without touching any Impl.
//   - Variant is the closed rendition: a Kind tag (KindDefault, KindCount)
//     and a switch per operation. AsCount exposes the count-only operation.
//   - GenericDisplay / GenericCountDisplay are the statically dispatched
//     rendition: the Impl is a type parameter, so calls are resolved at
//     compile time and no interface value is stored.
//
// Output (StringImpl("Hi")):
//
//	+--+
//	|Hi|
//	+--+
//
// Errors:
//
//   - ErrNilImpl:       a display was built over a nil Impl.
//   - ErrNegativeTimes: MultiDisplay got times < 0, or RandomDisplay max <= 0.
//   - ErrUnknownKind:   a zero-value Variant was used.
package bridge
