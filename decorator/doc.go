// Package decorator shows the Decorator pattern with text boxes: a border
// is a Display that wraps another Display, so borders stack in any order
// and any number.
//
//	d := decorator.FullBorder(decorator.SideBorder(decorator.NewStringDisplay("Hi"), '#'))
//	decorator.Show(w, d)
//
//	+----+
//	|#Hi#|
//	+----+
//
// Box is the closed rendition: KindString, KindSide and KindFull share one
// struct and every method switches on the kind.
//
// Widths count runes, not bytes. A row outside [0, Rows()) returns
// ErrRowOutOfRange.
package decorator
