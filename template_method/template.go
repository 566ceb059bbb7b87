package template_method

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Repeat is how many times the template calls Print.
const Repeat = 5

// Operation supplies the steps of the template.
type Operation interface {
	Open(w io.Writer) error
	Print(w io.Writer) error
	Close(w io.Writer) error
}

// Display runs the template: Open, Repeat × Print, Close.
func Display(w io.Writer, op Operation) error {
	return display(w, op.Open, op.Print, op.Close)
}

// DisplayOf is Display with the operation type known statically.
func DisplayOf[T Operation](w io.Writer, op T) error {
	return display(w, op.Open, op.Print, op.Close)
}

func display(w io.Writer, open, body, end func(io.Writer) error) error {
	if err := open(w); err != nil {
		return err
	}
	for i := 0; i < Repeat; i++ {
		if err := body(w); err != nil {
			return err
		}
	}
	return end(w)
}

// CharDisplay prints <<ccccc>>.
type CharDisplay struct {
	ch rune
}

// NewCharDisplay returns a CharDisplay for ch.
func NewCharDisplay(ch rune) *CharDisplay { return &CharDisplay{ch: ch} }

func (d *CharDisplay) Open(w io.Writer) error  { return write(w, "<<") }
func (d *CharDisplay) Print(w io.Writer) error { return write(w, string(d.ch)) }
func (d *CharDisplay) Close(w io.Writer) error { return write(w, ">>\n") }

// StringDisplay prints its text in a box.
type StringDisplay struct {
	text string
}

// NewStringDisplay returns a StringDisplay for text.
func NewStringDisplay(text string) *StringDisplay { return &StringDisplay{text: text} }

func (d *StringDisplay) Open(w io.Writer) error  { return write(w, boxRule(d.text)) }
func (d *StringDisplay) Print(w io.Writer) error { return write(w, "|"+d.text+"|\n") }
func (d *StringDisplay) Close(w io.Writer) error { return write(w, boxRule(d.text)) }

func boxRule(text string) string {
	return "+" + strings.Repeat("-", utf8.RuneCountInString(text)) + "+\n"
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Kind tags a Kinded display.
type Kind int

const (
	KindChar Kind = iota
	KindString
)

// Kinded is the closed rendition of Operation.
type Kinded struct {
	kind Kind
	ch   rune
	text string
}

// OfChar returns a KindChar display.
func OfChar(ch rune) *Kinded { return &Kinded{kind: KindChar, ch: ch} }

// OfString returns a KindString display.
func OfString(text string) *Kinded { return &Kinded{kind: KindString, text: text} }

// Kind returns the tag.
func (k *Kinded) Kind() Kind { return k.kind }

// Open writes the opening step for the kind.
func (k *Kinded) Open(w io.Writer) error {
	switch k.kind {
	case KindChar:
		return write(w, "<<")
	case KindString:
		return write(w, boxRule(k.text))
	}
	return unknown(k.kind)
}

// Print writes the body step for the kind.
func (k *Kinded) Print(w io.Writer) error {
	switch k.kind {
	case KindChar:
		return write(w, string(k.ch))
	case KindString:
		return write(w, "|"+k.text+"|\n")
	}
	return unknown(k.kind)
}

// Close writes the closing step for the kind.
func (k *Kinded) Close(w io.Writer) error {
	switch k.kind {
	case KindChar:
		return write(w, ">>\n")
	case KindString:
		return write(w, boxRule(k.text))
	}
	return unknown(k.kind)
}

// Display runs the template on k.
func (k *Kinded) Display(w io.Writer) error { return display(w, k.Open, k.Print, k.Close) }

func unknown(k Kind) error { return fmt.Errorf("template_method: unknown kind %d", int(k)) }

var (
	_ Operation = (*CharDisplay)(nil)
	_ Operation = (*StringDisplay)(nil)
	_ Operation = (*Kinded)(nil)
)
