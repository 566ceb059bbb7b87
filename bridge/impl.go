package bridge

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// StringImpl draws text inside a one-line box.
type StringImpl struct {
	text  string
	width int
}

// NewStringImpl returns a StringImpl for text. The box width is the number
// of runes in text.
func NewStringImpl(text string) *StringImpl {
	return &StringImpl{text: text, width: utf8.RuneCountInString(text)}
}

// Width returns the inner width of the box.
func (s *StringImpl) Width() int { return s.width }

// RawOpen writes the top rule.
func (s *StringImpl) RawOpen(w io.Writer) error { return s.printLine(w) }

// RawPrint writes "|text|".
func (s *StringImpl) RawPrint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "|%s|\n", s.text)
	return err
}

// RawClose writes the bottom rule.
func (s *StringImpl) RawClose(w io.Writer) error { return s.printLine(w) }

func (s *StringImpl) printLine(w io.Writer) error {
	_, err := fmt.Fprintf(w, "+%s+\n", strings.Repeat("-", s.width))
	return err
}

var _ Impl = (*StringImpl)(nil)
