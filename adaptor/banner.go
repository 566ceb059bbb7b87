package adaptor

import (
	"fmt"
	"io"
)

// Banner is the adaptee: a piece of text that can be shown two ways.
type Banner struct {
	text string
}

// NewBanner returns a Banner holding text.
func NewBanner(text string) *Banner {
	return &Banner{text: text}
}

// Text returns the banner text.
func (b *Banner) Text() string { return b.text }

// ShowWithParen writes "(text)\n".
func (b *Banner) ShowWithParen(w io.Writer) error {
	_, err := fmt.Fprintf(w, "(%s)\n", b.text)
	return err
}

// ShowWithAster writes "*text*\n".
func (b *Banner) ShowWithAster(w io.Writer) error {
	_, err := fmt.Fprintf(w, "*%s*\n", b.text)
	return err
}
