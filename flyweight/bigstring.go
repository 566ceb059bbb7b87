package flyweight

import (
	"io"
	"strings"
)

// BigString is a sequence of shared glyphs.
type BigString struct {
	chars []*BigChar
}

// NewBigString fetches every rune of s from f. A nil f means Shared().
func NewBigString(s string, f *Factory) (*BigString, error) {
	if f == nil {
		f = Shared()
	}
	bs := &BigString{chars: make([]*BigChar, 0, len(s))}
	for _, r := range s {
		c, err := f.Get(r)
		if err != nil {
			return nil, err
		}
		bs.chars = append(bs.chars, c)
	}
	return bs, nil
}

// Chars returns the glyphs in order.
func (s *BigString) Chars() []*BigChar { return s.chars }

// Print writes every glyph, top to bottom.
func (s *BigString) Print(w io.Writer) error {
	for _, c := range s.chars {
		if err := c.Print(w); err != nil {
			return err
		}
	}
	return nil
}

// String concatenates every glyph.
func (s *BigString) String() string {
	var b strings.Builder
	for _, c := range s.chars {
		b.WriteString(c.data)
	}
	return b.String()
}
