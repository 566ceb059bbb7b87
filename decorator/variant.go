package decorator

import "unicode/utf8"

// Box is the closed rendition of Display.
type Box struct {
	kind  Kind
	text  string // KindString
	ch    rune   // KindSide
	inner *Box   // KindSide, KindFull
}

// BoxString returns a KindString box.
func BoxString(text string) *Box { return &Box{kind: KindString, text: text} }

// BoxSide wraps inner with ch on both sides.
func BoxSide(inner *Box, ch rune) *Box { return &Box{kind: KindSide, ch: ch, inner: inner} }

// BoxFull wraps inner in a frame.
func BoxFull(inner *Box) *Box { return &Box{kind: KindFull, inner: inner} }

// Kind returns the tag of b.
func (b *Box) Kind() Kind { return b.kind }

// Columns returns the width in runes.
func (b *Box) Columns() int {
	switch b.kind {
	case KindSide, KindFull:
		return b.inner.Columns() + 2
	default:
		return utf8.RuneCountInString(b.text)
	}
}

// Rows returns the row count.
func (b *Box) Rows() int {
	switch b.kind {
	case KindSide:
		return b.inner.Rows()
	case KindFull:
		return b.inner.Rows() + 2
	default:
		return 1
	}
}

// RowText renders one row.
func (b *Box) RowText(row int) (string, error) {
	rows := b.Rows()
	if row < 0 || row >= rows {
		return "", outOfRange(row, rows)
	}
	switch b.kind {
	case KindSide:
		text, err := b.inner.RowText(row)
		if err != nil {
			return "", err
		}
		return string(b.ch) + text + string(b.ch), nil
	case KindFull:
		if row == 0 || row == rows-1 {
			return rule(b.inner.Columns()), nil
		}
		text, err := b.inner.RowText(row - 1)
		if err != nil {
			return "", err
		}
		return "|" + text + "|", nil
	default:
		return b.text, nil
	}
}

var _ Display = (*Box)(nil)
