package decorator

import "unicode/utf8"

// StringDisplay is a single row.
type StringDisplay struct {
	text string
}

// NewStringDisplay returns a one-row display of text.
func NewStringDisplay(text string) *StringDisplay { return &StringDisplay{text: text} }

func (s *StringDisplay) Columns() int { return utf8.RuneCountInString(s.text) }
func (s *StringDisplay) Rows() int    { return 1 }

// RowText returns the text for row 0.
func (s *StringDisplay) RowText(row int) (string, error) {
	if row != 0 {
		return "", outOfRange(row, 1)
	}
	return s.text, nil
}

// SideBorderDisplay puts ch on both sides of every row.
type SideBorderDisplay struct {
	inner Display
	ch    rune
}

// SideBorder wraps d with ch on the left and right.
func SideBorder(d Display, ch rune) *SideBorderDisplay {
	return &SideBorderDisplay{inner: d, ch: ch}
}

func (s *SideBorderDisplay) Columns() int { return s.inner.Columns() + 2 }
func (s *SideBorderDisplay) Rows() int    { return s.inner.Rows() }

// RowText returns the inner row framed by ch.
func (s *SideBorderDisplay) RowText(row int) (string, error) {
	text, err := s.inner.RowText(row)
	if err != nil {
		return "", err
	}
	side := string(s.ch)
	return side + text + side, nil
}

// FullBorderDisplay draws a +---+ frame around the wrapped display.
type FullBorderDisplay struct {
	inner Display
}

// FullBorder wraps d in a frame.
func FullBorder(d Display) *FullBorderDisplay { return &FullBorderDisplay{inner: d} }

func (f *FullBorderDisplay) Columns() int { return f.inner.Columns() + 2 }
func (f *FullBorderDisplay) Rows() int    { return f.inner.Rows() + 2 }

// RowText returns a rule for the first and last rows and a framed inner
// row otherwise.
func (f *FullBorderDisplay) RowText(row int) (string, error) {
	rows := f.Rows()
	switch {
	case row < 0 || row >= rows:
		return "", outOfRange(row, rows)
	case row == 0 || row == rows-1:
		return rule(f.inner.Columns()), nil
	}
	text, err := f.inner.RowText(row - 1)
	if err != nil {
		return "", err
	}
	return "|" + text + "|", nil
}

var (
	_ Display = (*StringDisplay)(nil)
	_ Display = (*SideBorderDisplay)(nil)
	_ Display = (*FullBorderDisplay)(nil)
)
