package decorator

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for the decorator package.
var (
	// ErrRowOutOfRange indicates a RowText call outside [0, Rows()).
	ErrRowOutOfRange = errors.New("decorator: row out of range")

	// ErrNilDisplay indicates a border around a nil Display.
	ErrNilDisplay = errors.New("decorator: display is nil")
)

// Display is a block of text rows.
type Display interface {
	// Columns is the width of every row, in runes.
	Columns() int
	Rows() int
	RowText(row int) (string, error)
}

// Show writes every row of d followed by a newline.
func Show(w io.Writer, d Display) error {
	if d == nil {
		return ErrNilDisplay
	}
	for i := 0; i < d.Rows(); i++ {
		text, err := d.RowText(i)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// Kind tags a closed-variant Box.
type Kind int

const (
	// KindString is a single row of text.
	KindString Kind = iota
	// KindSide wraps each row in a border character.
	KindSide
	// KindFull draws a complete frame.
	KindFull
)

func outOfRange(row, rows int) error {
	return fmt.Errorf("%w: %d not in [0,%d)", ErrRowOutOfRange, row, rows)
}

func rule(columns int) string {
	return "+" + strings.Repeat("-", columns) + "+"
}
