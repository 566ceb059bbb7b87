package observer

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Variant is the closed rendition of Observer.
type Variant struct {
	kind  Kind
	w     io.Writer
	fn    func(n int) error
	delay time.Duration
}

// DigitVariant returns a KindDigit observer.
func DigitVariant(w io.Writer, opts ...Option) *Variant {
	return &Variant{kind: KindDigit, w: w, delay: buildOptions(opts).Delay}
}

// GraphVariant returns a KindGraph observer.
func GraphVariant(w io.Writer, opts ...Option) *Variant {
	return &Variant{kind: KindGraph, w: w, delay: buildOptions(opts).Delay}
}

// FuncVariant returns a KindFunc observer that calls fn with each number.
func FuncVariant(fn func(n int) error) *Variant {
	return &Variant{kind: KindFunc, fn: fn}
}

// Kind returns the tag of v.
func (v *Variant) Kind() Kind { return v.kind }

// Update dispatches on the kind.
func (v *Variant) Update(ctx context.Context, g NumberGenerator) error {
	var err error
	switch v.kind {
	case KindDigit:
		err = writeDigit(v.w, g.Number())
	case KindGraph:
		err = writeGraph(v.w, g.Number())
	case KindFunc:
		if v.fn != nil {
			err = v.fn(g.Number())
		}
	default:
		err = fmt.Errorf("observer: unknown kind %d", int(v.kind))
	}
	if err != nil {
		return err
	}
	return pause(ctx, v.delay)
}

var _ Observer = (*Variant)(nil)
