package proxy

import (
	"context"
	"fmt"
	"io"
)

// Variant is the closed rendition: a printer or a proxy in one struct.
type Variant struct {
	kind     Kind
	name     string
	realized bool
	opts     []Option
}

// OfPrinter builds a realized printer, running the heavy job now.
func OfPrinter(ctx context.Context, w io.Writer, name string, opts ...Option) (*Variant, error) {
	p, err := NewPrinter(ctx, w, name, opts...)
	if err != nil {
		return nil, err
	}
	return &Variant{kind: KindPrinter, name: p.name, realized: true, opts: opts}, nil
}

// OfProxy returns an unrealized proxy.
func OfProxy(name string, opts ...Option) *Variant {
	return &Variant{kind: KindProxy, name: name, opts: opts}
}

func (v *Variant) Kind() Kind                 { return v.kind }
func (v *Variant) Realized() bool             { return v.realized }
func (v *Variant) SetPrinterName(name string) { v.name = name }
func (v *Variant) PrinterName() string        { return v.name }

// Print dispatches on the kind: a proxy realizes first.
func (v *Variant) Print(ctx context.Context, w io.Writer, text string) error {
	switch v.kind {
	case KindPrinter:
	case KindProxy:
		if !v.realized {
			if _, err := NewPrinter(ctx, w, v.name, v.opts...); err != nil {
				return err
			}
			v.realized = true
		}
	default:
		return fmt.Errorf("proxy: unknown kind %d", int(v.kind))
	}
	return printDoc(w, v.name, text)
}

var _ Printable = (*Variant)(nil)
