package proxy

import (
	"context"
	"io"
	"sync"

	"go.uber.org/zap"
)

// PrinterProxy stands in for a Printer until one is needed. It is safe for
// concurrent use.
type PrinterProxy struct {
	mu   sync.Mutex
	name string
	real *Printer
	opts []Option
	log  *zap.Logger
}

// NewPrinterProxy returns an unrealized proxy. opts are passed on to
// NewPrinter when the printer is built.
func NewPrinterProxy(name string, opts ...Option) *PrinterProxy {
	return &PrinterProxy{name: name, opts: opts, log: buildOptions(opts).Logger}
}

// SetPrinterName renames the proxy and, if realized, the printer.
func (p *PrinterProxy) SetPrinterName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
	if p.real != nil {
		p.real.SetPrinterName(name)
	}
}

// PrinterName answers without realizing.
func (p *PrinterProxy) PrinterName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// Realized reports whether the Printer has been built.
func (p *PrinterProxy) Realized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.real != nil
}

// Print realizes the printer if necessary and delegates to it. The heavy
// job's progress goes to w.
func (p *PrinterProxy) Print(ctx context.Context, w io.Writer, text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.real == nil {
		printer, err := NewPrinter(ctx, w, p.name, p.opts...)
		if err != nil {
			p.log.Debug("printer realization aborted", zap.String("name", p.name), zap.Error(err))
			return err
		}
		p.real = printer
		p.log.Debug("printer realized", zap.String("name", p.name))
	}
	return p.real.Print(ctx, w, text)
}

var _ Printable = (*PrinterProxy)(nil)
