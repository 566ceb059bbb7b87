package proxy

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Printer is the expensive real subject.
type Printer struct {
	name string
}

// NewPrinter runs the heavy job, writing its progress to w, and returns the
// printer.
func NewPrinter(ctx context.Context, w io.Writer, name string, opts ...Option) (*Printer, error) {
	cfg := buildOptions(opts)
	if err := heavyJob(ctx, w, fmt.Sprintf("Creating Printer instance (%s)", name), cfg.HeavyJobDelay); err != nil {
		return nil, err
	}
	return &Printer{name: name}, nil
}

func (p *Printer) SetPrinterName(name string) { p.name = name }
func (p *Printer) PrinterName() string        { return p.name }

// Print writes "=== name ===" and text.
func (p *Printer) Print(_ context.Context, w io.Writer, text string) error {
	return printDoc(w, p.name, text)
}

func printDoc(w io.Writer, name, text string) error {
	_, err := fmt.Fprintf(w, "=== %s ===\n%s\n", name, text)
	return err
}

// heavyJob writes msg, one dot per tick and "done.".
func heavyJob(ctx context.Context, w io.Writer, msg string, delay time.Duration) error {
	if _, err := io.WriteString(w, msg); err != nil {
		return err
	}
	for i := 0; i < heavyJobTicks; i++ {
		if err := sleep(ctx, delay); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "."); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "done.\n")
	return err
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

var _ Printable = (*Printer)(nil)
