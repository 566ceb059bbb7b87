package observer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// DigitObserver writes "DigitObserver:N".
type DigitObserver struct {
	w     io.Writer
	delay time.Duration
}

// NewDigitObserver returns a DigitObserver writing to w. Only WithDelay is
// meaningful in opts.
func NewDigitObserver(w io.Writer, opts ...Option) *DigitObserver {
	return &DigitObserver{w: w, delay: buildOptions(opts).Delay}
}

// Update writes the current number of g.
func (o *DigitObserver) Update(ctx context.Context, g NumberGenerator) error {
	if err := writeDigit(o.w, g.Number()); err != nil {
		return err
	}
	return pause(ctx, o.delay)
}

// GraphObserver writes "GraphObserver:" and one star per unit.
type GraphObserver struct {
	w     io.Writer
	delay time.Duration
}

// NewGraphObserver returns a GraphObserver writing to w.
func NewGraphObserver(w io.Writer, opts ...Option) *GraphObserver {
	return &GraphObserver{w: w, delay: buildOptions(opts).Delay}
}

// Update writes the bar for the current number of g.
func (o *GraphObserver) Update(ctx context.Context, g NumberGenerator) error {
	if err := writeGraph(o.w, g.Number()); err != nil {
		return err
	}
	return pause(ctx, o.delay)
}

func writeDigit(w io.Writer, n int) error {
	_, err := fmt.Fprintf(w, "DigitObserver:%d\n", n)
	return err
}

func writeGraph(w io.Writer, n int) error {
	if n < 0 {
		n = 0
	}
	_, err := fmt.Fprintf(w, "GraphObserver:%s\n", strings.Repeat("*", n))
	return err
}

// pause sleeps for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
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

var (
	_ Observer = (*DigitObserver)(nil)
	_ Observer = (*GraphObserver)(nil)
)
