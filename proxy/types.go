package proxy

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"
)

// Printable is implemented by both the real printer and its proxy.
type Printable interface {
	SetPrinterName(name string)
	PrinterName() string
	Print(ctx context.Context, w io.Writer, text string) error
}

// Kind tags a closed-variant printer.
type Kind int

const (
	// KindPrinter is a realized printer.
	KindPrinter Kind = iota
	// KindProxy builds its printer lazily.
	KindProxy
)

// heavyJobTicks is how many delays creating a Printer takes.
const heavyJobTicks = 5

// DefaultHeavyJobDelay is the pause per tick.
const DefaultHeavyJobDelay = 100 * time.Millisecond

// Options configures printer creation.
type Options struct {
	HeavyJobDelay time.Duration
	Logger        *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithHeavyJobDelay sets the pause per tick. Panics if d < 0.
func WithHeavyJobDelay(d time.Duration) Option {
	if d < 0 {
		panic("proxy: WithHeavyJobDelay requires d >= 0")
	}
	return func(o *Options) {
		o.HeavyJobDelay = d
	}
}

// WithLogger logs realization at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("proxy: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns DefaultHeavyJobDelay and a no-op logger.
func DefaultOptions() Options {
	return Options{HeavyJobDelay: DefaultHeavyJobDelay, Logger: zap.NewNop()}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
