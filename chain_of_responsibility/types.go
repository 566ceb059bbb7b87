package chain_of_responsibility

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for the chain_of_responsibility package.
var (
	// ErrNilSupport indicates that Handle was called on an empty chain.
	ErrNilSupport = errors.New("chain_of_responsibility: support is nil")

	// ErrCycle indicates that following Next revisits a handler.
	ErrCycle = errors.New("chain_of_responsibility: handler chain contains a cycle")

	// ErrNotComparable indicates a Support whose dynamic value cannot be
	// compared with ==, so the cycle check cannot track it. Pointer
	// supports always qualify.
	ErrNotComparable = errors.New("chain_of_responsibility: support is not comparable")
)

// Trouble is the request travelling along the chain.
type Trouble struct {
	Number int
}

// String renders "[Trouble N]".
func (t Trouble) String() string {
	return fmt.Sprintf("[Trouble %d]", t.Number)
}

// HandlerKind tags a closed-variant Handler.
type HandlerKind int

const (
	// KindNo never resolves.
	KindNo HandlerKind = iota
	// KindLimit resolves numbers below a limit.
	KindLimit
	// KindOdd resolves odd numbers.
	KindOdd
	// KindSpecial resolves exactly one number.
	KindSpecial
)

// String returns the handler type name used in output lines.
func (k HandlerKind) String() string {
	switch k {
	case KindLimit:
		return "LimitSupport"
	case KindOdd:
		return "OddSupport"
	case KindSpecial:
		return "SpecialSupport"
	default:
		return "NoSupport"
	}
}

// Options configures a Chain.
type Options struct {
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger logs each hand-off at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("chain_of_responsibility: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}
