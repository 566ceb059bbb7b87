package bridge

import (
	"errors"
	"io"
	"math/rand"
)

// Sentinel errors for the bridge package.
var (
	// ErrNilImpl indicates that a display was constructed over a nil Impl.
	ErrNilImpl = errors.New("bridge: implementation is nil")

	// ErrNegativeTimes indicates an invalid repetition count.
	ErrNegativeTimes = errors.New("bridge: repetition count out of range")

	// ErrUnknownKind indicates a Variant whose kind is not recognised.
	ErrUnknownKind = errors.New("bridge: unknown display kind")
)

// Impl is the implementation half of the bridge.
type Impl interface {
	RawOpen(w io.Writer) error
	RawPrint(w io.Writer) error
	RawClose(w io.Writer) error
}

// Display is the abstraction half of the bridge.
type Display interface {
	Open(w io.Writer) error
	Print(w io.Writer) error
	Close(w io.Writer) error
	// Display runs Open, Print, Close once.
	Display(w io.Writer) error
}

// Kind tags a closed-variant display.
type Kind int

const (
	// KindUnknown is the zero value.
	KindUnknown Kind = iota
	// KindDefault is a plain open/print/close display.
	KindDefault
	// KindCount additionally supports MultiDisplay via AsCount.
	KindCount
)

// Options configures RandomCountDisplay.
type Options struct {
	Rand *rand.Rand
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the RNG explicitly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bridge: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions returns Options seeded with 1, so an unconfigured
// RandomCountDisplay is still reproducible.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(1))}
}
