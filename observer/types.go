package observer

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for the observer package.
var (
	ErrNilObserver      = errors.New("observer: observer is nil")
	ErrNotComparable    = errors.New("observer: observer type is not comparable")
	ErrObserverNotFound = errors.New("observer: observer not registered")
	ErrBadStep          = errors.New("observer: step must be positive")
)

// Observer receives every number a generator produces.
type Observer interface {
	Update(ctx context.Context, g NumberGenerator) error
}

// NumberGenerator is the subject.
type NumberGenerator interface {
	AddObserver(o Observer) error
	DeleteObserver(o Observer) error
	// Number returns the most recent number.
	Number() int
	// Execute produces numbers until done or ctx is cancelled.
	Execute(ctx context.Context) error
}

// Kind tags a closed-variant observer.
type Kind int

const (
	// KindDigit prints the number.
	KindDigit Kind = iota
	// KindGraph prints a bar of stars.
	KindGraph
	// KindFunc calls a user function.
	KindFunc
)

// DefaultIterations is how many numbers RandomNumberGenerator draws.
const DefaultIterations = 20

// maxRandom is the exclusive upper bound of random numbers.
const maxRandom = 50

// Options configures generators and observers.
type Options struct {
	Rand       *rand.Rand
	Iterations int
	Delay      time.Duration
	Logger     *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets a deterministic RNG.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the RNG explicitly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("observer: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithIterations sets how many numbers a random generator draws. Panics if
// n < 0.
func WithIterations(n int) Option {
	if n < 0 {
		panic("observer: WithIterations requires n >= 0")
	}
	return func(o *Options) {
		o.Iterations = n
	}
}

// WithDelay makes observers pause after each update. Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic("observer: WithDelay requires d >= 0")
	}
	return func(o *Options) {
		o.Delay = d
	}
}

// WithLogger logs registration and notification at debug level. Panics on
// nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("observer: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns seed 1, DefaultIterations, no delay and a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Rand:       rand.New(rand.NewSource(1)),
		Iterations: DefaultIterations,
		Logger:     zap.NewNop(),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
