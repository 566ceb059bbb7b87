package strategy

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for the strategy package.
var (
	// ErrUnknownHand indicates a hand value outside 0..2.
	ErrUnknownHand = errors.New("strategy: unknown hand")

	// ErrUnknownKind indicates an unsupported strategy kind.
	ErrUnknownKind = errors.New("strategy: unknown kind")

	// ErrNilStrategy indicates a player without a strategy.
	ErrNilStrategy = errors.New("strategy: strategy is nil")

	// ErrNegativeRounds indicates Play was asked for fewer than zero rounds.
	ErrNegativeRounds = errors.New("strategy: rounds must be >= 0")
)

// Hand is one of the three gestures.
type Hand int

const (
	Rock Hand = iota
	Paper
	Scissors
)

// handCount is the number of gestures.
const handCount = 3

// HandOf returns the hand with value v.
func HandOf(v int) (Hand, error) {
	if v < 0 || v >= handCount {
		return 0, fmt.Errorf("%w: %d", ErrUnknownHand, v)
	}
	return Hand(v), nil
}

// String returns the gesture name.
func (h Hand) String() string {
	switch h {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Hand(%d)", int(h))
	}
}

// fight returns 1 if h beats o, -1 if it loses, 0 on a tie. Each hand beats
// the one just before it: Paper > Rock, Scissors > Paper, Rock > Scissors.
func (h Hand) fight(o Hand) int {
	switch {
	case h == o:
		return 0
	case h == (o+1)%handCount:
		return 1
	default:
		return -1
	}
}

// StrongerThan reports whether h beats o.
func (h Hand) StrongerThan(o Hand) bool { return h.fight(o) == 1 }

// WeakerThan reports whether o beats h.
func (h Hand) WeakerThan(o Hand) bool { return h.fight(o) == -1 }

// Strategy chooses hands and learns from results.
type Strategy interface {
	NextHand() Hand
	// Study is told whether the last hand won.
	Study(win bool)
}

// Kind selects a strategy in StrategyOf.
type Kind int

const (
	KindWinning Kind = iota
	KindProbe
	KindRandom
)

// String returns the strategy name.
func (k Kind) String() string {
	switch k {
	case KindWinning:
		return "winning"
	case KindProbe:
		return "probe"
	case KindRandom:
		return "random"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf parses a strategy name.
func KindOf(name string) (Kind, error) {
	for _, k := range []Kind{KindWinning, KindProbe, KindRandom} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Options configures a strategy.
type Options struct {
	Rand *rand.Rand
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
		panic("strategy: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// DefaultOptions seeds the RNG with 1.
func DefaultOptions() Options {
	return Options{Rand: rand.New(rand.NewSource(1))}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
