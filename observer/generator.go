package observer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
)

// RandomNumberGenerator publishes random numbers in [0, 50).
type RandomNumberGenerator struct {
	subject
	rng        *rand.Rand
	iterations int
}

// NewRandomNumberGenerator returns a generator configured by opts.
func NewRandomNumberGenerator(opts ...Option) *RandomNumberGenerator {
	cfg := buildOptions(opts)
	return &RandomNumberGenerator{
		subject:    subject{logger: cfg.Logger},
		rng:        cfg.Rand,
		iterations: cfg.Iterations,
	}
}

// Execute draws and publishes the configured number of values.
func (g *RandomNumberGenerator) Execute(ctx context.Context) error {
	for i := 0; i < g.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.publish(ctx, g, g.rng.Intn(maxRandom)); err != nil {
			return err
		}
	}
	return nil
}

// IncrementalNumberGenerator publishes start, start+step, ... below end.
type IncrementalNumberGenerator struct {
	subject
	start, end, step int
}

// NewIncrementalNumberGenerator returns a counting generator.
func NewIncrementalNumberGenerator(start, end, step int, opts ...Option) (*IncrementalNumberGenerator, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadStep, step)
	}
	cfg := buildOptions(opts)
	return &IncrementalNumberGenerator{
		subject: subject{number: start, logger: cfg.Logger},
		start:   start,
		end:     end,
		step:    step,
	}, nil
}

// Execute publishes every value of the range.
func (g *IncrementalNumberGenerator) Execute(ctx context.Context) error {
	for n := g.start; n < g.end; n += g.step {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.publish(ctx, g, n); err != nil {
			return err
		}
		// The next step would wrap past math.MaxInt.
		if n > math.MaxInt-g.step {
			break
		}
	}
	return nil
}

var (
	_ NumberGenerator = (*RandomNumberGenerator)(nil)
	_ NumberGenerator = (*IncrementalNumberGenerator)(nil)
)
