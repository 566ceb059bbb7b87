// Package config loads the YAML file that tunes the demo scenarios run by
// cmd/patterns.
//
// A missing key keeps its default; an unknown key is an error. Load always
// returns a validated Config.
package config

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNegativeRounds indicates strategy.rounds < 0.
	ErrNegativeRounds = errors.New("config: strategy.rounds must be >= 0")

	// ErrNegativeIterations indicates observer.iterations < 0.
	ErrNegativeIterations = errors.New("config: observer.iterations must be >= 0")

	// ErrNegativeDelay indicates a negative observer.delay or
	// proxy.heavy_job_delay.
	ErrNegativeDelay = errors.New("config: delays must be >= 0")

	// ErrNegativePoolSize indicates flyweight.pool_size < 0.
	ErrNegativePoolSize = errors.New("config: flyweight.pool_size must be >= 0")

	// ErrEmptyOutputDir indicates an explicitly empty builder.output_dir.
	ErrEmptyOutputDir = errors.New("config: builder.output_dir is empty")
)

// Default values used when the file omits a key.
const (
	DefaultSeed          int64 = 1
	DefaultRounds              = 100
	DefaultIterations          = 20
	DefaultObserverDelay       = 100 * time.Millisecond
	DefaultHeavyJobDelay       = 100 * time.Millisecond
	DefaultOutputDir           = "."
)

// Config is the whole demo configuration.
type Config struct {
	Seed      int64           `yaml:"seed"`
	Strategy  StrategyConfig  `yaml:"strategy"`
	Observer  ObserverConfig  `yaml:"observer"`
	Proxy     ProxyConfig     `yaml:"proxy"`
	Flyweight FlyweightConfig `yaml:"flyweight"`
	Builder   BuilderConfig   `yaml:"builder"`
	Log       LogConfig       `yaml:"log"`
}

// StrategyConfig tunes the rock-paper-scissors match.
type StrategyConfig struct {
	Rounds int `yaml:"rounds"`
}

// ObserverConfig tunes the random number generator demo.
type ObserverConfig struct {
	Iterations int           `yaml:"iterations"`
	Delay      time.Duration `yaml:"delay"`
}

// ProxyConfig tunes the simulated printer start-up.
type ProxyConfig struct {
	HeavyJobDelay time.Duration `yaml:"heavy_job_delay"`
}

// FlyweightConfig selects where glyphs come from. An empty FontDir means
// the embedded fonts; PoolSize 0 means an unbounded pool.
type FlyweightConfig struct {
	FontDir  string `yaml:"font_dir"`
	PoolSize int    `yaml:"pool_size"`
}

// BuilderConfig sets where the HTML builder writes its page.
type BuilderConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// LogConfig switches the CLI logger to development mode.
type LogConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Seed:     DefaultSeed,
		Strategy: StrategyConfig{Rounds: DefaultRounds},
		Observer: ObserverConfig{
			Iterations: DefaultIterations,
			Delay:      DefaultObserverDelay,
		},
		Proxy:   ProxyConfig{HeavyJobDelay: DefaultHeavyJobDelay},
		Builder: BuilderConfig{OutputDir: DefaultOutputDir},
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Strategy.Rounds < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeRounds, c.Strategy.Rounds)
	case c.Observer.Iterations < 0:
		return fmt.Errorf("%w: got %d", ErrNegativeIterations, c.Observer.Iterations)
	case c.Observer.Delay < 0:
		return fmt.Errorf("%w: observer.delay=%s", ErrNegativeDelay, c.Observer.Delay)
	case c.Proxy.HeavyJobDelay < 0:
		return fmt.Errorf("%w: proxy.heavy_job_delay=%s", ErrNegativeDelay, c.Proxy.HeavyJobDelay)
	case c.Flyweight.PoolSize < 0:
		return fmt.Errorf("%w: got %d", ErrNegativePoolSize, c.Flyweight.PoolSize)
	case c.Builder.OutputDir == "":
		return ErrEmptyOutputDir
	}
	return nil
}
