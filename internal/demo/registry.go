// Package demo maps scenario names to runnable pattern walkthroughs.
//
// Every scenario writes to Env.W, reads its knobs from Env.Config and logs
// through Env.Logger. Scenarios never touch stdout directly.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-patterns/internal/config"
)

var (
	// ErrUnknownDemo indicates a name that is not in the registry.
	ErrUnknownDemo = errors.New("demo: unknown demo")

	// ErrDemoPanic is returned when a scenario panics.
	ErrDemoPanic = errors.New("demo: panic during run")

	// ErrNilWriter indicates an Env without a writer.
	ErrNilWriter = errors.New("demo: writer is nil")
)

// Env carries what every scenario needs.
type Env struct {
	W      io.Writer
	Config config.Config
	Logger *zap.Logger
}

// Demo is one named scenario.
type Demo struct {
	Name    string
	Summary string
	Run     func(ctx context.Context, env Env) error
}

// registry is in display order.
var registry = []Demo{
	{"adaptor", "banner adapted to the Print interface", runAdaptor},
	{"bridge", "displays bridged to a string implementation", runBridge},
	{"builder", "one director, text and HTML builders", runBuilder},
	{"chain", "troubles passed along a chain of supports", runChain},
	{"command", "macro command with undo", runCommand},
	{"composite", "directory tree listing", runComposite},
	{"decorator", "nested border decorators", runDecorator},
	{"factory", "ID card factory", runFactory},
	{"flyweight", "big characters sharing glyphs", runFlyweight},
	{"iterator", "walking a book shelf", runIterator},
	{"mediator", "login dialog colleagues", runMediator},
	{"observer", "number generator with observers", runObserver},
	{"proxy", "printer proxy with lazy realization", runProxy},
	{"singleton", "process-wide instances", runSingleton},
	{"state", "day and night safe", runState},
	{"strategy", "rock-paper-scissors match", runStrategy},
	{"template", "template method displays", runTemplate},
	{"visitor", "document exporters", runVisitor},
}

// All returns every scenario in display order.
func All() []Demo {
	out := make([]Demo, len(registry))
	copy(out, registry)
	return out
}

// Names returns every scenario name in display order.
func Names() []string {
	names := make([]string, len(registry))
	for i, d := range registry {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the scenario called name.
func Lookup(name string) (Demo, error) {
	for _, d := range registry {
		if d.Name == name {
			return d, nil
		}
	}
	return Demo{}, fmt.Errorf("%w: %q", ErrUnknownDemo, name)
}

// Run looks up name and runs it. A panic inside the scenario is returned
// as ErrDemoPanic.
func Run(ctx context.Context, name string, env Env) (err error) {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	if env.W == nil {
		return ErrNilWriter
	}
	if env.Logger == nil {
		env.Logger = zap.NewNop()
	}

	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDemoPanic, name, rec)
		}
	}()

	env.Logger.Debug("demo started", zap.String("demo", name))
	if err := d.Run(ctx, env); err != nil {
		return fmt.Errorf("demo %s: %w", name, err)
	}
	env.Logger.Debug("demo finished", zap.String("demo", name))
	return nil
}
