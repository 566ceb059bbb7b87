package mediator

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for the mediator package.
var (
	// ErrDisabled indicates an action on a disabled colleague.
	ErrDisabled = errors.New("mediator: colleague is disabled")
)

// Mediator coordinates colleagues.
type Mediator interface {
	// CreateColleagues builds and wires every colleague.
	CreateColleagues()
	// ColleagueChanged is called by a colleague after its state changed.
	ColleagueChanged()
}

// Colleague is a control that reports to a Mediator.
type Colleague interface {
	Name() string
	SetMediator(m Mediator)
	SetColleagueEnabled(enabled bool)
	Enabled() bool
}

// Outcome is the final state of a LoginFrame.
type Outcome int

const (
	// Pending means neither button has been pressed.
	Pending Outcome = iota
	// Submitted means OK was pressed.
	Submitted
	// Cancelled means Cancel was pressed.
	Cancelled
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Options configures a LoginFrame.
type Options struct {
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger logs enable/disable toggles at debug level. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("mediator: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}
